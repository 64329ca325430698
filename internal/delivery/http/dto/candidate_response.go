package dto

import (
	"time"

	"jobmatch/internal/domain/candidate"
)

type CandidateResponse struct {
	ID                 string   `json:"id"`
	Skills             []string `json:"skills"`
	ExperienceYears    int      `json:"experience_years"`
	Seniority          string   `json:"seniority,omitempty"`
	LocationPreference string   `json:"location_preference,omitempty"`
	RemotePreferred    bool     `json:"remote_preferred"`
	SalaryExpected     *int     `json:"salary_expected,omitempty"`
	CreatedAt          string   `json:"created_at,omitempty"`
}

func FromCandidate(c candidate.Profile) CandidateResponse {
	out := CandidateResponse{
		ID:              c.ID.String(),
		Skills:          c.Skills,
		ExperienceYears: c.ExperienceYears,
		RemotePreferred: c.RemotePreferred,
		SalaryExpected:  c.SalaryExpected,
	}
	if out.Skills == nil {
		out.Skills = make([]string, 0)
	}
	if c.Seniority != nil {
		out.Seniority = string(*c.Seniority)
	}
	if c.LocationPreference != nil {
		out.LocationPreference = *c.LocationPreference
	}
	if !c.CreatedAt.IsZero() {
		out.CreatedAt = c.CreatedAt.UTC().Format(time.RFC3339)
	}
	return out
}
