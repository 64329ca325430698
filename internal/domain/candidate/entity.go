package candidate

import (
	"time"

	"jobmatch/internal/domain/job"

	"github.com/google/uuid"
)

type Profile struct {
	ID                 uuid.UUID      `json:"id"`
	Skills             []string       `json:"skills"`
	ExperienceYears    int            `json:"experience_years"`
	Seniority          *job.Seniority `json:"seniority"`
	LocationPreference *string        `json:"location_preference"`
	RemotePreferred    bool           `json:"remote_preferred"`
	SalaryExpected     *int           `json:"salary_expected"`
	CreatedAt          time.Time      `json:"created_at"`
}
