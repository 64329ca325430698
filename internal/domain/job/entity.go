package job

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Seniority string

const (
	SeniorityEntry     Seniority = "entry"
	SeniorityMid       Seniority = "mid"
	SenioritySenior    Seniority = "senior"
	SeniorityLead      Seniority = "lead"
	SeniorityExecutive Seniority = "executive"
)

var seniorityOrder = [...]Seniority{
	SeniorityEntry,
	SeniorityMid,
	SenioritySenior,
	SeniorityLead,
	SeniorityExecutive,
}

func ParseSeniority(s string) (Seniority, bool) {
	v := Seniority(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := v.Ordinal(); !ok {
		return "", false
	}
	return v, true
}

// Ordinal returns the position of the level on the entry..executive ladder.
func (s Seniority) Ordinal() (int, bool) {
	for i, lvl := range seniorityOrder {
		if s == lvl {
			return i, true
		}
	}
	return 0, false
}

func (s Seniority) String() string {
	return string(s)
}

type Requirements struct {
	Skills        []string   `json:"skills"`
	ExperienceMin *int       `json:"experience_min"`
	ExperienceMax *int       `json:"experience_max"`
	Seniority     *Seniority `json:"seniority"`
	Location      *string    `json:"location"`
	Remote        bool       `json:"remote"`
	SalaryMin     *int       `json:"salary_min"`
	SalaryMax     *int       `json:"salary_max"`
}

type RawPosting struct {
	Source      string
	ExternalID  string
	Title       string
	Company     string
	Description string
	Location    *string
	PostedAt    *time.Time
	URL         *string

	// Source-provided hints, used before falling back to text heuristics.
	Tags       []string
	SalaryText string
}

type StructuredJob struct {
	ID           uuid.UUID    `json:"id"`
	Source       string       `json:"source"`
	ExternalID   string       `json:"external_id"`
	Title        string       `json:"title"`
	Company      string       `json:"company"`
	Description  string       `json:"description"`
	Requirements Requirements `json:"requirements"`
	PostedAt     *time.Time   `json:"posted_date"`
	URL          *string      `json:"url"`
	CreatedAt    time.Time    `json:"created_at"`
}
