package aggregator

import (
	"fmt"
	"strings"

	"jobmatch/internal/domain/job"
)

var placeholderCompanies = map[string]struct{}{
	"unknown": {},
	"n/a":     {},
	"na":      {},
	"-":       {},
	"none":    {},
}

// ValidationResult carries hard errors (reject the posting) and soft warnings
// (accept but log).
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

func (v ValidationResult) Valid() bool { return len(v.Errors) == 0 }

// ValidateRaw checks a posting before extraction.
func ValidateRaw(raw job.RawPosting) ValidationResult {
	var res ValidationResult

	title := strings.TrimSpace(raw.Title)
	switch {
	case title == "":
		res.Errors = append(res.Errors, "job title is required")
	case len(title) < 3:
		res.Errors = append(res.Errors, "job title must be at least 3 characters")
	}

	company := strings.TrimSpace(raw.Company)
	if company == "" {
		res.Errors = append(res.Errors, "company name is required")
	} else if _, ok := placeholderCompanies[strings.ToLower(company)]; ok {
		res.Warnings = append(res.Warnings, "company name appears to be a placeholder")
	}

	if strings.TrimSpace(raw.Source) == "" {
		res.Errors = append(res.Errors, "job source is required")
	}

	if len(strings.TrimSpace(raw.Description)) < 10 {
		res.Warnings = append(res.Warnings, "job description is missing or very short")
	}

	return res
}

// ValidateStructured checks a job after extraction, adding requirement-range
// rules on top of the raw-posting checks.
func ValidateStructured(j job.StructuredJob) ValidationResult {
	res := ValidateRaw(job.RawPosting{
		Source:      j.Source,
		Title:       j.Title,
		Company:     j.Company,
		Description: j.Description,
	})

	if len(j.Title) > 500 {
		res.Warnings = append(res.Warnings, "job title is unusually long")
	}
	if len(j.Description) > 50000 {
		res.Warnings = append(res.Warnings, "job description is unusually long")
	}
	if j.URL != nil && !strings.HasPrefix(*j.URL, "http://") && !strings.HasPrefix(*j.URL, "https://") {
		res.Warnings = append(res.Warnings, "job URL does not start with http:// or https://")
	}

	req := j.Requirements
	if req.ExperienceMin != nil {
		if *req.ExperienceMin < 0 {
			res.Errors = append(res.Errors, "experience min cannot be negative")
		}
		if req.ExperienceMax != nil && *req.ExperienceMin > *req.ExperienceMax {
			res.Errors = append(res.Errors, "experience min cannot be greater than max")
		}
	}
	if req.ExperienceMax != nil && *req.ExperienceMax > 50 {
		res.Warnings = append(res.Warnings, "experience max seems unusually high")
	}

	if req.SalaryMin != nil {
		if *req.SalaryMin < 0 {
			res.Errors = append(res.Errors, "salary min cannot be negative")
		}
		if req.SalaryMax != nil && *req.SalaryMin > *req.SalaryMax {
			res.Errors = append(res.Errors, "salary min cannot be greater than max")
		}
	}
	if req.SalaryMax != nil && *req.SalaryMax > 10000000 {
		res.Warnings = append(res.Warnings, "salary max seems unusually high")
	}

	if len(req.Skills) > 50 {
		res.Warnings = append(res.Warnings, "unusually high number of skills")
	}
	for _, s := range req.Skills {
		if len(s) > 100 {
			res.Warnings = append(res.Warnings, fmt.Sprintf("skill name unusually long: %.50s", s))
			break
		}
	}

	return res
}
