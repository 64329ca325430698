package ranking

import (
	"strings"

	"jobmatch/internal/domain/job"
)

// Breakdown carries the five dimension scores and their weighted composite,
// all in [0, 1].
type Breakdown struct {
	Skill      float64 `json:"skill_score"`
	Experience float64 `json:"experience_score"`
	Seniority  float64 `json:"seniority_score"`
	Location   float64 `json:"location_score"`
	Salary     float64 `json:"salary_score"`
	Composite  float64 `json:"composite_score"`
}

// SkillScore is the Jaccard similarity of the two skill sets after synonym
// canonicalization. No required skills means a perfect score; exactly one
// empty side means no match.
func SkillScore(candidateSkills, jobSkills []string) float64 {
	if len(candidateSkills) == 0 && len(jobSkills) == 0 {
		return 1.0
	}
	if len(candidateSkills) == 0 || len(jobSkills) == 0 {
		return 0.0
	}

	cand := normalizeSkillSet(candidateSkills)
	jobSet := normalizeSkillSet(jobSkills)

	intersection := 0
	for s := range cand {
		if _, ok := jobSet[s]; ok {
			intersection++
		}
	}
	union := len(cand) + len(jobSet) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

// ExperienceScore is 1.0 inside the job's acceptable range, decaying by 0.15
// per year of distance from the nearest bound. A missing min defaults to 0,
// a missing max to min+10.
func ExperienceScore(candidateYears int, jobMin, jobMax *int) float64 {
	if jobMin == nil && jobMax == nil {
		return 1.0
	}

	minYears := 0
	if jobMin != nil {
		minYears = *jobMin
	}
	maxYears := minYears + 10
	if jobMax != nil {
		maxYears = *jobMax
	}

	if candidateYears >= minYears && candidateYears <= maxYears {
		return 1.0
	}

	var distance int
	if candidateYears < minYears {
		distance = minYears - candidateYears
	} else {
		distance = candidateYears - maxYears
	}

	score := 1.0 - float64(distance)*0.15
	if score < 0 {
		return 0.0
	}
	return score
}

// SeniorityScore maps the ordinal distance between the two levels to a fixed
// score. An unset job level is no requirement; an unset or unrecognized
// candidate level is neutral.
func SeniorityScore(candidateLevel, jobLevel *job.Seniority) float64 {
	if jobLevel == nil {
		return 1.0
	}
	if candidateLevel == nil {
		return 0.5
	}

	candIdx, ok := candidateLevel.Ordinal()
	if !ok {
		return 0.5
	}
	jobIdx, ok := jobLevel.Ordinal()
	if !ok {
		return 0.5
	}

	distance := candIdx - jobIdx
	if distance < 0 {
		distance = -distance
	}

	switch distance {
	case 0:
		return 1.0
	case 1:
		return 0.7
	case 2:
		return 0.4
	default:
		return 0.1
	}
}

var countryKeywords = []string{
	"usa",
	"united states",
	"uk",
	"canada",
	"germany",
	"france",
	"australia",
}

// LocationScore handles remote preferences first, then falls back to
// case-insensitive substring and country-keyword matching.
func LocationScore(candidatePref, jobLocation *string, jobRemote bool) float64 {
	wantsRemote := candidatePref != nil && strings.Contains(strings.ToLower(*candidatePref), "remote")

	if wantsRemote && jobRemote {
		return 1.0
	}
	if jobRemote {
		return 0.8
	}

	if candidatePref != nil && jobLocation != nil && *jobLocation != "" {
		prefLower := strings.ToLower(*candidatePref)
		jobLower := strings.ToLower(*jobLocation)

		if strings.Contains(jobLower, prefLower) || strings.Contains(prefLower, jobLower) {
			return 1.0
		}

		for _, country := range countryKeywords {
			if strings.Contains(prefLower, country) && strings.Contains(jobLower, country) {
				return 0.7
			}
		}
	}

	if jobLocation == nil || *jobLocation == "" {
		return 0.6
	}
	return 0.2
}

// SalaryScore compares the candidate's expectation against the job's range.
// A job paying above the expectation is always a perfect score; paying below
// loses twice the percentage shortfall.
func SalaryScore(candidateExpected, jobMin, jobMax *int) float64 {
	if candidateExpected == nil {
		return 0.8
	}
	if jobMin == nil && jobMax == nil {
		return 0.5
	}

	minSalary := 0
	if jobMin != nil {
		minSalary = *jobMin
	}
	maxSalary := int(float64(minSalary) * 1.3)
	if jobMax != nil {
		maxSalary = *jobMax
	}

	expected := *candidateExpected
	if expected >= minSalary && expected <= maxSalary {
		return 1.0
	}
	if expected < minSalary {
		return 1.0
	}

	if expected > maxSalary && expected > 0 {
		shortfall := float64(expected-maxSalary) / float64(expected)
		score := 1.0 - shortfall*2
		if score < 0 {
			return 0.0
		}
		return score
	}
	return 0.5
}

// Composite is the weighted sum of the five sub-scores, clamped to [0, 1].
func Composite(b Breakdown, w Weights) float64 {
	composite := b.Skill*w.Skill +
		b.Experience*w.Experience +
		b.Seniority*w.Seniority +
		b.Location*w.Location +
		b.Salary*w.Salary

	if composite < 0 {
		return 0.0
	}
	if composite > 1 {
		return 1.0
	}
	return composite
}
