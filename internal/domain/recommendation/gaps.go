package recommendation

import "strings"

// SkillAnalysis partitions a job's skill set against the candidate's,
// case-insensitively, and grades the missing skills by how often they appear
// in a reference window of top-ranked jobs.
type SkillAnalysis struct {
	MatchedSkills         []string `json:"matched_skills"`
	MissingSkills         []string `json:"missing_skills"`
	CriticalMissingSkills []string `json:"critical_missing_skills"`
	NiceToHaveSkills      []string `json:"nice_to_have_skills"`
	MatchPercentage       float64  `json:"match_percentage"`
}

func foldSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// AnalyzeGaps compares skills by case-folded equality only; synonym
// canonicalization is deliberately not applied here, so the gap lists show
// the job's own vocabulary.
func AnalyzeGaps(candidateSkills, jobSkills []string, referenceSkillSets [][]string) SkillAnalysis {
	candidateSet := make(map[string]struct{}, len(candidateSkills))
	for _, s := range candidateSkills {
		candidateSet[foldSkill(s)] = struct{}{}
	}

	matched := make([]string, 0, len(jobSkills))
	missing := make([]string, 0)
	seen := make(map[string]struct{}, len(jobSkills))
	for _, s := range jobSkills {
		folded := foldSkill(s)
		if _, dup := seen[folded]; dup {
			continue
		}
		seen[folded] = struct{}{}
		if _, ok := candidateSet[folded]; ok {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}

	matchPct := 1.0
	if len(seen) > 0 {
		matchPct = float64(len(matched)) / float64(len(seen))
	}

	critical := make([]string, 0)
	niceToHave := make([]string, 0)

	if len(referenceSkillSets) > 0 && len(missing) > 0 {
		frequency := make(map[string]int)
		for _, set := range referenceSkillSets {
			unique := make(map[string]struct{}, len(set))
			for _, s := range set {
				unique[foldSkill(s)] = struct{}{}
			}
			for s := range unique {
				frequency[s]++
			}
		}

		total := float64(len(referenceSkillSets))
		for _, s := range missing {
			if float64(frequency[foldSkill(s)])/total >= 0.5 {
				critical = append(critical, s)
			} else {
				niceToHave = append(niceToHave, s)
			}
		}
	} else {
		niceToHave = append(niceToHave, missing...)
	}

	return SkillAnalysis{
		MatchedSkills:         matched,
		MissingSkills:         missing,
		CriticalMissingSkills: critical,
		NiceToHaveSkills:      niceToHave,
		MatchPercentage:       matchPct,
	}
}
