package recommendation

import (
	"jobmatch/internal/domain/candidate"
	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/ranking"
)

type Recommendation struct {
	Job           job.StructuredJob `json:"job"`
	Scores        ranking.Breakdown `json:"scores"`
	SkillAnalysis SkillAnalysis     `json:"skill_analysis"`
	Explanation   string            `json:"explanation"`
	Rank          int               `json:"rank"`
}

// Generate builds one annotated recommendation from a ranked job. The rank
// field is left at zero; GenerateBatch assigns the dense sequence.
func Generate(cand candidate.Profile, ranked ranking.RankedJob, referenceSkillSets [][]string) Recommendation {
	analysis := AnalyzeGaps(cand.Skills, ranked.Job.Requirements.Skills, referenceSkillSets)
	explanation := ExplainMatch(ranked.Scores, cand, ranked.Job, analysis)

	return Recommendation{
		Job:           ranked.Job,
		Scores:        ranked.Scores,
		SkillAnalysis: analysis,
		Explanation:   explanation,
	}
}

// GenerateBatch annotates every entry of rankedJobs, assigning ranks 1..N in
// order. The skill-gap reference window is the first min(topNForSkills, N)
// entries, but gap analysis runs for the whole batch.
func GenerateBatch(cand candidate.Profile, rankedJobs []ranking.RankedJob, topNForSkills int) []Recommendation {
	window := topNForSkills
	if window > len(rankedJobs) {
		window = len(rankedJobs)
	}
	if window < 0 {
		window = 0
	}

	referenceSkillSets := make([][]string, 0, window)
	for _, rj := range rankedJobs[:window] {
		referenceSkillSets = append(referenceSkillSets, rj.Job.Requirements.Skills)
	}

	out := make([]Recommendation, 0, len(rankedJobs))
	for i, rj := range rankedJobs {
		rec := Generate(cand, rj, referenceSkillSets)
		rec.Rank = i + 1
		out = append(out, rec)
	}
	return out
}
