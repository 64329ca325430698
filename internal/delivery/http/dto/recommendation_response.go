package dto

import (
	"jobmatch/internal/domain/ranking"
	"jobmatch/internal/domain/recommendation"
	"jobmatch/internal/usecase"
)

type RecommendationItem struct {
	Rank          int                          `json:"rank"`
	Job           JobResponse                  `json:"job"`
	Scores        ranking.Breakdown            `json:"scores"`
	SkillAnalysis recommendation.SkillAnalysis `json:"skill_analysis"`
	Explanation   string                       `json:"explanation"`
	Summary       string                       `json:"summary"`
}

type RecommendationResponse struct {
	CandidateID       string               `json:"candidate_id"`
	PresetUsed        string               `json:"preset_used"`
	Weights           ranking.Weights      `json:"weights"`
	TotalJobsAnalyzed int                  `json:"total_jobs_analyzed"`
	Recommendations   []RecommendationItem `json:"recommendations"`
}

func FromRecommendationResult(r usecase.RecommendationResult) RecommendationResponse {
	items := make([]RecommendationItem, 0, len(r.Recommendations))
	for _, rec := range r.Recommendations {
		items = append(items, RecommendationItem{
			Rank:          rec.Rank,
			Job:           FromJob(rec.Job),
			Scores:        rec.Scores,
			SkillAnalysis: rec.SkillAnalysis,
			Explanation:   rec.Explanation,
			Summary:       recommendation.QuickSummary(rec.Scores, rec.SkillAnalysis),
		})
	}
	return RecommendationResponse{
		CandidateID:       r.CandidateID.String(),
		PresetUsed:        r.PresetUsed,
		Weights:           r.Weights,
		TotalJobsAnalyzed: r.TotalJobsAnalyzed,
		Recommendations:   items,
	}
}
