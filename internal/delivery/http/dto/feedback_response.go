package dto

import (
	"time"

	"jobmatch/internal/domain/feedback"
	"jobmatch/internal/domain/ranking"
)

type FeedbackResponse struct {
	ID          int64            `json:"id"`
	CandidateID string           `json:"candidate_id"`
	JobID       string           `json:"job_id"`
	Type        string           `json:"type"`
	PresetUsed  string           `json:"preset_used,omitempty"`
	WeightsUsed *ranking.Weights `json:"weights_used,omitempty"`
	CreatedAt   string           `json:"created_at,omitempty"`
}

func FromFeedback(rec feedback.Record) FeedbackResponse {
	out := FeedbackResponse{
		ID:          rec.ID,
		CandidateID: rec.CandidateID.String(),
		JobID:       rec.JobID.String(),
		Type:        rec.Type,
		WeightsUsed: rec.WeightsUsed,
	}
	if rec.PresetUsed != nil {
		out.PresetUsed = *rec.PresetUsed
	}
	if !rec.CreatedAt.IsZero() {
		out.CreatedAt = rec.CreatedAt.UTC().Format(time.RFC3339)
	}
	return out
}

func FromFeedbackList(recs []feedback.Record) []FeedbackResponse {
	out := make([]FeedbackResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, FromFeedback(r))
	}
	return out
}
