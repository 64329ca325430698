package feedback

import (
	"time"

	"jobmatch/internal/domain/ranking"

	"github.com/google/uuid"
)

const (
	TypeLike    = "like"
	TypeDislike = "dislike"
)

func ValidType(t string) bool {
	return t == TypeLike || t == TypeDislike
}

type Record struct {
	ID          int64            `json:"id"`
	CandidateID uuid.UUID        `json:"candidate_id"`
	JobID       uuid.UUID        `json:"job_id"`
	Type        string           `json:"feedback_type"`
	PresetUsed  *string          `json:"preset_used"`
	WeightsUsed *ranking.Weights `json:"weights_used"`
	CreatedAt   time.Time        `json:"timestamp"`
}
