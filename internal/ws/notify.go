package ws

import (
	"encoding/json"
	"strings"
	"sync/atomic"
	"time"
)

type JobsIngestedEvent struct {
	Type      string `json:"type"`
	Source    string `json:"source"`
	Count     int    `json:"count"`
	Timestamp string `json:"timestamp"`
}

type WeightsUpdatedEvent struct {
	Type        string `json:"type"`
	CandidateID string `json:"candidate_id"`
	Preset      string `json:"preset"`
	Timestamp   string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func NotifyJobsIngested(source string, count int) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	source = strings.ToLower(strings.TrimSpace(source))
	if source == "" || count <= 0 {
		return
	}

	evt := JobsIngestedEvent{
		Type:      "jobs_ingested",
		Source:    source,
		Count:     count,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}

func NotifyWeightsUpdated(candidateID string, preset string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}
	if strings.TrimSpace(candidateID) == "" {
		return
	}

	evt := WeightsUpdatedEvent{
		Type:        "weights_updated",
		CandidateID: candidateID,
		Preset:      preset,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
