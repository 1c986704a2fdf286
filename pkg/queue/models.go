package queue

import (
	"encoding/json"
	"fmt"
	"time"
)

// Kind identifies which generator a queued request runs.
type Kind string

const (
	KindQuest Kind = "quest"
	KindNPC   Kind = "npc"
)

// GenerationRequest is one asynchronous generation job. It travels through
// the Redis list as JSON.
type GenerationRequest struct {
	RequestID   string    `json:"request_id"`
	Kind        Kind      `json:"kind"`
	BlueprintID string    `json:"blueprint_id"`
	EnqueuedAt  time.Time `json:"enqueued_at"`
}

// Validate checks the request is well formed enough to process.
func (r *GenerationRequest) Validate() error {
	if r.Kind != KindQuest && r.Kind != KindNPC {
		return fmt.Errorf("unknown generation kind: %q", r.Kind)
	}
	if r.BlueprintID == "" {
		return fmt.Errorf("blueprint_id is required")
	}
	return nil
}

// ToJSON converts the request to JSON bytes for Redis.
func (r *GenerationRequest) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}

// FromJSON parses a request from JSON bytes.
func FromJSON(data []byte) (*GenerationRequest, error) {
	var req GenerationRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, err
	}
	return &req, nil
}
