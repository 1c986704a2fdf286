package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/blueprint"
	"github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/queue"
)

// ValidateRequest is the POST /v1/validate body: the blueprint kind plus
// the blueprint document itself.
type ValidateRequest struct {
	Kind      queue.Kind      `json:"kind"`
	Blueprint json.RawMessage `json:"blueprint"`
}

// ValidateHandler runs the advisory validator over a submitted blueprint
// without persisting it.
type ValidateHandler struct {
	logger *slog.Logger
}

func NewValidateHandler(logger *slog.Logger) *ValidateHandler {
	return &ValidateHandler{logger: logger}
}

func (h *ValidateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST")
		return
	}

	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if len(req.Blueprint) == 0 {
		writeError(w, h.logger, http.StatusBadRequest, "blueprint field is required")
		return
	}

	var result blueprint.ValidationResult
	switch req.Kind {
	case queue.KindQuest:
		var q blueprint.Quest
		if err := json.Unmarshal(req.Blueprint, &q); err != nil {
			writeError(w, h.logger, http.StatusBadRequest, "Invalid quest blueprint: "+err.Error())
			return
		}
		q.Normalize()
		result = q.Validate()

	case queue.KindNPC:
		var n blueprint.NPC
		if err := json.Unmarshal(req.Blueprint, &n); err != nil {
			writeError(w, h.logger, http.StatusBadRequest, "Invalid NPC blueprint: "+err.Error())
			return
		}
		n.Normalize()
		result = n.Validate()

	default:
		writeError(w, h.logger, http.StatusBadRequest, "kind must be \"quest\" or \"npc\"")
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.logger.Error("Failed to encode validation response", "error", err)
	}
}
