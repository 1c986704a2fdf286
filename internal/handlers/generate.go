package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/S1M0D/ModcreatorSchedule1-sub001/internal/services"
	"github.com/S1M0D/ModcreatorSchedule1-sub001/internal/services/events"
	queueSvc "github.com/S1M0D/ModcreatorSchedule1-sub001/internal/services/queue"
	"github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/codegen"
	"github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/queue"
)

// GenerateRequest is the POST /v1/generate body.
type GenerateRequest struct {
	Kind        queue.Kind `json:"kind"`
	BlueprintID string     `json:"blueprint_id"`

	// Async enqueues the request for a worker instead of generating
	// inline. The generated source is then retrievable via GET once the
	// worker completes.
	Async bool `json:"async,omitempty"`
}

// GenerateResponse is the synchronous generation reply.
type GenerateResponse struct {
	Kind        queue.Kind `json:"kind"`
	BlueprintID string     `json:"blueprint_id"`
	Source      string     `json:"source,omitempty"`
	RequestID   string     `json:"request_id,omitempty"`
	Queued      bool       `json:"queued,omitempty"`
}

// GenerateHandler renders blueprints to C# source.
// Routes:
// POST /v1/generate                - Generate (inline or queued)
// GET /v1/generate/{kind}/{id}     - Fetch previously generated source
type GenerateHandler struct {
	storage     services.Storage
	queue       *queueSvc.GenerationQueue
	broadcaster *events.Broadcaster
	logger      *slog.Logger
}

func NewGenerateHandler(logger *slog.Logger, storage services.Storage, generationQueue *queueSvc.GenerationQueue, broadcaster *events.Broadcaster) *GenerateHandler {
	return &GenerateHandler{
		storage:     storage,
		queue:       generationQueue,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

func (h *GenerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch r.Method {
	case http.MethodPost:
		h.handleGenerate(w, r)
	case http.MethodGet:
		h.handleFetch(w, r)
	default:
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST, GET")
	}
}

func (h *GenerateHandler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if req.Kind != queue.KindQuest && req.Kind != queue.KindNPC {
		writeError(w, h.logger, http.StatusBadRequest, "kind must be \"quest\" or \"npc\"")
		return
	}
	if req.BlueprintID == "" {
		writeError(w, h.logger, http.StatusBadRequest, "blueprint_id field is required")
		return
	}

	if req.Async {
		h.handleEnqueue(w, r, req)
		return
	}

	source, err := h.generateInline(r, req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "Blueprint not found")
			return
		}
		h.logger.Error("Generation failed", "error", err, "kind", req.Kind, "blueprint_id", req.BlueprintID)
		writeError(w, h.logger, http.StatusInternalServerError, "Generation failed")
		return
	}

	// Persist alongside the inline reply so the console and GET path see
	// the same output.
	if err := h.storage.SaveGeneratedSource(r.Context(), req.Kind, req.BlueprintID, source); err != nil {
		h.logger.Error("Failed to store generated source", "error", err, "blueprint_id", req.BlueprintID)
	}

	w.WriteHeader(http.StatusOK)
	resp := GenerateResponse{Kind: req.Kind, BlueprintID: req.BlueprintID, Source: source}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("Failed to encode generate response", "error", err)
	}
}

func (h *GenerateHandler) generateInline(r *http.Request, req GenerateRequest) (string, error) {
	switch req.Kind {
	case queue.KindQuest:
		q, err := h.storage.LoadQuest(r.Context(), req.BlueprintID)
		if err != nil {
			return "", err
		}
		return codegen.GenerateQuest(q)
	default:
		n, err := h.storage.LoadNPC(r.Context(), req.BlueprintID)
		if err != nil {
			return "", err
		}
		return codegen.GenerateNPC(n)
	}
}

func (h *GenerateHandler) handleEnqueue(w http.ResponseWriter, r *http.Request, req GenerateRequest) {
	genReq := &queue.GenerationRequest{
		RequestID:   uuid.New().String(),
		Kind:        req.Kind,
		BlueprintID: req.BlueprintID,
		EnqueuedAt:  time.Now().UTC(),
	}

	if err := h.queue.Enqueue(r.Context(), genReq); err != nil {
		h.logger.Error("Failed to enqueue generation request", "error", err, "blueprint_id", req.BlueprintID)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to enqueue generation request")
		return
	}

	if err := h.broadcaster.PublishQueued(r.Context(), genReq); err != nil {
		h.logger.Error("Failed to publish queued event", "error", err)
	}

	w.WriteHeader(http.StatusAccepted)
	resp := GenerateResponse{
		Kind:        req.Kind,
		BlueprintID: req.BlueprintID,
		RequestID:   genReq.RequestID,
		Queued:      true,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("Failed to encode generate response", "error", err)
	}
}

func (h *GenerateHandler) handleFetch(w http.ResponseWriter, r *http.Request) {
	kindStr, id, ok := splitKindAndID(r.URL.Path, "/v1/generate")
	if !ok {
		writeError(w, h.logger, http.StatusBadRequest, "Path must be /v1/generate/{kind}/{id}")
		return
	}

	kind := queue.Kind(kindStr)
	if kind != queue.KindQuest && kind != queue.KindNPC {
		writeError(w, h.logger, http.StatusBadRequest, "kind must be \"quest\" or \"npc\"")
		return
	}

	source, err := h.storage.LoadGeneratedSource(r.Context(), kind, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "No generated source for this blueprint")
			return
		}
		h.logger.Error("Failed to load generated source", "error", err, "kind", kind, "id", id)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load generated source")
		return
	}

	w.WriteHeader(http.StatusOK)
	resp := GenerateResponse{Kind: kind, BlueprintID: id, Source: source}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("Failed to encode generate response", "error", err)
	}
}

// splitKindAndID parses "/v1/generate/{kind}/{id}" paths.
func splitKindAndID(path, prefix string) (kind, id string, ok bool) {
	rest := strings.Trim(strings.TrimPrefix(path, prefix), "/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
