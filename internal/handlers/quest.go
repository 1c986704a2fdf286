package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/S1M0D/ModcreatorSchedule1-sub001/internal/services"
	"github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/blueprint"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, logger *slog.Logger, status int, msg string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: msg}); err != nil {
		logger.Error("Failed to encode error response", "error", err)
	}
}

// blueprintID extracts the trailing ID segment from paths like
// "/v1/quests/{id}". Returns "" for the collection path.
func blueprintID(path, prefix string) (string, bool) {
	rest := strings.TrimPrefix(path, prefix)
	id := strings.Trim(rest, "/")
	if strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}

// QuestHandler handles quest blueprint CRUD.
// Routes:
// GET /v1/quests          - List quest blueprint IDs
// POST /v1/quests         - Create or update a quest blueprint
// GET /v1/quests/{id}     - Read a quest blueprint
// DELETE /v1/quests/{id}  - Delete a quest blueprint
type QuestHandler struct {
	storage services.Storage
	logger  *slog.Logger
}

func NewQuestHandler(logger *slog.Logger, storage services.Storage) *QuestHandler {
	return &QuestHandler{
		storage: storage,
		logger:  logger,
	}
}

func (h *QuestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, ok := blueprintID(r.URL.Path, "/v1/quests")
	if !ok {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid quest path")
		return
	}

	switch r.Method {
	case http.MethodGet:
		if id == "" {
			h.handleList(w, r)
			return
		}
		h.handleRead(w, r, id)

	case http.MethodPost:
		h.handleSave(w, r)

	case http.MethodDelete:
		if id == "" {
			writeError(w, h.logger, http.StatusBadRequest, "Quest ID is required for DELETE requests")
			return
		}
		h.handleDelete(w, r, id)

	default:
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: GET, POST, DELETE")
	}
}

func (h *QuestHandler) handleList(w http.ResponseWriter, r *http.Request) {
	ids, err := h.storage.ListQuests(r.Context())
	if err != nil {
		h.logger.Error("Failed to list quests", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to list quests")
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string][]string{"quests": ids}); err != nil {
		h.logger.Error("Failed to encode quest list response", "error", err)
	}
}

func (h *QuestHandler) handleRead(w http.ResponseWriter, r *http.Request, id string) {
	q, err := h.storage.LoadQuest(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "Quest not found")
			return
		}
		h.logger.Error("Failed to load quest", "error", err, "id", id)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load quest")
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(q); err != nil {
		h.logger.Error("Failed to encode quest response", "error", err)
	}
}

func (h *QuestHandler) handleSave(w http.ResponseWriter, r *http.Request) {
	var q blueprint.Quest
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		h.logger.Warn("Invalid JSON in request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	q.Normalize()
	if q.ID == "" {
		writeError(w, h.logger, http.StatusBadRequest, "id field is required")
		return
	}

	if err := h.storage.SaveQuest(r.Context(), &q); err != nil {
		h.logger.Error("Failed to save quest", "error", err, "id", q.ID)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to save quest")
		return
	}

	h.logger.Debug("Quest saved", "id", q.ID)
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(q); err != nil {
		h.logger.Error("Failed to encode quest response", "error", err)
	}
}

func (h *QuestHandler) handleDelete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.storage.DeleteQuest(r.Context(), id); err != nil {
		h.logger.Error("Failed to delete quest", "error", err, "id", id)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to delete quest")
		return
	}
	h.logger.Debug("Quest deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}
