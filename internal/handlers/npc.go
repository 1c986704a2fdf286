package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/S1M0D/ModcreatorSchedule1-sub001/internal/services"
	"github.com/S1M0D/ModcreatorSchedule1-sub001/pkg/blueprint"
)

// NPCHandler handles NPC blueprint CRUD.
// Routes:
// GET /v1/npcs          - List NPC blueprint IDs
// POST /v1/npcs         - Create or update an NPC blueprint
// GET /v1/npcs/{id}     - Read an NPC blueprint
// DELETE /v1/npcs/{id}  - Delete an NPC blueprint
type NPCHandler struct {
	storage services.Storage
	logger  *slog.Logger
}

func NewNPCHandler(logger *slog.Logger, storage services.Storage) *NPCHandler {
	return &NPCHandler{
		storage: storage,
		logger:  logger,
	}
}

func (h *NPCHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, ok := blueprintID(r.URL.Path, "/v1/npcs")
	if !ok {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid NPC path")
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
			writeError(w, h.logger, http.StatusBadRequest, "NPC ID is required for DELETE requests")
			return
		}
		h.handleDelete(w, r, id)

	default:
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: GET, POST, DELETE")
	}
}

func (h *NPCHandler) handleList(w http.ResponseWriter, r *http.Request) {
	ids, err := h.storage.ListNPCs(r.Context())
	if err != nil {
		h.logger.Error("Failed to list NPCs", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to list NPCs")
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string][]string{"npcs": ids}); err != nil {
		h.logger.Error("Failed to encode NPC list response", "error", err)
	}
}

func (h *NPCHandler) handleRead(w http.ResponseWriter, r *http.Request, id string) {
	n, err := h.storage.LoadNPC(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "NPC not found")
			return
		}
		h.logger.Error("Failed to load NPC", "error", err, "id", id)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load NPC")
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(n); err != nil {
		h.logger.Error("Failed to encode NPC response", "error", err)
	}
}

func (h *NPCHandler) handleSave(w http.ResponseWriter, r *http.Request) {
	var n blueprint.NPC
	if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
		h.logger.Warn("Invalid JSON in request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	n.Normalize()
	if n.ID == "" {
		writeError(w, h.logger, http.StatusBadRequest, "id field is required")
		return
	}

	if err := h.storage.SaveNPC(r.Context(), &n); err != nil {
		h.logger.Error("Failed to save NPC", "error", err, "id", n.ID)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to save NPC")
		return
	}

	h.logger.Debug("NPC saved", "id", n.ID)
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(n); err != nil {
		h.logger.Error("Failed to encode NPC response", "error", err)
	}
}

func (h *NPCHandler) handleDelete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.storage.DeleteNPC(r.Context(), id); err != nil {
		h.logger.Error("Failed to delete NPC", "error", err, "id", id)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to delete NPC")
		return
	}
	h.logger.Debug("NPC deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}
