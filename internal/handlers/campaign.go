package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/emberfell/campaign-engine/internal/storage"
	"github.com/emberfell/campaign-engine/pkg/campaign"
)

// CampaignHandler handles campaign lifecycle operations and dispatches
// the turn and action subresources.
type CampaignHandler struct {
	storage storage.Storage
	logger  *slog.Logger
	turn    *TurnHandler
	actions *ActionHandler
}

func NewCampaignHandler(logger *slog.Logger, storage storage.Storage, turn *TurnHandler, actions *ActionHandler) *CampaignHandler {
	return &CampaignHandler{
		storage: storage,
		logger:  logger,
		turn:    turn,
		actions: actions,
	}
}

// CreateCampaignRequest defines the request body for creating a campaign
type CreateCampaignRequest struct {
	Name string `json:"name"`
}

// ServeHTTP routes campaign requests:
// POST /v1/campaigns                - Create a campaign
// GET /v1/campaigns                 - List campaign ids
// GET /v1/campaigns/{id}            - Read a campaign
// PATCH /v1/campaigns/{id}          - Update campaign metadata
// DELETE /v1/campaigns/{id}         - Delete a campaign
// POST /v1/campaigns/{id}/turn      - Run a narrator turn
// POST /v1/campaigns/{id}/actions   - Apply a direct command batch
func (h *CampaignHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/campaigns"), "/")
	if path == "" {
		switch r.Method {
		case http.MethodPost:
			h.handleCreate(w, r)
		case http.MethodGet:
			h.handleList(w, r)
		default:
			writeError(h.logger, w, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST, GET")
		}
		return
	}

	segments := strings.Split(path, "/")
	campaignID, err := uuid.Parse(segments[0])
	if err != nil {
		h.logger.Warn("Invalid campaign ID", "id", segments[0], "error", err)
		writeError(h.logger, w, http.StatusBadRequest, "Invalid campaign ID format")
		return
	}

	if len(segments) == 2 {
		switch segments[1] {
		case "turn":
			if r.Method != http.MethodPost {
				writeError(h.logger, w, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST")
				return
			}
			h.turn.handleTurn(w, r, campaignID)
		case "actions":
			if r.Method != http.MethodPost {
				writeError(h.logger, w, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: POST")
				return
			}
			h.actions.handleActions(w, r, campaignID)
		default:
			writeError(h.logger, w, http.StatusNotFound, "Unknown campaign subresource: "+segments[1])
		}
		return
	}
	if len(segments) > 2 {
		writeError(h.logger, w, http.StatusNotFound, "Not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleRead(w, r, campaignID)
	case http.MethodPatch:
		h.handlePatch(w, r, campaignID)
	case http.MethodDelete:
		h.handleDelete(w, r, campaignID)
	default:
		writeError(h.logger, w, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: GET, PATCH, DELETE")
	}
}

func (h *CampaignHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("Creating new campaign")

	var req CreateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in request body", "error", err)
		writeError(h.logger, w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	if req.Name == "" {
		writeError(h.logger, w, http.StatusBadRequest, "name field is required")
		return
	}

	rec := campaign.NewRecord(req.Name)
	if err := h.storage.CreateCampaign(r.Context(), rec); err != nil {
		h.logger.Error("Failed to create campaign", "error", err, "id", rec.ID.String())
		writeError(h.logger, w, http.StatusInternalServerError, "Failed to create campaign")
		return
	}

	h.logger.Debug("Campaign created successfully", "id", rec.ID.String())
	writeJSON(h.logger, w, http.StatusCreated, rec)
}

func (h *CampaignHandler) handleList(w http.ResponseWriter, r *http.Request) {
	ids, err := h.storage.ListCampaigns(r.Context())
	if err != nil {
		h.logger.Error("Failed to list campaigns", "error", err)
		writeError(h.logger, w, http.StatusInternalServerError, "Failed to list campaigns")
		return
	}
	writeJSON(h.logger, w, http.StatusOK, map[string][]uuid.UUID{"campaigns": ids})
}

func (h *CampaignHandler) handleRead(w http.ResponseWriter, r *http.Request, campaignID uuid.UUID) {
	rec, err := h.storage.GetCampaign(r.Context(), campaignID)
	if err != nil {
		h.logger.Error("Failed to load campaign", "error", err, "id", campaignID.String())
		writeError(h.logger, w, http.StatusInternalServerError, "Failed to load campaign")
		return
	}
	if rec == nil {
		h.logger.Warn("Campaign not found", "id", campaignID.String())
		writeError(h.logger, w, http.StatusNotFound, "Campaign not found")
		return
	}
	writeJSON(h.logger, w, http.StatusOK, rec)
}

// handlePatch updates campaign metadata. Gameplay state changes go
// through the command dispatch endpoints, never through PATCH.
func (h *CampaignHandler) handlePatch(w http.ResponseWriter, r *http.Request, campaignID uuid.UUID) {
	rec, err := h.storage.GetCampaign(r.Context(), campaignID)
	if err != nil {
		h.logger.Error("Failed to load campaign for patch", "error", err, "id", campaignID.String())
		writeError(h.logger, w, http.StatusInternalServerError, "Failed to load campaign")
		return
	}
	if rec == nil {
		writeError(h.logger, w, http.StatusNotFound, "Campaign not found")
		return
	}

	var patch CreateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.logger.Warn("Invalid JSON in PATCH request body", "error", err)
		writeError(h.logger, w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	updated := rec.Clone()
	if patch.Name != "" {
		updated.Name = patch.Name
	}

	if err := h.storage.ReplaceCampaign(r.Context(), updated); err != nil {
		if errors.Is(err, storage.ErrVersionConflict) {
			h.logger.Warn("Patch lost a write race", "id", campaignID.String())
			writeError(h.logger, w, http.StatusConflict, "Campaign was modified concurrently; retry the patch")
			return
		}
		h.logger.Error("Failed to save patched campaign", "error", err, "id", campaignID.String())
		writeError(h.logger, w, http.StatusInternalServerError, "Failed to save campaign")
		return
	}

	h.logger.Info("Campaign patched successfully", "id", campaignID.String())
	writeJSON(h.logger, w, http.StatusOK, updated)
}

func (h *CampaignHandler) handleDelete(w http.ResponseWriter, r *http.Request, campaignID uuid.UUID) {
	if err := h.storage.DeleteCampaign(r.Context(), campaignID); err != nil {
		h.logger.Error("Failed to delete campaign", "error", err, "id", campaignID.String())
		writeError(h.logger, w, http.StatusInternalServerError, "Failed to delete campaign")
		return
	}
	h.logger.Debug("Campaign deleted successfully", "id", campaignID.String())
	w.WriteHeader(http.StatusNoContent)
}
