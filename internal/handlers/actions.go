package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/emberfell/campaign-engine/internal/storage"
	"github.com/emberfell/campaign-engine/pkg/campaign"
	"github.com/emberfell/campaign-engine/pkg/command"
)

// ActionHandler applies a direct player command batch. UI actions go
// through the same dispatch path as narrator-issued commands.
type ActionHandler struct {
	storage storage.Storage
	engine  *command.Engine
	logger  *slog.Logger
}

func NewActionHandler(logger *slog.Logger, storage storage.Storage, engine *command.Engine) *ActionHandler {
	return &ActionHandler{
		storage: storage,
		engine:  engine,
		logger:  logger,
	}
}

// ActionRequest is a direct command batch issued by the player's UI.
type ActionRequest struct {
	Commands []command.Command `json:"commands"`
}

// ActionResult is the campaign record after the batch.
type ActionResult struct {
	Campaign *campaign.Record `json:"campaign"`
}

func (h *ActionHandler) handleActions(w http.ResponseWriter, r *http.Request, campaignID uuid.UUID) {
	var req ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in action request body", "error", err)
		writeError(h.logger, w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if len(req.Commands) == 0 {
		writeError(h.logger, w, http.StatusBadRequest, "commands field is required")
		return
	}

	rec, err := h.storage.GetCampaign(r.Context(), campaignID)
	if err != nil {
		h.logger.Error("Failed to load campaign", "error", err, "id", campaignID.String())
		writeError(h.logger, w, http.StatusInternalServerError, "Failed to load campaign")
		return
	}
	if rec == nil {
		writeError(h.logger, w, http.StatusNotFound, "Campaign not found")
		return
	}

	next := h.engine.Apply(rec, req.Commands)
	if next == rec {
		next = rec.Clone()
	}

	if err := h.storage.ReplaceCampaign(r.Context(), next); err != nil {
		if errors.Is(err, storage.ErrVersionConflict) {
			h.logger.Warn("Action batch lost a write race", "id", campaignID.String())
			writeError(h.logger, w, http.StatusConflict, "Campaign was modified concurrently; retry the action")
			return
		}
		h.logger.Error("Failed to save campaign after actions", "error", err, "id", campaignID.String())
		writeError(h.logger, w, http.StatusInternalServerError, "Failed to save campaign")
		return
	}
	next.Version++ // reflect the persisted version in the response

	h.logger.Debug("Action batch applied", "id", campaignID.String(), "commands", len(req.Commands))
	writeJSON(h.logger, w, http.StatusOK, ActionResult{Campaign: next})
}
