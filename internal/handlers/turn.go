package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/emberfell/campaign-engine/internal/services"
	"github.com/emberfell/campaign-engine/internal/storage"
	"github.com/emberfell/campaign-engine/pkg/campaign"
	"github.com/emberfell/campaign-engine/pkg/chat"
	"github.com/emberfell/campaign-engine/pkg/command"
	"github.com/emberfell/campaign-engine/pkg/prompts"
)

// TurnHandler runs one narrator turn: load the record, narrate, apply
// the reported command batch, persist the replacement value.
type TurnHandler struct {
	storage  storage.Storage
	narrator services.Narrator
	engine   *command.Engine
	logger   *slog.Logger
}

func NewTurnHandler(logger *slog.Logger, storage storage.Storage, narrator services.Narrator, engine *command.Engine) *TurnHandler {
	return &TurnHandler{
		storage:  storage,
		narrator: narrator,
		engine:   engine,
		logger:   logger,
	}
}

// TurnRequest is the player's message for one turn.
type TurnRequest struct {
	Message string `json:"message"`
}

// TurnResult is the narration plus the campaign record after the turn.
type TurnResult struct {
	Narration string            `json:"narration"`
	Campaign  *campaign.Record  `json:"campaign"`
	Commands  []command.Command `json:"commands,omitempty"`
}

func (h *TurnHandler) handleTurn(w http.ResponseWriter, r *http.Request, campaignID uuid.UUID) {
	var req TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Invalid JSON in turn request body", "error", err)
		writeError(h.logger, w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if req.Message == "" {
		writeError(h.logger, w, http.StatusBadRequest, "message field is required")
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

	resp, err := h.narrator.Turn(r.Context(), prompts.TurnMessages(rec, req.Message))
	if err != nil {
		// The stored record is untouched; the player can retry the turn.
		h.logger.Error("Narrator turn failed", "error", err, "id", campaignID.String())
		writeError(h.logger, w, http.StatusBadGateway, "Narrator is unavailable")
		return
	}

	next := h.engine.Apply(rec, resp.Commands)
	if next == rec {
		next = rec.Clone()
	}
	next.ChatHistory = append(next.ChatHistory,
		chat.Message{Role: chat.RoleUser, Content: req.Message},
		chat.Message{Role: chat.RoleNarrator, Content: resp.Narration},
	)

	if err := h.storage.ReplaceCampaign(r.Context(), next); err != nil {
		if errors.Is(err, storage.ErrVersionConflict) {
			h.logger.Warn("Turn lost a write race", "id", campaignID.String())
			writeError(h.logger, w, http.StatusConflict, "Campaign was modified concurrently; retry the turn")
			return
		}
		h.logger.Error("Failed to save campaign after turn", "error", err, "id", campaignID.String())
		writeError(h.logger, w, http.StatusInternalServerError, "Failed to save campaign")
		return
	}
	next.Version++ // reflect the persisted version in the response

	h.logger.Debug("Turn applied", "id", campaignID.String(), "commands", len(resp.Commands))
	writeJSON(h.logger, w, http.StatusOK, TurnResult{
		Narration: resp.Narration,
		Campaign:  next,
		Commands:  resp.Commands,
	})
}
