package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberfell/campaign-engine/internal/services"
	"github.com/emberfell/campaign-engine/pkg/chat"
	"github.com/emberfell/campaign-engine/pkg/command"
)

func TestTurn_AppliesCommandsAndHistory(t *testing.T) {
	env := newTestEnv()
	rec := env.seed(t, "Wren")

	env.narrator.SetResponse(&services.TurnResponse{
		Narration: "You fell the bandit with a clean strike.",
		Commands: []command.Command{
			{Name: "adjust_xp", Args: command.Args{"amount": float64(25)}},
			{Name: "update_reputation", Args: command.Args{"changes": map[string]any{"city watch": float64(1)}}},
		},
	})

	w := env.do(t, http.MethodPost, "/v1/campaigns/"+rec.ID.String()+"/turn", TurnRequest{Message: "I attack the bandit."})
	require.Equal(t, http.StatusOK, w.Code)

	var result TurnResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
	assert.Equal(t, "You fell the bandit with a clean strike.", result.Narration)
	assert.Equal(t, 25, result.Campaign.XP)
	assert.Len(t, result.Commands, 2)
	assert.Equal(t, int64(2), result.Campaign.Version)

	stored, err := env.storage.GetCampaign(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, stored.XP)
	assert.Equal(t, 1, stored.Reputation["city watch"])
	require.Len(t, stored.ChatHistory, 2)
	assert.Equal(t, chat.RoleUser, stored.ChatHistory[0].Role)
	assert.Equal(t, "I attack the bandit.", stored.ChatHistory[0].Content)
	assert.Equal(t, chat.RoleNarrator, stored.ChatHistory[1].Role)

	// The narrator saw system context plus the player's message.
	require.NotEmpty(t, env.narrator.LastMessages)
	assert.Equal(t, chat.RoleSystem, env.narrator.LastMessages[0].Role)
}

func TestTurn_NarrationOnly(t *testing.T) {
	env := newTestEnv()
	rec := env.seed(t, "Wren")

	env.narrator.SetResponse(&services.TurnResponse{Narration: "The night passes quietly."})

	w := env.do(t, http.MethodPost, "/v1/campaigns/"+rec.ID.String()+"/turn", TurnRequest{Message: "I rest."})
	require.Equal(t, http.StatusOK, w.Code)

	stored, err := env.storage.GetCampaign(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.XP)
	require.Len(t, stored.ChatHistory, 2)
}

func TestTurn_NarratorFailureLeavesRecordUnchanged(t *testing.T) {
	env := newTestEnv()
	rec := env.seed(t, "Wren")
	env.narrator.SetError(errors.New("model overloaded"))

	w := env.do(t, http.MethodPost, "/v1/campaigns/"+rec.ID.String()+"/turn", TurnRequest{Message: "I attack."})
	assert.Equal(t, http.StatusBadGateway, w.Code)

	stored, err := env.storage.GetCampaign(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.ChatHistory)
	assert.Equal(t, int64(1), stored.Version)
}

func TestTurn_WriteConflict(t *testing.T) {
	env := newTestEnv()
	rec := env.seed(t, "Wren")
	env.storage.FailReplace = true

	w := env.do(t, http.MethodPost, "/v1/campaigns/"+rec.ID.String()+"/turn", TurnRequest{Message: "I attack."})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestTurn_MissingCampaign(t *testing.T) {
	env := newTestEnv()
	rec := env.seed(t, "Wren")
	require.NoError(t, env.storage.DeleteCampaign(context.Background(), rec.ID))

	w := env.do(t, http.MethodPost, "/v1/campaigns/"+rec.ID.String()+"/turn", TurnRequest{Message: "Hello?"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTurn_EmptyMessage(t *testing.T) {
	env := newTestEnv()
	rec := env.seed(t, "Wren")

	w := env.do(t, http.MethodPost, "/v1/campaigns/"+rec.ID.String()+"/turn", TurnRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
