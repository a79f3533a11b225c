package services

import (
	"context"

	"github.com/emberfell/campaign-engine/pkg/chat"
	"github.com/emberfell/campaign-engine/pkg/command"
)

// TurnResponse is one narrator turn: the story text shown to the player
// and the state mutations the narrative implies.
type TurnResponse struct {
	Narration string            `json:"narration"`
	Commands  []command.Command `json:"commands,omitempty"`
}

// Narrator defines the interface for the narrating agent.
type Narrator interface {
	// Turn generates the next narration from the assembled message
	// sequence and extracts any commands the narrator reported.
	Turn(ctx context.Context, messages []chat.Message) (*TurnResponse, error)
}
