package prompts

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberfell/campaign-engine/pkg/campaign"
	"github.com/emberfell/campaign-engine/pkg/chat"
)

func TestToContextState_BoundsEntryLogs(t *testing.T) {
	rec := campaign.NewRecord("Wren")
	for i := 0; i < 10; i++ {
		rec.Quests = append(rec.Quests, campaign.Entry{
			ID: fmt.Sprintf("q%d", i), Title: fmt.Sprintf("Quest %d", i),
		})
	}

	cs := ToContextState(rec)
	require.Len(t, cs.Quests, MaxEntriesPerLog)
	// Most recent survive.
	assert.Equal(t, "Quest 9", cs.Quests[len(cs.Quests)-1].Title)
	assert.Equal(t, "Quest 4", cs.Quests[0].Title)

	text := cs.ToString()
	assert.Contains(t, text, "4 older entries omitted")
	assert.NotContains(t, text, "Quest 0")
}

func TestContextState_ToString(t *testing.T) {
	rec := campaign.NewRecord("Wren")
	rec.Reputation["thieves guild"] = 12
	rec.NPCs = append(rec.NPCs, campaign.NPC{Name: "Maro", Role: "fence", Standing: 7})
	rec.GrantSkillExperience("smithing", 4)

	text := ToContextState(rec).ToString()
	assert.Contains(t, text, "Wren")
	assert.Contains(t, text, "HP 20/20")
	assert.Contains(t, text, "strength 10")
	assert.Contains(t, text, "smithing 1")
	assert.Contains(t, text, "thieves guild")
	assert.Contains(t, text, "Maro (Friendly), fence")
	assert.Contains(t, text, "Worn Shortsword")
}

func TestContextState_ToString_TitleCasesDispositions(t *testing.T) {
	rec := campaign.NewRecord("Wren")
	rec.Reputation["thieves guild"] = 12
	rec.Reputation["city watch"] = -3
	rec.NPCs = append(rec.NPCs, campaign.NPC{Name: "Maro", Standing: -16})

	text := ToContextState(rec).ToString()
	assert.Contains(t, text, "thieves guild: Positive (12)")
	assert.Contains(t, text, "city watch: Neutral (-3)")
	assert.Contains(t, text, "Maro (Hostile)")
	assert.NotContains(t, text, "(hostile)")
}

func TestBuildSystemPrompt_NamesVocabulary(t *testing.T) {
	p := BuildSystemPrompt()
	for _, cmd := range []string{"add_quest", "update_reputation", "adjust_hp", "add_spell", "consume_inventory_item"} {
		assert.Contains(t, p, cmd)
	}
	assert.Contains(t, p, "strength, dexterity")
	assert.Contains(t, p, "smithing")
}

func TestTurnMessages_Order(t *testing.T) {
	rec := campaign.NewRecord("Wren")
	for i := 0; i < 15; i++ {
		rec.ChatHistory = append(rec.ChatHistory, chat.Message{
			Role: chat.RoleUser, Content: fmt.Sprintf("turn %d", i),
		})
	}

	msgs := TurnMessages(rec, "I open the door.")
	// Two system messages, trimmed history, then the new player message.
	require.Len(t, msgs, 2+chat.HistoryLimit+1)
	assert.Equal(t, chat.RoleSystem, msgs[0].Role)
	assert.Equal(t, chat.RoleSystem, msgs[1].Role)
	assert.Contains(t, msgs[1].Content, "Current campaign state")
	assert.Equal(t, "turn 5", msgs[2].Content, "oldest history dropped")

	last := msgs[len(msgs)-1]
	assert.Equal(t, chat.RoleUser, last.Role)
	assert.True(t, strings.HasSuffix(last.Content, "I open the door."))
}
