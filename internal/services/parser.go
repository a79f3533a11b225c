package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/emberfell/campaign-engine/pkg/command"
)

type commandBlock struct {
	Commands []command.Command `json:"commands"`
}

// ParseNarratorResponse splits a narrator completion into story text and
// the command batch reported in its fenced JSON block. A response with no
// block is pure narration. A block that does not parse is an error; the
// caller decides whether to degrade or fail the turn.
func ParseNarratorResponse(content string) (string, []command.Command, error) {
	raw, narration, found := extractJSONBlock(content)
	if !found {
		return strings.TrimSpace(content), nil, nil
	}

	var block commandBlock
	if err := json.Unmarshal([]byte(raw), &block); err != nil {
		return "", nil, fmt.Errorf("failed to parse command block: %w", err)
	}

	return narration, block.Commands, nil
}

// extractJSONBlock finds the last fenced json block in the content and
// returns its body plus the content with the block removed. A bare
// trailing JSON object is accepted when no fence is present; models
// drop the fence often enough to make that worth handling.
func extractJSONBlock(content string) (raw, remainder string, found bool) {
	const opening = "```json"
	const closing = "```"

	if start := strings.LastIndex(content, opening); start >= 0 {
		bodyStart := start + len(opening)
		end := strings.Index(content[bodyStart:], closing)
		if end < 0 {
			// Unterminated fence: treat the rest of the content as the block.
			return strings.TrimSpace(content[bodyStart:]), strings.TrimSpace(content[:start]), true
		}
		raw = strings.TrimSpace(content[bodyStart : bodyStart+end])
		remainder = strings.TrimSpace(content[:start] + content[bodyStart+end+len(closing):])
		return raw, remainder, true
	}

	// Bare object fallback: a trailing {...} that mentions "commands".
	if start := strings.LastIndex(content, "{\"commands\""); start >= 0 {
		candidate := strings.TrimSpace(content[start:])
		if json.Valid([]byte(candidate)) {
			return candidate, strings.TrimSpace(content[:start]), true
		}
	}

	return "", content, false
}
