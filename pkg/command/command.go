// Package command is the single mutation surface for campaign records.
// Every change, whether issued by a direct player action or by the
// narrating agent, is a named, schema-coerced command dispatched through
// the engine's registry, so each mutation is typed and independently
// testable.
package command

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/emberfell/campaign-engine/pkg/campaign"
)

// Command is a named mutation request against a campaign record.
type Command struct {
	Name string `json:"name"`
	Args Args   `json:"arguments,omitempty"`
}

// Handler transforms a record under a command's coerced arguments and
// returns the replacement value. Handlers never mutate their input.
type Handler func(*campaign.Record, Args) *campaign.Record

// Engine holds the command registry and applies batches.
type Engine struct {
	handlers map[string]Handler
	logger   *slog.Logger

	// Seams for deterministic tests.
	now   func() time.Time
	newID func() string
}

// NewEngine builds an engine with the full command set registered.
func NewEngine(logger *slog.Logger) *Engine {
	e := &Engine{
		handlers: make(map[string]Handler),
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	e.registerAll()
	return e
}

// Register binds a handler to a command name, replacing any prior binding.
func (e *Engine) Register(name string, h Handler) {
	e.handlers[name] = h
}

// Known reports whether a command name has a registered handler.
func (e *Engine) Known(name string) bool {
	_, ok := e.handlers[name]
	return ok
}

// Apply runs a batch in the order received, each command against the
// output of the previous, and returns the final record as one replacement
// value. Unknown command names are logged and skipped; the issuing agent
// may emit names the engine does not support yet. A nil argument map is
// treated as empty.
func (e *Engine) Apply(rec *campaign.Record, batch []Command) *campaign.Record {
	for _, cmd := range batch {
		handler, ok := e.handlers[cmd.Name]
		if !ok {
			if e.logger != nil {
				e.logger.Warn("Ignoring unknown command", "command", cmd.Name)
			}
			continue
		}
		args := cmd.Args
		if args == nil {
			args = Args{}
		}
		rec = handler(rec, args)
		if e.logger != nil {
			e.logger.Debug("Applied command", "command", cmd.Name)
		}
	}
	return rec
}
