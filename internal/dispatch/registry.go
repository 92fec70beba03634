// Package dispatch routes named frontend commands to their handlers and
// carries them over a JSON line protocol on stdin/stdout. The desktop shell
// runs the backend as a sidecar process and speaks this protocol.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
)

// Handler executes one command. The result is serialized back to the caller;
// an error is flattened to its message string.
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

// Registry maps command names to handlers.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds a handler under a command name, replacing any previous one.
func (r *Registry) Register(name string, h Handler) {
	r.handlers[name] = h
}

// Dispatch runs the handler for a command.
func (r *Registry) Dispatch(ctx context.Context, name string, args json.RawMessage) (any, error) {
	h, ok := r.handlers[name]
	if !ok {
		return nil, fmt.Errorf("unknown command: %s", name)
	}
	return h(ctx, args)
}

// decode unmarshals handler arguments into a typed struct. A command without
// arguments accepts a missing or null args field.
func decode[T any](raw json.RawMessage) (T, error) {
	var args T
	if len(raw) == 0 {
		return args, nil
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return args, fmt.Errorf("invalid arguments: %w", err)
	}
	return args, nil
}
