package signaling

import (
	"log/slog"
	"sync"
)

// Sink is the deliverable end of one live peer connection. The websocket
// client implements it; tests substitute their own.
type Sink interface {
	Send(msg *Message)
}

// Registry is the only authority mapping a connection id to its sink.
// All mutation goes through its methods; the map is never handed out.
type Registry struct {
	mu    sync.RWMutex
	sinks map[string]Sink
}

// NewRegistry creates an empty connection registry.
func NewRegistry() *Registry {
	return &Registry{
		sinks: make(map[string]Sink),
	}
}

// Register records the sink for a newly connected peer. It fails with
// ErrDuplicateID if the id is already taken, which should never happen
// with randomly generated ids.
func (r *Registry) Register(id string, sink Sink) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sinks[id]; ok {
		slog.Error("connection id collision", "connection", id)
		return ErrDuplicateID
	}
	r.sinks[id] = sink
	return nil
}

// Deliver sends msg to the named connection if it is live. An unknown
// target is dropped silently, mirroring the best-effort semantics of the
// transport: a peer that vanished will clean itself up on disconnect.
func (r *Registry) Deliver(id string, msg *Message) {
	r.mu.RLock()
	sink, ok := r.sinks[id]
	r.mu.RUnlock()

	if !ok {
		slog.Debug("dropping message for unknown connection", "connection", id, "type", msg.Type)
		return
	}
	sink.Send(msg)
}

// Unregister removes the mapping for id. Idempotent.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sinks, id)
}

// Len reports the number of live connections.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sinks)
}
