package signaling

import "log/slog"

// Hub is the central brain of the signaling server. It wires the
// connection registry and the room store together and hosts the message
// handlers. Handlers are called concurrently from per-connection read
// loops; all shared state lives behind the registry and the store.
type Hub struct {
	registry *Registry
	rooms    *RoomStore

	// OnAuthFailure, when set, is invoked for every rejected join
	// attempt. Failed attempts are never relayed to the sender; this
	// hook is the seam for observability.
	OnAuthFailure func(roomID, viewerID string)
}

// Session is the per-connection context passed to every handler. It
// carries the connection's identity instead of having handlers close
// over ambient connection state.
type Session struct {
	ID string
}

// NewHub creates a new Hub instance with empty registry and room store.
func NewHub() *Hub {
	return &Hub{
		registry: NewRegistry(),
		rooms:    NewRoomStore(),
	}
}

// Connect registers a new peer connection and returns its session.
func (h *Hub) Connect(id string, sink Sink) (*Session, error) {
	if err := h.registry.Register(id, sink); err != nil {
		return nil, err
	}
	slog.Info("client connected", "connection", id)
	return &Session{ID: id}, nil
}

// Handle dispatches one inbound message from the given session.
func (h *Hub) Handle(sess *Session, msg *Message) {
	switch msg.Type {
	case TypeCreateRoom:
		h.handleCreateRoom(sess)

	case TypeJoinRoom:
		h.handleJoinRoom(sess, msg)

	case TypeSetPassword:
		// Sender-only; the store drops anyone else's request.
		h.rooms.SetPassword(msg.RoomID, sess.ID, msg.Password)

	case TypeOffer, TypeAnswer, TypeICECandidate:
		h.route(sess, msg)

	case TypeSyncControl:
		h.broadcastSync(sess, msg.Command)

	default:
		slog.Warn("unknown message type", "type", msg.Type, "connection", sess.ID)
	}
}

// handleCreateRoom creates a room owned by the session. A connection is
// the sender of at most one live room: creating again tears the previous
// room down first, exactly as a sender disconnect would.
func (h *Hub) handleCreateRoom(sess *Session) {
	if prev, err := h.rooms.FindBySender(sess.ID); err == nil {
		slog.Info("sender replacing its room", "connection", sess.ID, "room", prev.ID)
		h.teardownRoom(prev.ID)
	}

	roomID := h.rooms.Create(sess.ID)
	h.registry.Deliver(sess.ID, &Message{
		Type:   TypeRoomCreated,
		RoomID: roomID,
	})
}
