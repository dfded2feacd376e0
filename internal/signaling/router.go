package signaling

import "log/slog"

// route forwards a handshake message (offer, answer or ice-candidate) to
// the one connection named as its target, stamping the originating
// connection id so a fan-out sender can tell its viewers apart. The
// payload passes through untouched; SDP and ICE semantics belong to the
// peers. A target that is gone is dropped without telling the origin.
func (h *Hub) route(sess *Session, msg *Message) {
	if msg.Target == "" {
		slog.Warn("handshake message without target", "type", msg.Type, "connection", sess.ID)
		return
	}

	h.registry.Deliver(msg.Target, &Message{
		Type:    msg.Type,
		Origin:  sess.ID,
		Payload: msg.Payload,
	})
}
