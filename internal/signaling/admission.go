package signaling

import "log/slog"

// handleJoinRoom validates a viewer's join request and admits it.
// Rejections go back to the requester only; on success the sender gets a
// viewer-joined event followed by the updated viewer count.
func (h *Hub) handleJoinRoom(sess *Session, msg *Message) {
	room, err := h.rooms.Get(msg.RoomID)
	if err != nil {
		slog.Warn("join failed, room not found", "room", msg.RoomID, "connection", sess.ID)
		h.registry.Deliver(sess.ID, &Message{
			Type:   TypeError,
			RoomID: msg.RoomID,
			Reason: "Room not found",
		})
		return
	}

	// A sender joining its own broadcast makes no sense; drop it.
	if sess.ID == room.SenderID {
		slog.Warn("sender tried to join own room", "room", room.ID, "connection", sess.ID)
		return
	}

	if room.Password != "" && msg.Password != room.Password {
		slog.Warn("join rejected, wrong password", "room", room.ID, "connection", sess.ID)
		if h.OnAuthFailure != nil {
			h.OnAuthFailure(room.ID, sess.ID)
		}
		h.registry.Deliver(sess.ID, &Message{
			Type:   TypeAuthFailed,
			RoomID: room.ID,
		})
		return
	}

	count, err := h.rooms.AddViewer(room.ID, sess.ID)
	if err != nil {
		// The sender disconnected between the lookup and the insert.
		h.registry.Deliver(sess.ID, &Message{
			Type:   TypeError,
			RoomID: msg.RoomID,
			Reason: "Room not found",
		})
		return
	}

	slog.Info("viewer joined", "room", room.ID, "viewer", sess.ID, "viewers", count)
	h.registry.Deliver(room.SenderID, &Message{
		Type:     TypeViewerJoined,
		RoomID:   room.ID,
		ViewerID: sess.ID,
	})
	h.sendViewerCount(room.ID, room.SenderID, count)
}
