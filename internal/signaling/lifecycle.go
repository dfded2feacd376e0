package signaling

import "log/slog"

// Disconnect reconciles all room state for a closed connection. A sender
// takes its room down with it and every admitted viewer hears about it;
// a viewer is removed from its room(s) and the senders get fresh counts.
// The connection is always unregistered last.
func (h *Hub) Disconnect(sess *Session) {
	if room, err := h.rooms.FindBySender(sess.ID); err == nil {
		h.teardownRoom(room.ID)
	}

	for _, room := range h.rooms.DropViewer(sess.ID) {
		h.sendViewerCount(room.ID, room.SenderID, len(room.Viewers))
	}

	h.registry.Unregister(sess.ID)
	slog.Info("client disconnected", "connection", sess.ID)
}

// teardownRoom deletes the room and notifies every viewer that was in it
// at the moment of deletion. Delete returns the final snapshot under the
// store lock, so no late joiner can miss the notification.
func (h *Hub) teardownRoom(roomID string) {
	room, err := h.rooms.Delete(roomID)
	if err != nil {
		return
	}

	for _, viewerID := range room.Viewers {
		h.registry.Deliver(viewerID, &Message{
			Type:   TypeSenderDisconnected,
			RoomID: room.ID,
		})
	}
	slog.Info("room torn down", "room", room.ID, "notified", len(room.Viewers))
}
