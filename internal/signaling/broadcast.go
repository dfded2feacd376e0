package signaling

import "log/slog"

// broadcastSync fans a playback command out to every viewer of the
// sender's room. The viewer set is a snapshot taken at broadcast time;
// viewers joining afterwards do not retroactively receive the command.
func (h *Hub) broadcastSync(sess *Session, command string) {
	switch command {
	case CommandPlay, CommandPause, CommandStop:
	default:
		slog.Warn("unknown sync command", "command", command, "connection", sess.ID)
		return
	}

	room, err := h.rooms.FindBySender(sess.ID)
	if err != nil {
		slog.Warn("sync-control from connection without a room", "connection", sess.ID)
		return
	}

	out := &Message{
		Type:    TypeSyncControl,
		RoomID:  room.ID,
		Command: command,
	}
	for _, viewerID := range room.Viewers {
		h.registry.Deliver(viewerID, out)
	}
	slog.Debug("sync command broadcast", "room", room.ID, "command", command, "viewers", len(room.Viewers))
}

// sendViewerCount delivers the current viewer count to the room's
// sender. The count is informational and may be stale on arrival.
func (h *Hub) sendViewerCount(roomID, senderID string, count int) {
	h.registry.Deliver(senderID, &Message{
		Type:   TypeViewerCount,
		RoomID: roomID,
		Count:  &count,
	})
}
