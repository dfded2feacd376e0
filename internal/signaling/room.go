package signaling

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Room is a point-in-time snapshot of one broadcast session: the sender
// that owns it, its optional password and the viewers admitted so far.
// Snapshots are safe to iterate while the live room keeps changing.
type Room struct {
	ID       string
	SenderID string
	Password string
	Viewers  []string
}

// roomState is the live, store-owned representation of a room. It is only
// ever touched while holding the store lock.
type roomState struct {
	id       string
	senderID string
	password string
	viewers  map[string]struct{}
}

func (r *roomState) snapshot() Room {
	viewers := make([]string, 0, len(r.viewers))
	for id := range r.viewers {
		viewers = append(viewers, id)
	}
	return Room{
		ID:       r.id,
		SenderID: r.senderID,
		Password: r.password,
		Viewers:  viewers,
	}
}

// RoomStore owns every active room. Callers never see the live state,
// only snapshots; each method is atomic with respect to concurrent use.
type RoomStore struct {
	mu    sync.RWMutex
	rooms map[string]*roomState
}

// NewRoomStore creates an empty room store.
func NewRoomStore() *RoomStore {
	return &RoomStore{
		rooms: make(map[string]*roomState),
	}
}

// Create inserts a fresh room owned by senderID, with no password and no
// viewers, and returns its id. Ids are random 128-bit UUIDs; on the
// off chance of a collision with a live room the id is regenerated.
func (s *RoomStore) Create(senderID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var id string
	for {
		id = uuid.NewString()
		if _, taken := s.rooms[id]; !taken {
			break
		}
	}

	s.rooms[id] = &roomState{
		id:       id,
		senderID: senderID,
		viewers:  make(map[string]struct{}),
	}
	slog.Info("room created", "room", id, "sender", senderID)
	return id
}

// Get returns a snapshot of the room, or ErrRoomNotFound.
func (s *RoomStore) Get(id string) (Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, ok := s.rooms[id]
	if !ok {
		return Room{}, ErrRoomNotFound
	}
	return room.snapshot(), nil
}

// SetPassword sets the room's join password, but only when the caller is
// the room's sender. Anyone else's request is dropped without a reply;
// only the owner's requests have effect.
func (s *RoomStore) SetPassword(id, callerID, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[id]
	if !ok {
		return
	}
	if room.senderID != callerID {
		slog.Warn("ignoring password change from non-sender", "room", id, "connection", callerID)
		return
	}
	room.password = password
	slog.Info("room password updated", "room", id)
}

// AddViewer admits viewerID into the room and returns the resulting
// viewer count. Adding an already-present viewer is a no-op, so a rejoin
// never double-counts. The sender itself is never added as a viewer.
func (s *RoomStore) AddViewer(id, viewerID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[id]
	if !ok {
		return 0, ErrRoomNotFound
	}
	if viewerID != room.senderID {
		room.viewers[viewerID] = struct{}{}
	}
	return len(room.viewers), nil
}

// RemoveViewer removes viewerID if present and returns the resulting
// viewer count. Idempotent.
func (s *RoomStore) RemoveViewer(id, viewerID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[id]
	if !ok {
		return 0, ErrRoomNotFound
	}
	delete(room.viewers, viewerID)
	return len(room.viewers), nil
}

// Delete removes the room and returns its final snapshot so the caller
// can notify the viewers. Removal and snapshot happen under one lock:
// no viewer can slip in between the two.
func (s *RoomStore) Delete(id string) (Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[id]
	if !ok {
		return Room{}, ErrRoomNotFound
	}
	delete(s.rooms, id)
	slog.Info("room deleted", "room", id)
	return room.snapshot(), nil
}

// FindBySender resolves the room owned by senderID. Sender-side commands
// that carry no explicit room id (sync-control) rely on this; a sender
// owns at most one live room.
func (s *RoomStore) FindBySender(senderID string) (Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, room := range s.rooms {
		if room.senderID == senderID {
			return room.snapshot(), nil
		}
	}
	return Room{}, ErrRoomNotFound
}

// DropViewer removes viewerID from every room it is in and returns the
// post-removal snapshots of the affected rooms, for viewer-count updates.
func (s *RoomStore) DropViewer(viewerID string) []Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	var affected []Room
	for _, room := range s.rooms {
		if _, ok := room.viewers[viewerID]; !ok {
			continue
		}
		delete(room.viewers, viewerID)
		affected = append(affected, room.snapshot())
	}
	return affected
}

// Len reports the number of live rooms.
func (s *RoomStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}
