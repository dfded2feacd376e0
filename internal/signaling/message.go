package signaling

import "encoding/json"

// Message type values exchanged over the websocket, C2S and S2C.
const (
	TypeCreateRoom         = "create-room"
	TypeRoomCreated        = "room-created"
	TypeJoinRoom           = "join-room"
	TypeViewerJoined       = "viewer-joined"
	TypeViewerCount        = "viewer-count"
	TypeAuthFailed         = "auth-failed"
	TypeSetPassword        = "set-password"
	TypeOffer              = "offer"
	TypeAnswer             = "answer"
	TypeICECandidate       = "ice-candidate"
	TypeSyncControl        = "sync-control"
	TypeSenderDisconnected = "sender-disconnected"
	TypeError              = "error"
)

// Playback commands a sender may fan out via sync-control.
const (
	CommandPlay  = "play"
	CommandPause = "pause"
	CommandStop  = "stop"
)

// Message defines the structure for all C2S (Client to Server)
// and S2C (Server to Client) websocket messages.
//
// Payload carries the opaque SDP/ICE blobs of offer, answer and
// ice-candidate messages; the relay forwards it without inspection.
type Message struct {
	Type     string `json:"type"`
	RoomID   string `json:"roomId,omitempty"`
	Password string `json:"password,omitempty"`

	// Target names the connection an offer/answer/ice-candidate is
	// addressed to. Origin is stamped by the relay on the way out so
	// the recipient knows whom to reply to.
	Target string `json:"target,omitempty"`
	Origin string `json:"origin,omitempty"`

	ViewerID string `json:"viewerId,omitempty"`
	Count    *int   `json:"count,omitempty"`
	Command  string `json:"command,omitempty"`
	Reason   string `json:"reason,omitempty"`

	Payload json.RawMessage `json:"payload,omitempty"`
}
