package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HarshPrajapati4926/Video-Streaming-Platform/internal/server"
	"github.com/HarshPrajapati4926/Video-Streaming-Platform/internal/signaling"
)

func newTestServer(t *testing.T) string {
	t.Helper()
	hub := signaling.NewHub()
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", server.ServeWs(hub))

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) signaling.Message {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg signaling.Message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestWebSocketBroadcastSession(t *testing.T) {
	url := newTestServer(t)

	// Sender opens a room.
	sender := dial(t, url)
	require.NoError(t, sender.WriteJSON(signaling.Message{Type: signaling.TypeCreateRoom}))

	created := readMessage(t, sender)
	require.Equal(t, signaling.TypeRoomCreated, created.Type)
	require.NotEmpty(t, created.RoomID)

	// Viewer joins; the sender hears about it and gets the new count.
	viewer := dial(t, url)
	require.NoError(t, viewer.WriteJSON(signaling.Message{Type: signaling.TypeJoinRoom, RoomID: created.RoomID}))

	joined := readMessage(t, sender)
	require.Equal(t, signaling.TypeViewerJoined, joined.Type)
	require.NotEmpty(t, joined.ViewerID)

	count := readMessage(t, sender)
	require.Equal(t, signaling.TypeViewerCount, count.Type)
	require.NotNil(t, count.Count)
	assert.Equal(t, 1, *count.Count)

	// Handshake exchange: offer out, answer back, both tagged with the
	// originating connection id.
	offerPayload := json.RawMessage(`{"type":"offer","sdp":"v=0"}`)
	require.NoError(t, sender.WriteJSON(signaling.Message{
		Type:    signaling.TypeOffer,
		Target:  joined.ViewerID,
		Payload: offerPayload,
	}))

	offer := readMessage(t, viewer)
	require.Equal(t, signaling.TypeOffer, offer.Type)
	require.NotEmpty(t, offer.Origin)
	assert.JSONEq(t, string(offerPayload), string(offer.Payload))

	require.NoError(t, viewer.WriteJSON(signaling.Message{
		Type:    signaling.TypeAnswer,
		Target:  offer.Origin,
		Payload: json.RawMessage(`{"type":"answer","sdp":"v=0"}`),
	}))

	answer := readMessage(t, sender)
	require.Equal(t, signaling.TypeAnswer, answer.Type)
	assert.Equal(t, joined.ViewerID, answer.Origin)

	// Playback sync reaches the viewer.
	require.NoError(t, sender.WriteJSON(signaling.Message{
		Type:    signaling.TypeSyncControl,
		Command: signaling.CommandPlay,
	}))

	sync := readMessage(t, viewer)
	require.Equal(t, signaling.TypeSyncControl, sync.Type)
	assert.Equal(t, signaling.CommandPlay, sync.Command)

	// Sender walks away; the viewer is told the broadcast is over.
	require.NoError(t, sender.Close())

	gone := readMessage(t, viewer)
	require.Equal(t, signaling.TypeSenderDisconnected, gone.Type)
	assert.Equal(t, created.RoomID, gone.RoomID)
}

func TestWebSocketPasswordGate(t *testing.T) {
	url := newTestServer(t)

	sender := dial(t, url)
	require.NoError(t, sender.WriteJSON(signaling.Message{Type: signaling.TypeCreateRoom}))
	created := readMessage(t, sender)
	require.Equal(t, signaling.TypeRoomCreated, created.Type)

	require.NoError(t, sender.WriteJSON(signaling.Message{
		Type:     signaling.TypeSetPassword,
		RoomID:   created.RoomID,
		Password: "abc",
	}))

	viewer := dial(t, url)
	require.NoError(t, viewer.WriteJSON(signaling.Message{
		Type:     signaling.TypeJoinRoom,
		RoomID:   created.RoomID,
		Password: "xyz",
	}))

	rejected := readMessage(t, viewer)
	require.Equal(t, signaling.TypeAuthFailed, rejected.Type)

	require.NoError(t, viewer.WriteJSON(signaling.Message{
		Type:     signaling.TypeJoinRoom,
		RoomID:   created.RoomID,
		Password: "abc",
	}))

	joined := readMessage(t, sender)
	require.Equal(t, signaling.TypeViewerJoined, joined.Type)

	count := readMessage(t, sender)
	require.Equal(t, signaling.TypeViewerCount, count.Type)
	require.NotNil(t, count.Count)
	assert.Equal(t, 1, *count.Count)
}

func TestWebSocketJoinUnknownRoom(t *testing.T) {
	url := newTestServer(t)

	viewer := dial(t, url)
	require.NoError(t, viewer.WriteJSON(signaling.Message{
		Type:   signaling.TypeJoinRoom,
		RoomID: "not-a-room",
	}))

	msg := readMessage(t, viewer)
	require.Equal(t, signaling.TypeError, msg.Type)
	assert.Equal(t, "Room not found", msg.Reason)
}
