package signaling_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HarshPrajapati4926/Video-Streaming-Platform/internal/signaling"
)

// sinkRecorder captures everything delivered to one connection.
type sinkRecorder struct {
	mu   sync.Mutex
	msgs []*signaling.Message
}

func (s *sinkRecorder) Send(msg *signaling.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, msg)
}

func (s *sinkRecorder) all() []*signaling.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*signaling.Message(nil), s.msgs...)
}

func (s *sinkRecorder) byType(msgType string) []*signaling.Message {
	var out []*signaling.Message
	for _, msg := range s.all() {
		if msg.Type == msgType {
			out = append(out, msg)
		}
	}
	return out
}

func TestRegistryRegisterAndDeliver(t *testing.T) {
	reg := signaling.NewRegistry()
	sink := &sinkRecorder{}

	require.NoError(t, reg.Register("conn-1", sink))
	assert.Equal(t, 1, reg.Len())

	reg.Deliver("conn-1", &signaling.Message{Type: signaling.TypeRoomCreated})

	msgs := sink.all()
	require.Len(t, msgs, 1)
	assert.Equal(t, signaling.TypeRoomCreated, msgs[0].Type)
}

func TestRegistryDuplicateID(t *testing.T) {
	reg := signaling.NewRegistry()

	require.NoError(t, reg.Register("conn-1", &sinkRecorder{}))
	err := reg.Register("conn-1", &sinkRecorder{})
	assert.ErrorIs(t, err, signaling.ErrDuplicateID)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistryDeliverUnknownTargetIsSilent(t *testing.T) {
	reg := signaling.NewRegistry()

	// Best-effort semantics: no error, no panic.
	reg.Deliver("nobody", &signaling.Message{Type: signaling.TypeOffer})
}

func TestRegistryUnregisterIdempotent(t *testing.T) {
	reg := signaling.NewRegistry()
	sink := &sinkRecorder{}

	require.NoError(t, reg.Register("conn-1", sink))
	reg.Unregister("conn-1")
	reg.Unregister("conn-1")
	assert.Equal(t, 0, reg.Len())

	// Delivery after unregister is dropped.
	reg.Deliver("conn-1", &signaling.Message{Type: signaling.TypeViewerCount})
	assert.Empty(t, sink.all())
}
