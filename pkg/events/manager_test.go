package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeLocal_ReceivesBroadcast(t *testing.T) {
	m := NewConnectionManager(nil, time.Second)

	sub, err := m.SubscribeLocal(context.Background(), RunChannel("run-1"))
	require.NoError(t, err)
	defer sub.Close()

	m.Broadcast(RunChannel("run-1"), []byte(`{"type":"response.new"}`))

	select {
	case payload := <-sub.C:
		assert.JSONEq(t, `{"type":"response.new"}`, string(payload))
	case <-time.After(time.Second):
		t.Fatal("expected a broadcast delivery")
	}
}

func TestSubscribeLocal_ChannelIsolation(t *testing.T) {
	m := NewConnectionManager(nil, time.Second)

	sub, err := m.SubscribeLocal(context.Background(), RunChannel("run-1"))
	require.NoError(t, err)
	defer sub.Close()

	m.Broadcast(RunChannel("run-2"), []byte(`{}`))

	select {
	case <-sub.C:
		t.Fatal("received broadcast for a different channel")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSubscribeLocal_CloseIsIdempotent(t *testing.T) {
	m := NewConnectionManager(nil, time.Second)

	sub, err := m.SubscribeLocal(context.Background(), RunControlChannel("run-1"))
	require.NoError(t, err)

	assert.Equal(t, 1, m.subscriberCount(RunControlChannel("run-1")))
	sub.Close()
	sub.Close()
	assert.Equal(t, 0, m.subscriberCount(RunControlChannel("run-1")))

	// The delivery channel is closed on unsubscribe.
	_, open := <-sub.C
	assert.False(t, open)
}

func TestBroadcast_FullLocalBufferDoesNotBlock(t *testing.T) {
	m := NewConnectionManager(nil, time.Second)

	sub, err := m.SubscribeLocal(context.Background(), RunChannel("run-1"))
	require.NoError(t, err)
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < localSubBuffer*2; i++ {
			m.Broadcast(RunChannel("run-1"), []byte(`{}`))
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Broadcast blocked on a full local subscriber")
	}
}
