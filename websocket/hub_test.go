package websocket

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testClient(hub *Hub, chatID string) *Client {
	return &Client{hub: hub, send: make(chan []byte, 4), ChatID: chatID, MemberID: "member-" + chatID}
}

func receive(t *testing.T, c *Client) []byte {
	t.Helper()
	select {
	case msg := <-c.send:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
		return nil
	}
}

func TestHub_BroadcastOnlyReachesChatMembers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(zap.NewNop())
	go hub.Run(ctx)

	a := testClient(hub, "a")
	b := testClient(hub, "b")
	hub.Register(a)
	hub.Register(b)

	hub.Broadcast(&Message{ChatID: "a", Data: []byte(`{"type":"new-message"}`)})

	assert.JSONEq(t, `{"type":"new-message"}`, string(receive(t, a)))
	assert.Empty(t, b.send)
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(zap.NewNop())
	go hub.Run(ctx)

	c := testClient(hub, "a")
	hub.Register(c)
	hub.Unregister(c)

	_, ok := <-c.send
	assert.False(t, ok)
	assert.Equal(t, 0, hub.Clients("a"))
}

func TestHub_ListenForwardsRedisEvents(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(zap.NewNop())
	go hub.Run(ctx)
	c := testClient(hub, "42")
	hub.Register(c)

	go hub.Listen(ctx, rdb)

	require.Eventually(t, func() bool {
		return rdb.PubSubNumPat(ctx).Val() > 0
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, rdb.Publish(ctx, "chat-42", `{"chatId":"42"}`).Err())
	assert.JSONEq(t, `{"chatId":"42"}`, string(receive(t, c)))
}
