package events

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialTestConn(t *testing.T, hub *Hub, userID int64) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.Register(userID, conn)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	// wait for the server side to register
	require.Eventually(t, func() bool { return hub.IsOnline(userID) }, time.Second, 5*time.Millisecond)
	return client
}

func TestPublishReachesAllSubscribers(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	c1 := dialTestConn(t, hub, 1)
	c2 := dialTestConn(t, hub, 2)

	hub.Publish("subscriptionUpdated", map[string]any{"vendorId": 42})

	for _, client := range []*websocket.Conn{c1, c2} {
		require.NoError(t, client.SetReadDeadline(time.Now().Add(time.Second)))
		var ev Event
		require.NoError(t, client.ReadJSON(&ev))
		assert.Equal(t, "subscriptionUpdated", ev.Type)
		assert.False(t, ev.At.IsZero())
	}
}

func TestSendToUserTargetsOneConnection(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	c1 := dialTestConn(t, hub, 1)
	dialTestConn(t, hub, 2)

	assert.True(t, hub.SendToUser(1, "orderUpdated", map[string]any{"orderId": 7}))
	assert.False(t, hub.SendToUser(99, "orderUpdated", nil))

	require.NoError(t, c1.SetReadDeadline(time.Now().Add(time.Second)))
	var ev Event
	require.NoError(t, c1.ReadJSON(&ev))
	assert.Equal(t, "orderUpdated", ev.Type)
}

func TestRegisterReplacesOldConnection(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	dialTestConn(t, hub, 1)
	dialTestConn(t, hub, 1)

	assert.Equal(t, 1, hub.OnlineCount())
}

func TestUnregister(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	dialTestConn(t, hub, 1)
	hub.Unregister(1)

	assert.False(t, hub.IsOnline(1))
	assert.Equal(t, 0, hub.OnlineCount())
}

func TestConcurrentPublishersShareOneConnection(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	c1 := dialTestConn(t, hub, 1)

	const publishers, perPublisher = 8, 25
	var wg sync.WaitGroup
	for p := 0; p < publishers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perPublisher; i++ {
				hub.Publish("orderUpdated", map[string]any{"n": i})
			}
		}()
	}
	wg.Wait()

	require.NoError(t, c1.SetReadDeadline(time.Now().Add(2*time.Second)))
	for i := 0; i < publishers*perPublisher; i++ {
		var ev Event
		require.NoError(t, c1.ReadJSON(&ev))
		assert.Equal(t, "orderUpdated", ev.Type)
	}
	assert.True(t, hub.IsOnline(1))
}
