//go:build unit

package api_test

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"smartlocker/internal/handler/api"
	"smartlocker/internal/handler/middleware"
	"smartlocker/internal/infra/stream"
	"smartlocker/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStreamServer(t *testing.T) (*httptest.Server, *stream.Hub) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := middleware.NewLogger(config.NewTestConfig().Log).GetSlogLogger()
	hub := stream.NewHub(4, logger)
	handler := api.NewStreamHandler(hub)

	router := gin.New()
	router.GET("/stream", handler.SSE)
	router.GET("/stream/ws", handler.WebSocket)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, hub
}

func waitForSubscriber(t *testing.T, hub *stream.Hub, want int) {
	t.Helper()
	for i := 0; i < 100; i++ {
		if hub.Count() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("subscriber count never reached %d", want)
}

func TestSSEStreamsEvents(t *testing.T) {
	srv, hub := newStreamServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/stream", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)

	readEvent := func() stream.Event {
		for {
			line, readErr := reader.ReadString('\n')
			require.NoError(t, readErr)
			line = strings.TrimSpace(line)
			if data, ok := strings.CutPrefix(line, "data: "); ok {
				var ev stream.Event
				require.NoError(t, json.Unmarshal([]byte(data), &ev))
				return ev
			}
		}
	}

	greeting := readEvent()
	assert.Equal(t, stream.KindConnected, greeting.Kind)

	waitForSubscriber(t, hub, 1)
	hub.Broadcast(stream.KindStatusUpdate, map[string]any{"locker_id": "LOCKER_001", "status": "OCCUPIED"})

	ev := readEvent()
	assert.Equal(t, stream.KindStatusUpdate, ev.Kind)
}

func TestSSEUnsubscribesOnDisconnect(t *testing.T) {
	srv, hub := newStreamServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/stream", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	waitForSubscriber(t, hub, 1)

	cancel()
	resp.Body.Close()

	waitForSubscriber(t, hub, 0)
}

func TestWebSocketStreamsEvents(t *testing.T) {
	srv, hub := newStreamServer(t)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/stream/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var greeting stream.Event
	require.NoError(t, json.Unmarshal(data, &greeting))
	assert.Equal(t, stream.KindConnected, greeting.Kind)

	waitForSubscriber(t, hub, 1)
	hub.Broadcast(stream.KindAllocationUpdate, map[string]any{"locker_id": "LOCKER_002"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, data, err = conn.ReadMessage()
	require.NoError(t, err)

	var ev stream.Event
	require.NoError(t, json.Unmarshal(data, &ev))
	assert.Equal(t, stream.KindAllocationUpdate, ev.Kind)
}
