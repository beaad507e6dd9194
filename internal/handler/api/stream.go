package api

import (
	"fmt"
	"net/http"

	"smartlocker/internal/infra/stream"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// StreamHandler exposes the event hub to display clients over SSE and WebSocket.
type StreamHandler struct {
	hub *stream.Hub
}

func NewStreamHandler(hub *stream.Hub) *StreamHandler {
	return &StreamHandler{hub: hub}
}

// @Summary Subscribe to locker events (SSE)
// @Description Streams allocation and status events as Server-Sent Events. No replay: only events after connect are delivered.
// @Tags stream
// @Produce text/event-stream
// @Router /stream [get]
func (h *StreamHandler) SSE(c *gin.Context) {
	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Streaming unsupported",
		})
		return
	}

	sub := h.hub.Subscribe()
	defer h.hub.Unsubscribe(sub)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	flusher.Flush()

	ctx := c.Request.Context()
	for {
		select {
		case msg, open := <-sub.C():
			if !open {
				return
			}
			if _, err := fmt.Fprintf(c.Writer, "data: %s\n\n", msg); err != nil {
				return
			}
			flusher.Flush()
		case <-ctx.Done():
			return
		}
	}
}

// @Summary Subscribe to locker events (WebSocket)
// @Description Streams allocation and status events as text frames. No replay: only events after connect are delivered.
// @Tags stream
// @Router /stream/ws [get]
func (h *StreamHandler) WebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	sub := h.hub.Subscribe()
	defer h.hub.Unsubscribe(sub)

	// Drain client frames so close handshakes are noticed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, readErr := conn.ReadMessage(); readErr != nil {
				return
			}
		}
	}()

	ctx := c.Request.Context()
	for {
		select {
		case msg, open := <-sub.C():
			if !open {
				return
			}
			if writeErr := conn.WriteMessage(websocket.TextMessage, msg); writeErr != nil {
				return
			}
		case <-done:
			return
		case <-ctx.Done():
			return
		}
	}
}
