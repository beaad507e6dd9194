package stream

import (
	"encoding/json"
	"log/slog"
	"sync"

	"smartlocker/internal/pkg/metrics"
)

// Event kinds pushed to display subscribers.
const (
	KindConnected        = "connected"
	KindAllocationUpdate = "allocation_update"
	KindStatusUpdate     = "status_update"
)

// Event is a discrete push notification. It is encoded once per broadcast
// and never retained: subscribers connecting later see nothing.
type Event struct {
	Kind    string `json:"kind"`
	Payload any    `json:"payload,omitempty"`
}

// Subscriber is one long-lived display connection. Messages arrive on C();
// the channel is closed when the hub drops the subscriber.
type Subscriber struct {
	ch   chan []byte
	once sync.Once
}

func (s *Subscriber) C() <-chan []byte {
	return s.ch
}

func (s *Subscriber) close() {
	s.once.Do(func() { close(s.ch) })
}

// Hub fans allocation events out to every registered subscriber. Delivery is
// non-blocking per subscriber: a full buffer means the subscriber is too slow
// and is dropped, without stalling the broadcaster or its peers.
type Hub struct {
	mu     sync.Mutex
	subs   map[*Subscriber]struct{}
	buffer int
	logger *slog.Logger
}

func NewHub(buffer int, logger *slog.Logger) *Hub {
	if buffer <= 0 {
		buffer = 16
	}
	return &Hub{
		subs:   make(map[*Subscriber]struct{}),
		buffer: buffer,
		logger: logger,
	}
}

// Subscribe registers a new display connection and greets it with a
// "connected" event. The greeting is queued before the subscriber becomes
// visible to broadcasts, so it is always the first message received.
func (h *Hub) Subscribe() *Subscriber {
	sub := &Subscriber{ch: make(chan []byte, h.buffer)}

	if data, err := json.Marshal(Event{Kind: KindConnected}); err == nil {
		sub.ch <- data
	}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	count := len(h.subs)
	h.mu.Unlock()

	metrics.SubscriberGauge.Set(float64(count))
	return sub
}

// Unsubscribe deregisters the subscriber and closes its channel. The close
// happens under the hub mutex, the same lock Broadcast sends under, so a
// delivery can never hit a closed channel.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	_, ok := h.subs[sub]
	if ok {
		delete(h.subs, sub)
		sub.close()
	}
	count := len(h.subs)
	h.mu.Unlock()

	if ok {
		metrics.SubscriberGauge.Set(float64(count))
	}
}

// Broadcast delivers the event to every currently-registered subscriber.
// At-most-once: no replay, no backlog. A subscriber whose buffer is full is
// dropped in place; peers and the broadcaster are unaffected.
func (h *Hub) Broadcast(kind string, payload any) {
	data, err := json.Marshal(Event{Kind: kind, Payload: payload})
	if err != nil {
		h.logger.Error("failed to encode broadcast event", "kind", kind, "error", err.Error())
		return
	}

	h.mu.Lock()
	for sub := range h.subs {
		select {
		case sub.ch <- data:
		default:
			delete(h.subs, sub)
			sub.close()
			h.logger.Warn("dropping slow display subscriber", "kind", kind)
		}
	}
	count := len(h.subs)
	h.mu.Unlock()

	metrics.SubscriberGauge.Set(float64(count))
	metrics.BroadcastEvents.Inc()
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
