package realtime

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/campuseats/campuseats/internal/logger"
)

// subscriberBuffer is per-subscriber channel capacity, events beyond it are dropped
const subscriberBuffer = 16

// Hub is in-process publisher for single-instance deployments. Subscribers
// receive events of their room on a buffered channel, a full channel drops
// the event rather than blocking the publisher.
type Hub struct {
	mu   sync.RWMutex
	subs map[Room]map[chan Event]struct{}
}

// NewHub creates new Hub instance
func NewHub() *Hub {
	return &Hub{subs: map[Room]map[chan Event]struct{}{}}
}

// Subscribe registers a subscriber to room events. The returned cancel
// function removes the subscription and closes the channel.
func (h *Hub) Subscribe(room Room) (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	if h.subs[room] == nil {
		h.subs[room] = map[chan Event]struct{}{}
	}
	h.subs[room][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subs[room][ch]; ok {
			delete(h.subs[room], ch)
			close(ch)
		}
		h.mu.Unlock()
	}

	return ch, cancel
}

// Publish delivers event to every room subscriber, dropping on full buffers
func (h *Hub) Publish(_ context.Context, room Room, event Event) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[room] {
		select {
		case ch <- event:
		default:
			logger.Log.Warn("realtime subscriber is slow, dropping event",
				zap.String("room", string(room)), zap.String("event", event.Name))
		}
	}

	return nil
}
