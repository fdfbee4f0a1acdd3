package notify

import (
	"log/slog"
	"sync"

	"github.com/mikepoirier/word-game/internal/model"
)

// Event describes a game development the other player should hear about.
// Transports publish events only after the orchestrator call has
// returned, so no subscriber delivery ever happens under the game lock.
type Event struct {
	GameCode model.GameCode `json:"game_code"`
	Username model.Username `json:"username"`
	Outcome  model.Outcome  `json:"outcome"`
	Round    int            `json:"round"`
}

// subscriber buffers a few events; slow consumers drop rather than block
const subscriberBuffer = 16

// Hub fans out game events to per-game subscribers
type Hub struct {
	mu          sync.RWMutex
	subscribers map[model.GameCode]map[chan Event]struct{}
	logger      *slog.Logger
}

// New creates a new Hub
func New(logger *slog.Logger) *Hub {
	return &Hub{
		subscribers: make(map[model.GameCode]map[chan Event]struct{}),
		logger:      logger.With(slog.String("component", "notify")),
	}
}

// Subscribe registers interest in a game's events. The returned cancel
// function must be called when the subscriber disconnects.
func (h *Hub) Subscribe(code model.GameCode) (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	subs, ok := h.subscribers[code]
	if !ok {
		subs = make(map[chan Event]struct{})
		h.subscribers[code] = subs
	}
	subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if subs, ok := h.subscribers[code]; ok {
			if _, ok := subs[ch]; ok {
				delete(subs, ch)
				close(ch)
			}
			if len(subs) == 0 {
				delete(h.subscribers, code)
			}
		}
	}
	return ch, cancel
}

// Publish delivers an event to every subscriber of its game. Delivery
// never blocks; a subscriber with a full buffer misses the event.
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers[event.GameCode] {
		select {
		case ch <- event:
		default:
			h.logger.Warn("event dropped - subscriber buffer full",
				slog.String("game_code", string(event.GameCode)),
			)
		}
	}
}

// SubscriberCount returns the number of subscribers for a game
func (h *Hub) SubscriberCount(code model.GameCode) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[code])
}
