package sse

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Event names pushed to subscribers of a game.
const (
	EventPhase = "PHASE"
	EventTurn  = "TURN"
	EventRules = "RULES"
)

const subscriberBuffer = 16

// Broker fans out game events to SSE subscribers. Delivery is best-effort: a
// subscriber whose buffer is full is closed and removed rather than blocking
// the publisher.
type Broker struct {
	mu     sync.Mutex
	subs   map[uuid.UUID]map[chan []byte]struct{}
	logger *log.Logger
}

func NewBroker(logger *log.Logger) *Broker {
	return &Broker{
		subs:   make(map[uuid.UUID]map[chan []byte]struct{}),
		logger: logger,
	}
}

// Subscribe registers a new subscriber for a game. The returned channel is
// closed by the broker when the subscriber is pruned.
func (b *Broker) Subscribe(gameID uuid.UUID) chan []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch := make(chan []byte, subscriberBuffer)
	set, ok := b.subs[gameID]
	if !ok {
		set = make(map[chan []byte]struct{})
		b.subs[gameID] = set
	}
	set[ch] = struct{}{}
	return ch
}

// Unsubscribe removes a subscriber. Safe to call after the broker has already
// pruned the channel.
func (b *Broker) Unsubscribe(gameID uuid.UUID, ch chan []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	set, ok := b.subs[gameID]
	if !ok {
		return
	}
	if _, ok := set[ch]; !ok {
		return
	}
	delete(set, ch)
	close(ch)
	if len(set) == 0 {
		delete(b.subs, gameID)
	}
}

// Publish sends a named event with a JSON payload to every subscriber of the
// game. Subscribers that cannot accept the event are dropped.
func (b *Broker) Publish(gameID uuid.UUID, event string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		b.logger.Error("encode sse payload", "event", event, "err", err)
		return
	}
	frame := formatEvent(event, data)

	b.mu.Lock()
	defer b.mu.Unlock()
	set, ok := b.subs[gameID]
	if !ok {
		return
	}
	for ch := range set {
		select {
		case ch <- frame:
		default:
			delete(set, ch)
			close(ch)
			b.logger.Warn("dropped slow sse subscriber", "game", gameID, "event", event)
		}
	}
	if len(set) == 0 {
		delete(b.subs, gameID)
	}
}

// SubscriberCount reports the live subscribers for a game.
func (b *Broker) SubscriberCount(gameID uuid.UUID) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[gameID])
}

// formatEvent renders a wire-format SSE frame. Each line of the data is
// prefixed separately, per the SSE framing rules.
func formatEvent(name string, data []byte) []byte {
	var sb strings.Builder
	sb.WriteString("event: ")
	sb.WriteString(name)
	sb.WriteString("\n")
	for _, line := range strings.Split(string(data), "\n") {
		sb.WriteString("data: ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	return []byte(sb.String())
}
