package sse

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

func newTestBroker() *Broker {
	return NewBroker(log.New(io.Discard))
}

func TestPublishDeliversFramedEvent(t *testing.T) {
	b := newTestBroker()
	gameID := uuid.New()
	ch := b.Subscribe(gameID)

	b.Publish(gameID, EventPhase, map[string]string{"phase": "TURN"})

	frame := string(<-ch)
	want := "event: PHASE\ndata: {\"phase\":\"TURN\"}\n\n"
	if frame != want {
		t.Errorf("unexpected frame %q, want %q", frame, want)
	}
}

func TestPublishIsScopedToGame(t *testing.T) {
	b := newTestBroker()
	subscribed := uuid.New()
	other := uuid.New()
	ch := b.Subscribe(subscribed)

	b.Publish(other, EventTurn, map[string]string{})

	select {
	case frame := <-ch:
		t.Fatalf("expected no delivery, got %q", frame)
	default:
	}
}

func TestSlowSubscriberIsPruned(t *testing.T) {
	b := newTestBroker()
	gameID := uuid.New()
	ch := b.Subscribe(gameID)

	for i := 0; i <= subscriberBuffer; i++ {
		b.Publish(gameID, EventPhase, map[string]string{"phase": "TURN"})
	}

	if n := b.SubscriberCount(gameID); n != 0 {
		t.Errorf("expected slow subscriber pruned, %d remain", n)
	}
	// Drain the buffer; the broker closed the channel when it pruned us.
	for range ch {
	}
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	b := newTestBroker()
	gameID := uuid.New()
	ch := b.Subscribe(gameID)

	b.Unsubscribe(gameID, ch)
	b.Unsubscribe(gameID, ch)

	if _, open := <-ch; open {
		t.Error("expected channel closed after unsubscribe")
	}
	if n := b.SubscriberCount(gameID); n != 0 {
		t.Errorf("expected 0 subscribers, got %d", n)
	}
}

func TestFormatEventSplitsMultilineData(t *testing.T) {
	frame := string(formatEvent("RULES", []byte("line one\nline two")))
	if !strings.HasPrefix(frame, "event: RULES\n") {
		t.Errorf("missing event line in %q", frame)
	}
	if !strings.Contains(frame, "data: line one\ndata: line two\n") {
		t.Errorf("multiline data not prefixed per line in %q", frame)
	}
	if !strings.HasSuffix(frame, "\n\n") {
		t.Errorf("frame not terminated by blank line: %q", frame)
	}
}
