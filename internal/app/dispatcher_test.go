package app

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"card_notification_service/internal/domain/notification"
	"card_notification_service/internal/domain/push"

	"github.com/sirupsen/logrus"
)

type gatewayStub struct {
	mu      sync.Mutex
	calls   []push.Message
	results []push.SendResult
	err     error
}

func (g *gatewayStub) SendMulticast(ctx context.Context, msg push.Message) ([]push.SendResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, msg)
	if g.err != nil {
		return nil, g.err
	}
	if g.results != nil {
		return g.results, nil
	}
	results := make([]push.SendResult, len(msg.Tokens))
	for i := range results {
		results[i] = push.SendResult{Success: true}
	}
	return results, nil
}

func (g *gatewayStub) sentMessages() []push.Message {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]push.Message(nil), g.calls...)
}

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestDispatcher_ClassifiesOutcomes(t *testing.T) {
	gw := &gatewayStub{results: []push.SendResult{
		{Success: true},
		{Success: false, ErrorCode: "registration-token-not-registered"},
		{Success: false, ErrorCode: "unavailable"},
	}}
	rec := NewRunRecorder()
	d := NewDispatcher(gw, rec, discardLogger())

	sentAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	tokens := []string{"tok-1", "tok-2", "tok-3"}
	err := d.Send(context.Background(), 1, 42, notification.KindDue, ComposedMessage{Title: "t", Body: "b", Route: "/payments/42"}, tokens, sentAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	history, invalid := rec.Drain()
	if len(history) != 1 {
		t.Fatalf("got %d history entries, want 1", len(history))
	}
	if history[0].UserID != 1 || history[0].SubjectID != 42 || history[0].Kind != notification.KindDue || !history[0].SentAt.Equal(sentAt) {
		t.Errorf("unexpected history entry: %+v", history[0])
	}
	if len(invalid) != 1 || invalid[0] != "tok-2" {
		t.Errorf("got invalid tokens %v, want [tok-2]", invalid)
	}
}

func TestDispatcher_SetsCollapseKey(t *testing.T) {
	gw := &gatewayStub{}
	d := NewDispatcher(gw, NewRunRecorder(), discardLogger())

	err := d.Send(context.Background(), 1, 42, notification.KindOverdue, ComposedMessage{Title: "t", Body: "b"}, []string{"tok"}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := gw.sentMessages()
	if len(calls) != 1 {
		t.Fatalf("got %d gateway calls, want 1", len(calls))
	}
	if calls[0].CollapseKey != "overdue_42" {
		t.Errorf("got collapse key %q, want overdue_42", calls[0].CollapseKey)
	}
}

func TestDispatcher_GatewayErrorRecordsNothing(t *testing.T) {
	gw := &gatewayStub{err: errors.New("gateway down")}
	rec := NewRunRecorder()
	d := NewDispatcher(gw, rec, discardLogger())

	err := d.Send(context.Background(), 1, 42, notification.KindDue, ComposedMessage{}, []string{"tok"}, time.Now())
	if err == nil {
		t.Fatal("expected error when gateway call fails")
	}

	history, invalid := rec.Drain()
	if len(history) != 0 || len(invalid) != 0 {
		t.Error("nothing should be recorded on a whole-call gateway failure")
	}
}

func TestDispatcher_ResultCountMismatch(t *testing.T) {
	gw := &gatewayStub{results: []push.SendResult{{Success: true}}}
	d := NewDispatcher(gw, NewRunRecorder(), discardLogger())

	err := d.Send(context.Background(), 1, 42, notification.KindDue, ComposedMessage{}, []string{"tok-1", "tok-2"}, time.Now())
	if err == nil {
		t.Fatal("expected error when result count does not match token count")
	}
}
