package core

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}

// mustQuiet asserts that no event arrives on the channel within the window.
func mustQuiet(t *testing.T, ch <-chan *Event, window time.Duration) {
	t.Helper()

	select {
	case ev := <-ch:
		t.Fatalf("expected no event, got kind %v", ev.Kind)
	case <-time.After(window):
	}
}

func drainEvents(ch <-chan *Event) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}

var errLogDown = errors.New("log unreachable")

// memLog is an in-memory MessageLog for hub tests.
type memLog struct {
	mu         sync.Mutex
	messages   []Message
	seq        int
	failAppend bool
	failList   bool
	failDelete bool
}

func (m *memLog) Append(_ context.Context, msg Message) (Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failAppend {
		return Message{}, errLogDown
	}
	m.seq++
	msg.ID = fmt.Sprintf("m%d", m.seq)
	msg.CreatedAt = time.Now()
	if msg.Kind == "" {
		msg.Kind = MessageKindText
	}
	m.messages = append(m.messages, msg)
	return msg, nil
}

func (m *memLog) ListAll(_ context.Context) ([]Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failList {
		return nil, errLogDown
	}
	out := make([]Message, len(m.messages))
	copy(out, m.messages)
	return out, nil
}

func (m *memLog) DeleteByID(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failDelete {
		return false, errLogDown
	}
	for i, msg := range m.messages {
		if msg.ID == id {
			m.messages = append(m.messages[:i], m.messages[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func startTestHub(t *testing.T, log *memLog) *Hub {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	hub := NewHub(log, nil, 32)
	go hub.Run(ctx)
	return hub
}

// register attaches and binds in one step, consuming nothing.
func register(hub *Hub, id, username string) *Client {
	c := hub.NewClient(id)
	hub.AttachClient(c)
	hub.Submit(c, &Command{Kind: CommandRegisterUser, Username: username})
	return c
}
