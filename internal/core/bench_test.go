package core

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func benchmarkFanOut(b *testing.B, recipients int) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(&memLog{}, nil, 32)
	go hub.Run(ctx)

	sender := hub.NewClient("sender")
	hub.AttachClient(sender)
	hub.Submit(sender, &Command{Kind: CommandRegisterUser, Username: "sender"})

	clients := make([]*Client, 0, recipients)
	for i := 0; i < recipients; i++ {
		c := hub.NewClient(fmt.Sprintf("c%d", i))
		hub.AttachClient(c)
		hub.Submit(c, &Command{Kind: CommandRegisterUser, Username: fmt.Sprintf("user%d", i)})
		clients = append(clients, c)
	}

	// Drain events for all but the first recipient to avoid channel backpressure.
	target := clients[0]
	for _, c := range clients[1:] {
		go func(cl *Client) {
			for range cl.Events {
			}
		}(c)
	}
	go func() {
		for range sender.Events {
		}
	}()

	// Let setup traffic (rosters, history) settle, then start clean.
	time.Sleep(100 * time.Millisecond)
	drainEvents(target.Events)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		hub.Submit(sender, &Command{Kind: CommandChatMessage, Content: "payload", MessageKind: MessageKindText})
		for {
			if ev := <-target.Events; ev.Kind == EventChatMessage {
				break
			}
		}
	}
}

func BenchmarkFanOut_10(b *testing.B)  { benchmarkFanOut(b, 10) }
func BenchmarkFanOut_100(b *testing.B) { benchmarkFanOut(b, 100) }
func BenchmarkFanOut_500(b *testing.B) { benchmarkFanOut(b, 500) }
