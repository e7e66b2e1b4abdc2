package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/nonnle/chatrelay/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_chat: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:8080/ws", "WebSocket address")
	user := flag.String("user", "cli-user", "username to register")
	flag.Parse()

	baseCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(baseCtx)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	registerPayload, err := json.Marshal(proto.RegisterUserData{Username: *user})
	if err != nil {
		return fmt.Errorf("marshal register: %w", err)
	}
	if err := wsjson.Write(ctx, conn, proto.Inbound{Type: proto.InboundTypeRegisterUser, Data: registerPayload}); err != nil {
		return fmt.Errorf("send register: %w", err)
	}

	fmt.Printf("Connected to %s as %s\n", *addr, *user)
	fmt.Println("Type messages and press Enter to send. Ctrl+C to exit.")

	go func() {
		defer cancel()
		readLoop(ctx, conn)
	}()

	writeLoop(ctx, conn)

	stop()
	cancel()
	_ = conn.Close(websocket.StatusNormalClosure, "bye")
	return nil
}

func readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		var outbound proto.Outbound
		if err := wsjson.Read(ctx, conn, &outbound); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return
			}
			log.Printf("read error: %v", err)
			return
		}

		if outbound.Type == proto.OutboundTypeError && outbound.Error != nil {
			fmt.Printf("server error: %s (%s)\n", outbound.Error.Msg, outbound.Error.Code)
			continue
		}

		switch outbound.Event {
		case proto.EventNameChatMessage:
			var evt proto.EventChatMessage
			if decode(outbound.Data, &evt) {
				fmt.Printf("%s: %s\n", evt.Sender, evt.Content)
			}
		case proto.EventNameHistory:
			var evt proto.EventHistory
			if decode(outbound.Data, &evt) {
				for _, msg := range evt.Messages {
					fmt.Printf("(history) %s: %s\n", msg.Sender, msg.Content)
				}
			}
		case proto.EventNameOnlineUsers:
			var evt proto.EventOnlineUsers
			if decode(outbound.Data, &evt) {
				fmt.Printf("online: %s\n", strings.Join(evt.Users, ", "))
			}
		case proto.EventNameMessageDeleted:
			var evt proto.EventMessageDeleted
			if decode(outbound.Data, &evt) {
				fmt.Printf("message deleted: %s\n", evt.ID)
			}
		default:
			fmt.Printf("event=%s data=%v\n", outbound.Event, outbound.Data)
		}
	}
}

func decode(data any, target any) bool {
	raw, err := json.Marshal(data)
	if err != nil {
		log.Printf("marshal outbound data: %v", err)
		return false
	}
	if err := json.Unmarshal(raw, target); err != nil {
		log.Printf("unmarshal event: %v", err)
		return false
	}
	return true
}

func writeLoop(ctx context.Context, conn *websocket.Conn) {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			text := strings.TrimSpace(line)
			if text == "" {
				continue
			}

			payload, err := json.Marshal(proto.ChatMessageData{Content: text})
			if err != nil {
				log.Printf("marshal msg: %v", err)
				return
			}
			if err := wsjson.Write(ctx, conn, proto.Inbound{Type: proto.InboundTypeChatMessage, Data: payload}); err != nil {
				log.Printf("send error: %v", err)
				return
			}
		}
	}
}
