package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/zerolog"

	"github.com/nonnle/chatrelay/internal/auth"
	"github.com/nonnle/chatrelay/internal/config"
	"github.com/nonnle/chatrelay/internal/core"
	"github.com/nonnle/chatrelay/internal/proto"
	"github.com/nonnle/chatrelay/internal/store/sqlite"
)

func testLogger() *zerolog.Logger {
	nop := zerolog.Nop()
	return &nop
}

// outboundFrame mirrors proto.Outbound with raw data for test decoding.
type outboundFrame struct {
	Type  string          `json:"type"`
	Event string          `json:"event,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
	Error *proto.Error    `json:"error,omitempty"`
}

func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	cfg := config.Default()
	cfg.Addr = ":0"
	cfg.ReadHeaderTimeout = time.Second

	jwtConfig := &auth.JWTConfig{
		Secret:   []byte("test-secret"),
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
		TTL:      time.Hour,
	}
	authService := auth.NewService(st, jwtConfig)

	hub := core.NewHub(st, nil, cfg.SendQueueSize)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	server := NewServer(hub, authService, st, cfg, testLogger())

	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)
	return ts
}

func dialWS(t *testing.T, ctx context.Context, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	wsURL := strings.Replace(ts.URL, "http", "ws", 1) + "/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", wsURL, err)
	}
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "done") })
	return conn
}

func sendInbound(t *testing.T, ctx context.Context, conn *websocket.Conn, msgType string, data any) {
	t.Helper()

	payload, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal %s payload: %v", msgType, err)
	}
	if err := wsjson.Write(ctx, conn, proto.Inbound{Type: msgType, Data: payload}); err != nil {
		t.Fatalf("write %s: %v", msgType, err)
	}
}

// readUntilEvent discards frames until the named event arrives.
func readUntilEvent(t *testing.T, ctx context.Context, conn *websocket.Conn, event string) json.RawMessage {
	t.Helper()

	for {
		var frame outboundFrame
		if err := wsjson.Read(ctx, conn, &frame); err != nil {
			t.Fatalf("read while waiting for %s: %v", event, err)
		}
		if frame.Type == proto.OutboundTypeEvent && frame.Event == event {
			return frame.Data
		}
	}
}

// readUntilError discards frames until an error frame arrives.
func readUntilError(t *testing.T, ctx context.Context, conn *websocket.Conn) *proto.Error {
	t.Helper()

	for {
		var frame outboundFrame
		if err := wsjson.Read(ctx, conn, &frame); err != nil {
			t.Fatalf("read while waiting for error: %v", err)
		}
		if frame.Type == proto.OutboundTypeError && frame.Error != nil {
			return frame.Error
		}
	}
}

func registerUser(t *testing.T, ctx context.Context, conn *websocket.Conn, username string) {
	t.Helper()

	sendInbound(t, ctx, conn, proto.InboundTypeRegisterUser, proto.RegisterUserData{Username: username})
	readUntilEvent(t, ctx, conn, proto.EventNameHistory)
}
