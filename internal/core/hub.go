package core

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/nonnle/chatrelay/internal/metrics"
)

// storeTimeout bounds every call into the message log.
const storeTimeout = 5 * time.Second

// Hub is the connection lifecycle manager. It owns the registry and
// the message log, runs a single dispatch loop, and is the only
// goroutine that mutates presence state. Per-connection read loops
// feed it tagged commands; it feeds events back through each client's
// bounded queue.
type Hub struct {
	registry *Registry
	store    MessageLog
	log      *zerolog.Logger

	queueSize int
	attach    chan *Client
	detach    chan *Client
	commands  chan submission
	done      chan struct{}
}

type submission struct {
	client *Client
	cmd    *Command
}

// NewHub constructs a hub with its own registry.
func NewHub(store MessageLog, logger *zerolog.Logger, queueSize int) *Hub {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	if queueSize <= 0 {
		queueSize = 32
	}
	return &Hub{
		registry:  NewRegistry(),
		store:     store,
		log:       logger,
		queueSize: queueSize,
		attach:    make(chan *Client),
		detach:    make(chan *Client),
		commands:  make(chan submission, 64),
		done:      make(chan struct{}),
	}
}

// NewClient constructs a client sized for this hub's send queues.
func (h *Hub) NewClient(id string) *Client {
	return NewClient(id, h.queueSize)
}

// Registry exposes the presence table for read-side collaborators.
func (h *Hub) Registry() *Registry {
	return h.registry
}

// AttachClient installs a new anonymous connection.
func (h *Hub) AttachClient(c *Client) {
	select {
	case h.attach <- c:
	case <-h.done:
	}
}

// DetachClient runs disconnect cleanup: the binding is removed and the
// roster rebroadcast, whatever path led here. Safe to call for clients
// that never registered, and after the hub has stopped.
func (h *Hub) DetachClient(c *Client) {
	select {
	case h.detach <- c:
	case <-h.done:
	}
}

// Submit hands an inbound command to the dispatch loop.
func (h *Hub) Submit(c *Client, cmd *Command) {
	select {
	case h.commands <- submission{client: c, cmd: cmd}:
	case <-h.done:
	}
}

// Run processes attach/detach and commands until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	clients := make(map[*Client]struct{})

	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.attach:
			clients[c] = struct{}{}
			metrics.ConnectionsActive.Set(float64(len(clients)))
			h.log.Debug().Str("client_id", c.ID).Msg("client attached")
		case c := <-h.detach:
			delete(clients, c)
			metrics.ConnectionsActive.Set(float64(len(clients)))
			if name, removed := h.registry.Unregister(c); removed {
				h.log.Info().Str("client_id", c.ID).Str("username", name).Msg("user offline")
				h.broadcastRoster(clients)
			} else {
				h.log.Debug().Str("client_id", c.ID).Msg("client detached")
			}
		case sub := <-h.commands:
			if _, attached := clients[sub.client]; !attached {
				// Disconnected before the command was dispatched.
				continue
			}
			h.handle(ctx, clients, sub.client, sub.cmd)
		}
	}
}

func (h *Hub) handle(ctx context.Context, clients map[*Client]struct{}, c *Client, cmd *Command) {
	switch cmd.Kind {
	case CommandRegisterUser:
		h.handleRegister(ctx, clients, c, cmd.Username)
	case CommandChatMessage:
		h.handleChatMessage(ctx, c, cmd)
	case CommandDeleteMessage:
		h.handleDeleteMessage(ctx, c, cmd.MessageID)
	case CommandCallInitiate, CommandCallAnswer, CommandICECandidate, CommandCallReject, CommandCallEnd:
		h.relaySignal(c, cmd)
	default:
		h.sendError(c, coreError(ErrCodeInvalidEvent, "unknown command"))
	}
}

func (h *Hub) handleRegister(ctx context.Context, clients map[*Client]struct{}, c *Client, username string) {
	if username == "" {
		h.sendError(c, coreError(ErrCodeBadRequest, "username is required"))
		return
	}

	if c.Username != "" && c.Username != username {
		h.registry.Release(c.Username, c)
	}

	prev, ok := h.registry.Register(username, c)
	if !ok {
		h.sendError(c, coreError(ErrCodeBadRequest, "username is required"))
		return
	}
	if prev != nil {
		// Last writer wins; the displaced connection stays open but is
		// unreachable for signaling until it re-registers.
		h.log.Warn().
			Str("username", username).
			Str("client_id", c.ID).
			Str("displaced_client_id", prev.ID).
			Msg("username rebound to a new connection")
	}
	c.Username = username

	h.log.Info().Str("client_id", c.ID).Str("username", username).Msg("user online")
	h.broadcastRoster(clients)
	h.sendHistory(ctx, c)
}

// sendHistory replays the full message log to one client. Eager and
// unbounded; fine at this scale, a known limit for a bigger one.
func (h *Hub) sendHistory(ctx context.Context, c *Client) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	messages, err := h.store.ListAll(ctx)
	if err != nil {
		h.log.Error().Err(err).Str("client_id", c.ID).Msg("load history")
		h.sendError(c, coreError(ErrCodeStorageError, "failed to load history"))
		return
	}
	h.send(c, &Event{Kind: EventHistory, Messages: messages})
}

func (h *Hub) handleChatMessage(ctx context.Context, c *Client, cmd *Command) {
	if c.Username == "" {
		h.sendError(c, coreError(ErrCodeBadRequest, "register before sending messages"))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	stored, err := h.store.Append(ctx, Message{
		Sender:  c.Username,
		Content: cmd.Content,
		Kind:    cmd.MessageKind,
	})
	if err != nil {
		// Reported to the sender only; nothing is broadcast.
		h.log.Error().Err(err).Str("client_id", c.ID).Msg("append message")
		h.sendError(c, coreError(ErrCodeStorageError, "failed to store message"))
		return
	}

	metrics.MessagesTotal.WithLabelValues(string(stored.Kind)).Inc()
	for _, target := range h.registry.Clients() {
		h.send(target, &Event{Kind: EventChatMessage, Message: &stored})
	}
}

func (h *Hub) handleDeleteMessage(ctx context.Context, c *Client, id string) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	deleted, err := h.store.DeleteByID(ctx, id)
	if err != nil {
		h.log.Error().Err(err).Str("client_id", c.ID).Str("message_id", id).Msg("delete message")
		h.sendError(c, coreError(ErrCodeStorageError, "failed to delete message"))
		return
	}
	if !deleted {
		h.sendError(c, coreError(ErrCodeNotFound, "message not found"))
		return
	}

	metrics.DeletionsTotal.Inc()
	for _, target := range h.registry.Clients() {
		h.send(target, &Event{Kind: EventMessageDeleted, MessageID: id})
	}
}

// broadcastRoster recomputes the online set and pushes it to every
// attached connection, registered or not, in the same dispatch step as
// the registry change. Per-client queues keep rosters in order, so a
// stale roster can never follow a newer one.
func (h *Hub) broadcastRoster(clients map[*Client]struct{}) {
	users := h.registry.Snapshot()
	metrics.UsersOnline.Set(float64(len(users)))
	for c := range clients {
		h.send(c, &Event{Kind: EventOnlineUsers, Users: users})
	}
}

// send enqueues without blocking. A slow consumer loses events rather
// than stalling the hub; delivery to a gone connection is a no-op.
func (h *Hub) send(c *Client, ev *Event) {
	select {
	case c.Events <- ev:
	default:
		metrics.SlowClientDrops.Inc()
		h.log.Warn().Str("client_id", c.ID).Int("kind", int(ev.Kind)).Msg("client queue full, event dropped")
	}
}

func (h *Hub) sendError(c *Client, err *CoreError) {
	h.send(c, &Event{Kind: EventError, Error: err})
}
