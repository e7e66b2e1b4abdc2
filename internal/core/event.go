package core

import "encoding/json"

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventHistory delivers the stored message log to a newly registered client.
	EventHistory EventKind = iota
	// EventChatMessage notifies clients about a broadcast chat message.
	EventChatMessage
	// EventMessageDeleted notifies clients that a message left the log.
	EventMessageDeleted
	// EventOnlineUsers delivers the current roster after a registry change.
	EventOnlineUsers
	// EventIncomingCall notifies the callee of a call offer.
	EventIncomingCall
	// EventCallAnswered delivers the answer back to the caller.
	EventCallAnswered
	// EventICECandidate delivers an ICE candidate to the targeted peer.
	EventICECandidate
	// EventCallRejected notifies the caller that the call was declined.
	EventCallRejected
	// EventCallEnded notifies the other party that the call is over.
	EventCallEnded
	// EventError notifies the originating client about a domain error.
	EventError
)

// Event is sent to clients to describe what happened in the system.
type Event struct {
	Kind      EventKind
	Message   *Message    // EventChatMessage
	Messages  []Message   // EventHistory
	MessageID string      // EventMessageDeleted
	Users     []string    // EventOnlineUsers
	Call      *CallSignal // call events
	Error     *CoreError  // EventError
}

// CallSignal carries call-negotiation payloads between two peers.
// Offer, Answer and Candidate are opaque to the relay.
type CallSignal struct {
	From      string
	Caller    string
	IsVideo   bool
	Offer     json.RawMessage
	Answer    json.RawMessage
	Candidate json.RawMessage
}
