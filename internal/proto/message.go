package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeRegisterUser  = "register-user"
	InboundTypeChatMessage   = "chat-message"
	InboundTypeDeleteMessage = "delete-message"
	InboundTypeCallInitiate  = "call-initiate"
	InboundTypeCallAnswer    = "call-answer"
	InboundTypeICECandidate  = "ice-candidate"
	InboundTypeCallReject    = "call-reject"
	InboundTypeCallEnd       = "call-end"

	OutboundTypeEvent = "event"
	OutboundTypeError = "error"

	EventNameHistory        = "history"
	EventNameChatMessage    = "chat-message"
	EventNameMessageDeleted = "message-deleted"
	EventNameOnlineUsers    = "online-users"
	EventNameIncomingCall   = "incoming-call"
	EventNameCallAnswered   = "call-answered"
	EventNameICECandidate   = "ice-candidate"
	EventNameCallRejected   = "call-rejected"
	EventNameCallEnded      = "call-ended"
)

// RegisterUserData binds a username to the connection.
type RegisterUserData struct {
	Username string `json:"username"`
}

// ChatMessageData is a chat message from the client. Kind defaults to
// "text"; for "file" the content carries the encoded file payload.
type ChatMessageData struct {
	Content string `json:"content"`
	Kind    string `json:"kind,omitempty"`
}

// DeleteMessageData requests removal of a stored message.
type DeleteMessageData struct {
	ID string `json:"id"`
}

// CallInitiateData starts a call toward a target username.
type CallInitiateData struct {
	Target  string          `json:"target"`
	Offer   json.RawMessage `json:"offer"`
	Caller  string          `json:"caller,omitempty"`
	IsVideo bool            `json:"isVideo,omitempty"`
}

// CallAnswerData returns an SDP answer to the caller.
type CallAnswerData struct {
	Target string          `json:"target"`
	Answer json.RawMessage `json:"answer"`
}

// ICECandidateData forwards one ICE candidate to the target.
type ICECandidateData struct {
	Target    string          `json:"target"`
	Candidate json.RawMessage `json:"candidate"`
}

// CallTargetData addresses a payload-less signal (reject, end).
type CallTargetData struct {
	Target string `json:"target"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Event string `json:"event,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// EventChatMessage is one broadcast (or replayed) chat message.
type EventChatMessage struct {
	ID      string `json:"id"`
	Sender  string `json:"sender"`
	Content string `json:"content"`
	Kind    string `json:"kind"`
	TS      int64  `json:"ts"`
}

// EventHistory replays the stored log to a newly registered client.
type EventHistory struct {
	Messages []EventChatMessage `json:"messages"`
}

// EventMessageDeleted announces a confirmed deletion.
type EventMessageDeleted struct {
	ID string `json:"id"`
}

// EventOnlineUsers carries the current roster.
type EventOnlineUsers struct {
	Users []string `json:"users"`
}

// EventIncomingCall notifies the callee of a call offer.
type EventIncomingCall struct {
	From    string          `json:"from"`
	Offer   json.RawMessage `json:"offer"`
	Caller  string          `json:"caller,omitempty"`
	IsVideo bool            `json:"isVideo"`
}

// EventCallAnswered delivers the SDP answer to the caller.
type EventCallAnswered struct {
	Answer json.RawMessage `json:"answer"`
}

// EventICECandidate delivers one ICE candidate.
type EventICECandidate struct {
	Candidate json.RawMessage `json:"candidate"`
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
