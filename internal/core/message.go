package core

import "time"

// MessageKind distinguishes plain text from file payloads.
type MessageKind string

const (
	// MessageKindText is a plain chat message.
	MessageKindText MessageKind = "text"
	// MessageKindFile is a file payload encoded as a string by the client
	// (name, MIME type and data). The relay never inspects it.
	MessageKindFile MessageKind = "file"
)

// Valid reports whether the kind is one the relay accepts.
func (k MessageKind) Valid() bool {
	return k == MessageKindText || k == MessageKindFile
}

// Message is the domain model for a chat message.
type Message struct {
	ID        string
	Sender    string
	Content   string
	Kind      MessageKind
	CreatedAt time.Time
}
