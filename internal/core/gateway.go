package core

import "context"

// MessageLog is the storage gateway for the persistent message log.
// The hub owns the only calls into it; implementations live outside core.
type MessageLog interface {
	// Append stores a message and returns it with generated id and timestamp.
	Append(ctx context.Context, msg Message) (Message, error)

	// ListAll returns the full history, timestamp ascending.
	ListAll(ctx context.Context) ([]Message, error)

	// DeleteByID removes a message. Returns false when the id is unknown.
	DeleteByID(ctx context.Context, id string) (bool, error)
}
