package core

// Client is one live connection as seen by the core layer.
// Username stays empty until the client registers; it is read and
// written only inside the hub loop.
type Client struct {
	ID       string
	Username string
	Events   chan *Event
}

// NewClient constructs a client with a bounded event queue.
func NewClient(id string, queueSize int) *Client {
	if queueSize <= 0 {
		queueSize = 32
	}
	return &Client{
		ID:     id,
		Events: make(chan *Event, queueSize),
	}
}
