package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandRegisterUser binds a username to the connection.
	CommandRegisterUser CommandKind = iota
	// CommandChatMessage appends a message to the log and fans it out.
	CommandChatMessage
	// CommandDeleteMessage removes a message from the log and fans out the deletion.
	CommandDeleteMessage
	// CommandCallInitiate forwards a call offer to the target user.
	CommandCallInitiate
	// CommandCallAnswer forwards an answer back to the caller.
	CommandCallAnswer
	// CommandICECandidate forwards an ICE candidate to the target user.
	CommandICECandidate
	// CommandCallReject forwards a rejection notice to the caller.
	CommandCallReject
	// CommandCallEnd forwards an end-of-call notice to the other party.
	CommandCallEnd
)

// Command represents an action requested by a client.
type Command struct {
	Kind        CommandKind
	Username    string      // register-user
	Content     string      // chat-message
	MessageKind MessageKind // chat-message
	MessageID   string      // delete-message
	Signal      *Signal     // call commands
}
