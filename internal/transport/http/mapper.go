package http

import (
	"encoding/json"

	"github.com/nonnle/chatrelay/internal/core"
	"github.com/nonnle/chatrelay/internal/proto"
)

// inboundToCommand maps a wire envelope to a core command. A malformed
// event yields a protocol error for the client and never kills the
// connection.
func inboundToCommand(inbound proto.Inbound) (*core.Command, *proto.Error) {
	switch inbound.Type {
	case proto.InboundTypeRegisterUser:
		var reg proto.RegisterUserData
		if err := json.Unmarshal(inbound.Data, &reg); err != nil {
			return nil, malformed("register-user")
		}
		if reg.Username == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "username is required"}
		}
		return &core.Command{Kind: core.CommandRegisterUser, Username: reg.Username}, nil

	case proto.InboundTypeChatMessage:
		var msg proto.ChatMessageData
		if err := json.Unmarshal(inbound.Data, &msg); err != nil {
			return nil, malformed("chat-message")
		}
		if msg.Content == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "content is required"}
		}
		kind := core.MessageKind(msg.Kind)
		if msg.Kind == "" {
			kind = core.MessageKindText
		}
		if !kind.Valid() {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "kind must be text or file"}
		}
		return &core.Command{
			Kind:        core.CommandChatMessage,
			Content:     msg.Content,
			MessageKind: kind,
		}, nil

	case proto.InboundTypeDeleteMessage:
		var del proto.DeleteMessageData
		if err := json.Unmarshal(inbound.Data, &del); err != nil {
			return nil, malformed("delete-message")
		}
		if del.ID == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "id is required"}
		}
		return &core.Command{Kind: core.CommandDeleteMessage, MessageID: del.ID}, nil

	case proto.InboundTypeCallInitiate:
		var call proto.CallInitiateData
		if err := json.Unmarshal(inbound.Data, &call); err != nil {
			return nil, malformed("call-initiate")
		}
		if call.Target == "" || len(call.Offer) == 0 {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "target and offer are required"}
		}
		return &core.Command{Kind: core.CommandCallInitiate, Signal: &core.Signal{
			Target:  call.Target,
			Caller:  call.Caller,
			IsVideo: call.IsVideo,
			Offer:   call.Offer,
		}}, nil

	case proto.InboundTypeCallAnswer:
		var ans proto.CallAnswerData
		if err := json.Unmarshal(inbound.Data, &ans); err != nil {
			return nil, malformed("call-answer")
		}
		if ans.Target == "" || len(ans.Answer) == 0 {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "target and answer are required"}
		}
		return &core.Command{Kind: core.CommandCallAnswer, Signal: &core.Signal{
			Target: ans.Target,
			Answer: ans.Answer,
		}}, nil

	case proto.InboundTypeICECandidate:
		var ice proto.ICECandidateData
		if err := json.Unmarshal(inbound.Data, &ice); err != nil {
			return nil, malformed("ice-candidate")
		}
		if ice.Target == "" || len(ice.Candidate) == 0 {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "target and candidate are required"}
		}
		return &core.Command{Kind: core.CommandICECandidate, Signal: &core.Signal{
			Target:    ice.Target,
			Candidate: ice.Candidate,
		}}, nil

	case proto.InboundTypeCallReject, proto.InboundTypeCallEnd:
		var tgt proto.CallTargetData
		if err := json.Unmarshal(inbound.Data, &tgt); err != nil {
			return nil, malformed(inbound.Type)
		}
		if tgt.Target == "" {
			return nil, &proto.Error{Code: core.ErrCodeBadRequest, Msg: "target is required"}
		}
		kind := core.CommandCallReject
		if inbound.Type == proto.InboundTypeCallEnd {
			kind = core.CommandCallEnd
		}
		return &core.Command{Kind: kind, Signal: &core.Signal{Target: tgt.Target}}, nil

	default:
		return nil, &proto.Error{Code: core.ErrCodeInvalidEvent, Msg: "unknown message type"}
	}
}

func malformed(kind string) *proto.Error {
	return &proto.Error{Code: core.ErrCodeInvalidEvent, Msg: "malformed " + kind + " payload"}
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventChatMessage:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameChatMessage,
			Data:  eventMessage(event.Message),
		}
	case core.EventHistory:
		messages := make([]proto.EventChatMessage, 0, len(event.Messages))
		for i := range event.Messages {
			messages = append(messages, eventMessage(&event.Messages[i]))
		}
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameHistory,
			Data:  proto.EventHistory{Messages: messages},
		}
	case core.EventMessageDeleted:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameMessageDeleted,
			Data:  proto.EventMessageDeleted{ID: event.MessageID},
		}
	case core.EventOnlineUsers:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameOnlineUsers,
			Data:  proto.EventOnlineUsers{Users: event.Users},
		}
	case core.EventIncomingCall:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameIncomingCall,
			Data: proto.EventIncomingCall{
				From:    event.Call.From,
				Offer:   event.Call.Offer,
				Caller:  event.Call.Caller,
				IsVideo: event.Call.IsVideo,
			},
		}
	case core.EventCallAnswered:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameCallAnswered,
			Data:  proto.EventCallAnswered{Answer: event.Call.Answer},
		}
	case core.EventICECandidate:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventNameICECandidate,
			Data:  proto.EventICECandidate{Candidate: event.Call.Candidate},
		}
	case core.EventCallRejected:
		return proto.Outbound{Type: proto.OutboundTypeEvent, Event: proto.EventNameCallRejected}
	case core.EventCallEnded:
		return proto.Outbound{Type: proto.OutboundTypeEvent, Event: proto.EventNameCallEnded}
	case core.EventError:
		if event.Error == nil {
			return proto.Outbound{Type: proto.OutboundTypeError, Error: &proto.Error{Code: "unknown", Msg: "unknown error"}}
		}
		return proto.Outbound{
			Type:  proto.OutboundTypeError,
			Error: &proto.Error{Code: event.Error.Code, Msg: event.Error.Message},
		}
	default:
		return proto.Outbound{Type: proto.OutboundTypeEvent}
	}
}

func eventMessage(msg *core.Message) proto.EventChatMessage {
	return proto.EventChatMessage{
		ID:      msg.ID,
		Sender:  msg.Sender,
		Content: msg.Content,
		Kind:    string(msg.Kind),
		TS:      msg.CreatedAt.Unix(),
	}
}
