package core

import (
	"encoding/json"

	"github.com/nonnle/chatrelay/internal/metrics"
)

// Signal is the inbound payload of a call-signaling command. Offer,
// Answer and Candidate are relayed verbatim; the server never parses
// SDP or ICE contents.
type Signal struct {
	Target    string
	Caller    string
	IsVideo   bool
	Offer     json.RawMessage
	Answer    json.RawMessage
	Candidate json.RawMessage
}

// relaySignal resolves the target username and forwards the payload
// point-to-point. The relay is deliberately stateless: it never checks
// that an answer matches an outstanding offer, and a missing target
// drops the event silently. The caller's own timeout is its feedback.
func (h *Hub) relaySignal(from *Client, cmd *Command) {
	sig := cmd.Signal
	if sig == nil || sig.Target == "" {
		h.log.Debug().Str("client_id", from.ID).Msg("signal without target dropped")
		return
	}

	target, ok := h.registry.Lookup(sig.Target)
	if !ok {
		metrics.SignalsDropped.Inc()
		h.log.Debug().
			Str("client_id", from.ID).
			Str("target", sig.Target).
			Msg("signal target not online, dropped")
		return
	}

	switch cmd.Kind {
	case CommandCallInitiate:
		if from.Username == "" {
			h.log.Debug().Str("client_id", from.ID).Msg("call from unregistered client dropped")
			return
		}
		h.send(target, &Event{Kind: EventIncomingCall, Call: &CallSignal{
			From:    from.Username,
			Caller:  sig.Caller,
			IsVideo: sig.IsVideo,
			Offer:   sig.Offer,
		}})
		metrics.SignalsTotal.WithLabelValues("initiate").Inc()
	case CommandCallAnswer:
		h.send(target, &Event{Kind: EventCallAnswered, Call: &CallSignal{Answer: sig.Answer}})
		metrics.SignalsTotal.WithLabelValues("answer").Inc()
	case CommandICECandidate:
		h.send(target, &Event{Kind: EventICECandidate, Call: &CallSignal{Candidate: sig.Candidate}})
		metrics.SignalsTotal.WithLabelValues("candidate").Inc()
	case CommandCallReject:
		h.send(target, &Event{Kind: EventCallRejected})
		metrics.SignalsTotal.WithLabelValues("reject").Inc()
	case CommandCallEnd:
		h.send(target, &Event{Kind: EventCallEnded})
		metrics.SignalsTotal.WithLabelValues("end").Inc()
	}
}
