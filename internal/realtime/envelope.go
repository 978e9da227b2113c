// Package realtime is the websocket gateway of the planning grid.
// Every connected client speaks a small JSON protocol of command
// envelopes; mutations fan out collection update events to all
// clients so every open grid converges without polling.
package realtime

import "encoding/json"

// Envelope frames every message in both directions. Event names the
// command or notification, Data carries its payload, Ack is an
// optional client-chosen correlation id echoed back in the reply.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
	Ack   string          `json:"ack,omitempty"`
}

// AckResult is the payload of an "ack" reply.
type AckResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorPayload is the payload of an "error" event, sent only to the
// requester.
type ErrorPayload struct {
	Message string `json:"message"`
}

func marshalEnvelope(event string, data interface{}, ack string) ([]byte, error) {
	var raw json.RawMessage
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		raw = b
	}
	return json.Marshal(Envelope{Event: event, Data: raw, Ack: ack})
}
