package ui

import (
	"encoding/json"
	"io"

	"github.com/Amr-9/VanityHunter/pkg/generator/search"
)

// Message types of the JSON event stream.
const (
	MessageProgress  = "progress"
	MessageResult    = "result"
	MessageCancelled = "cancelled"
	MessageError     = "error"
)

// ProgressMessage is the JSON form of a progress event.
type ProgressMessage struct {
	Type          string `json:"type"`
	AttemptsTried uint64 `json:"attemptsTried"`
	TimeRemaining string `json:"timeRemaining"`
}

// TerminalMessage is the JSON form of the terminal event.
type TerminalMessage struct {
	Type       string `json:"type"`
	PublicKey  string `json:"publicKey,omitempty"`
	PrivateKey string `json:"privateKey,omitempty"`
	Prefix     string `json:"prefix,omitempty"`
	Error      string `json:"error,omitempty"`
}

// JSONEmitter writes search events as newline-delimited JSON.
type JSONEmitter struct {
	enc *json.Encoder
}

// NewJSONEmitter creates an emitter writing to w.
func NewJSONEmitter(w io.Writer) *JSONEmitter {
	return &JSONEmitter{enc: json.NewEncoder(w)}
}

// Progress writes one progress event.
func (e *JSONEmitter) Progress(p search.Progress) error {
	return e.enc.Encode(ProgressMessage{
		Type:          MessageProgress,
		AttemptsTried: p.Attempts,
		TimeRemaining: p.TimeRemaining,
	})
}

// Outcome writes the terminal event. Found results carry the hex encoded
// secret key.
func (e *JSONEmitter) Outcome(o search.Outcome) error {
	msg := TerminalMessage{Type: MessageCancelled}

	switch o.Status {
	case search.StatusFound:
		msg = TerminalMessage{
			Type:       MessageResult,
			PublicKey:  o.Result.Address,
			PrivateKey: o.Result.PrivateKeyHex(),
			Prefix:     o.Result.Prefix,
		}
	case search.StatusErrored:
		msg = TerminalMessage{Type: MessageError, Error: o.Err.Error()}
	}

	return e.enc.Encode(msg)
}
