package notification

import "context"

// Message is a plain-text notification. The reset flow fills every field
// from configuration except To and Body.
type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	ReplyTo string `json:"replyTo,omitempty"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Gateway delivers messages. Implementations are constructed once at
// process start and injected, there is no process-global transport.
type Gateway interface {
	Send(ctx context.Context, message Message) error
}
