package email

import "context"

// Message is one transactional email.
type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Sender delivers transactional email. The send is fire-and-forget from the
// caller's point of view: not retried, not cancellable once issued.
type Sender interface {
	// Send delivers the message and returns the provider's message id.
	Send(ctx context.Context, msg Message) (string, error)
}
