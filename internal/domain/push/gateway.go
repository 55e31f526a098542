package push

import "context"

// Message is one batched multicast to all of a user's registered tokens.
type Message struct {
	Title       string
	Body        string
	Route       string // deep-link path placed in the data payload
	Tokens      []string
	CollapseKey string
}

// SendResult is the gateway's outcome for a single token, indexed identically
// to the message's token list.
type SendResult struct {
	Success   bool
	ErrorCode string
}

// Error codes the gateway reports when a token can never receive another
// message. Such tokens are queued for deletion; every other failure is
// transient and retried on the next scheduled run.
var permanentErrorCodes = map[string]bool{
	"unregistered":                      true,
	"registration-token-not-registered": true,
	"invalid-registration-token":        true,
	"invalid-argument":                  true,
	"not-found":                         true,
}

// PermanentFailure reports whether this result means the token is dead.
func (r SendResult) PermanentFailure() bool {
	return !r.Success && permanentErrorCodes[r.ErrorCode]
}

// Gateway abstracts the multicast push delivery service. Implementations
// must return one result per input token, in order.
type Gateway interface {
	SendMulticast(ctx context.Context, msg Message) ([]SendResult, error)
}
