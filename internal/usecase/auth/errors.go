package auth

import "errors"

// Codec errors.
var (
	// ErrInvalidSignature is returned when a token's signature does not match the configured secret.
	ErrInvalidSignature = errors.New("token signature mismatch")

	// ErrMalformedToken is returned when a token's structural encoding cannot be parsed.
	ErrMalformedToken = errors.New("malformed token")
)

// Broker verifier errors.
var (
	// ErrIncompleteClaims is returned when a verified broker token is missing a required claim.
	ErrIncompleteClaims = errors.New("token is missing required claims")

	// ErrTokenRejected is returned when a broker token fails signature or expiry checks.
	ErrTokenRejected = errors.New("token rejected")
)

// ErrBadTicket is returned when CAS declines to validate a service ticket.
var ErrBadTicket = errors.New("got bad ticket")

// Reason enumerates why bridge token verification failed. Reasons are logged
// internally; callers present a single generic message regardless of reason.
type Reason string

const (
	ReasonBadSignature   Reason = "bad signature"
	ReasonMalformed      Reason = "malformed encoding"
	ReasonWrongAudience  Reason = "wrong audience"
	ReasonIssuedInFuture Reason = "issued in the future"
	ReasonExpired        Reason = "expired"
	ReasonBadSubject     Reason = "subject is not a positive integer"
)

// InvalidTokenError reports a failed bridge token verification with its
// specific reason. The reason must never be echoed to the client.
type InvalidTokenError struct {
	Reason Reason
}

func (e InvalidTokenError) Error() string {
	return "invalid bridge token: " + string(e.Reason)
}
