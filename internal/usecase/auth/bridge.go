package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// BridgeAudience tags bridge tokens so they can never be confused with, or
// replayed as, any other token signed with the same secret.
const BridgeAudience = "ocfapi_calnet"

// Bridge issues and verifies the short-lived tokens that carry a single CalNet
// UID through the CAS callback flow. Tokens are fully self-contained; nothing
// is stored server-side.
type Bridge struct {
	codec  *Codec
	expiry time.Duration
	now    func() time.Time
}

// NewBridge -.
func NewBridge(codec *Codec, expiry time.Duration) *Bridge {
	return &Bridge{
		codec:  codec,
		expiry: expiry,
		now:    time.Now,
	}
}

// Issue signs a bridge token for the given CalNet UID.
func (b *Bridge) Issue(uid int) (string, error) {
	now := b.now().Unix()

	return b.codec.Encode(jwt.MapClaims{
		"sub": strconv.Itoa(uid),
		"aud": BridgeAudience,
		"iat": now,
		"exp": now + int64(b.expiry/time.Second),
	})
}

// Verify decodes a bridge token and re-validates its claims: audience match,
// iat <= now <= exp (inclusive on both ends), and a positive integer subject.
// Claim checks are deliberately manual rather than delegated to generic JWT
// validation so the audience-scoping rule is applied uniformly.
func (b *Bridge) Verify(tokenString string) (int, error) {
	claims, err := b.codec.Decode(tokenString)

	switch {
	case errors.Is(err, ErrInvalidSignature):
		return 0, InvalidTokenError{Reason: ReasonBadSignature}
	case err != nil:
		return 0, InvalidTokenError{Reason: ReasonMalformed}
	}

	aud, ok := claims["aud"].(string)
	if !ok || aud != BridgeAudience {
		return 0, InvalidTokenError{Reason: ReasonWrongAudience}
	}

	now := b.now().Unix()

	iat, ok := numericClaim(claims["iat"])
	if !ok || iat > now {
		return 0, InvalidTokenError{Reason: ReasonIssuedInFuture}
	}

	exp, ok := numericClaim(claims["exp"])
	if !ok || exp < now {
		return 0, InvalidTokenError{Reason: ReasonExpired}
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, InvalidTokenError{Reason: ReasonBadSubject}
	}

	uid, err := strconv.Atoi(sub)
	if err != nil || uid <= 0 {
		return 0, InvalidTokenError{Reason: ReasonBadSubject}
	}

	return uid, nil
}

// numericClaim converts a decoded timestamp claim to unix seconds. JSON
// decoding yields float64; freshly built claims may still hold int64.
func numericClaim(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	default:
		return 0, false
	}
}
