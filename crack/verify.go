package crack

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/json"
	"hash"
	"time"

	"github.com/pkg/errors"

	"github.com/jwtsec/jwtattack/token"
)

// Algorithm identifies an HMAC-SHA signing algorithm. Only the HMAC family
// is crackable with a wordlist; asymmetric algorithms are out of scope.
type Algorithm string

// Supported HMAC algorithms.
const (
	HS256 Algorithm = "HS256"
	HS384 Algorithm = "HS384"
	HS512 Algorithm = "HS512"
)

// hashFunc returns the SHA-2 constructor for the algorithm, or nil if the
// algorithm is not an HMAC variant.
func (a Algorithm) hashFunc() func() hash.Hash {
	switch a {
	case HS256:
		return sha256.New
	case HS384:
		return sha512.New384
	case HS512:
		return sha512.New
	default:
		return nil
	}
}

// Result classifies a single candidate attempt.
type Result int

const (
	// Invalid means the candidate does not reproduce the signature.
	Invalid Result = iota
	// Valid means the candidate reproduces the signature and the token's
	// time claims (if any) do not mark it expired.
	Valid
	// ValidButExpired means the candidate reproduces the signature but the
	// token's exp claim is in the past. The secret is still cracked.
	ValidButExpired
)

// Verifier tests whether a candidate secret reproduces a token's
// signature. Implementations must be safe to call repeatedly with
// arbitrary candidate bytes; a bad candidate is never fatal.
type Verifier interface {
	Verify(secret string) Result
}

// HMACVerifier verifies candidates against a fixed token using HMAC with
// the SHA-2 function selected by the algorithm. The signing input,
// expected signature and expiry are bound once at construction so the hot
// loop only computes one HMAC per candidate.
type HMACVerifier struct {
	hash      func() hash.Hash
	input     []byte
	signature []byte
	expiresAt *time.Time

	now func() time.Time // test hook
}

// NewHMACVerifier binds a parsed token to an HMAC algorithm. If alg is
// empty the token header's "alg" member is authoritative; passing an
// explicit algorithm pins it regardless of what the header declares. An
// error wrapping token.ErrMalformed is returned when the algorithm, pinned
// or declared, is not an HMAC variant.
func NewHMACVerifier(t *token.Token, alg Algorithm) (*HMACVerifier, error) {
	if alg == "" {
		alg = Algorithm(t.Algorithm())
	}
	h := alg.hashFunc()
	if h == nil {
		return nil, errors.Wrapf(token.ErrMalformed, "algorithm %q is not an HMAC variant", string(alg))
	}

	return &HMACVerifier{
		hash:      h,
		input:     t.SigningInput(),
		signature: t.Signature,
		expiresAt: expiry(t.Payload),
		now:       time.Now,
	}, nil
}

// Verify recomputes the signature over the token's signing input with the
// candidate as HMAC key and compares it against the token's signature.
// Comparison is exact; a truncated or case-folded match never passes.
func (v *HMACVerifier) Verify(secret string) Result {
	mac := hmac.New(v.hash, []byte(secret))
	mac.Write(v.input)
	if !hmac.Equal(mac.Sum(nil), v.signature) {
		return Invalid
	}
	if v.expiresAt != nil && v.now().After(*v.expiresAt) {
		return ValidButExpired
	}
	return Valid
}

// expiry extracts the exp claim as a time. Only exp participates in the
// expired-versus-valid distinction; nbf and iat are ignored during
// cracking, matching the verification options a cracker wants. A missing
// or non-numeric exp means the token never expires.
func expiry(payload map[string]interface{}) *time.Time {
	var secs float64
	switch v := payload["exp"].(type) {
	case float64:
		secs = v
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil
		}
		secs = f
	default:
		return nil
	}
	t := time.Unix(int64(secs), 0)
	return &t
}
