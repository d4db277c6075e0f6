// Package crack implements the wordlist brute-force engine for HMAC-signed
// JWTs: candidate loading, signature verification, and the sequential scan
// that drives one through the other.
package crack

import (
	"time"

	"github.com/jwtsec/jwtattack/token"
)

// Status is the terminal classification of a crack invocation.
type Status int

const (
	// StatusFound means a candidate reproduced the signature.
	StatusFound Status = iota
	// StatusFoundExpired means a candidate reproduced the signature but
	// the token's exp claim is in the past. Still a success; the secret is
	// known, the token just needs reissuing.
	StatusFoundExpired
	// StatusExhausted means every candidate was tested and none matched.
	StatusExhausted
	// StatusMalformed means the target token failed structural validation
	// or declared a non-HMAC algorithm; no candidates were attempted.
	StatusMalformed
)

// String returns a short operator-facing label for the status.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusFoundExpired:
		return "found (token expired)"
	case StatusExhausted:
		return "exhausted"
	case StatusMalformed:
		return "malformed token"
	default:
		return "unknown"
	}
}

// Cracked reports whether the outcome recovered the secret.
func (s Status) Cracked() bool {
	return s == StatusFound || s == StatusFoundExpired
}

// Outcome is the terminal result of one crack invocation.
type Outcome struct {
	Status Status
	// Secret is the matched candidate, exactly as it appeared in the
	// wordlist after trimming. Empty unless Status.Cracked().
	Secret string
	// Attempt is the 1-based index of the matching candidate. Zero unless
	// Status.Cracked().
	Attempt int
	// Attempts is the total number of candidates tested, including the one
	// that matched.
	Attempts int
	// Elapsed is the wall-clock duration of the scan.
	Elapsed time.Duration
	// Err carries the detail behind StatusMalformed.
	Err error
}

// Crack attempts to recover the HMAC secret of rawToken by trying every
// candidate in words, in order, until one reproduces the signature. An
// empty alg trusts the token header's declared algorithm; a non-empty alg
// pins it. The scan is strictly sequential and deterministic: re-invoking
// with the same inputs reproduces the same outcome, and the reported
// attempt index is always the earliest match in wordlist order.
func Crack(rawToken string, words []string, alg Algorithm, r Reporter) Outcome {
	if r == nil {
		r = NopReporter{}
	}

	t, err := token.Parse(rawToken)
	if err != nil {
		out := Outcome{Status: StatusMalformed, Err: err}
		r.Done(out)
		return out
	}
	v, err := NewHMACVerifier(t, alg)
	if err != nil {
		out := Outcome{Status: StatusMalformed, Err: err}
		r.Done(out)
		return out
	}

	return Scan(v, words, r)
}

// Scan is the core loop: it drives the candidate sequence through the
// verifier with first-match-wins termination. It is exported separately
// from Crack so callers can substitute an instrumented Verifier.
func Scan(v Verifier, words []string, r Reporter) Outcome {
	if r == nil {
		r = NopReporter{}
	}
	r.Start(len(words))
	start := time.Now()

	for i, w := range words {
		res := v.Verify(w)
		r.Attempt(i + 1)
		if res == Invalid {
			continue
		}

		out := Outcome{
			Secret:   w,
			Attempt:  i + 1,
			Attempts: i + 1,
			Elapsed:  time.Since(start),
		}
		if res == ValidButExpired {
			out.Status = StatusFoundExpired
		} else {
			out.Status = StatusFound
		}
		r.Done(out)
		return out
	}

	out := Outcome{
		Status:   StatusExhausted,
		Attempts: len(words),
		Elapsed:  time.Since(start),
	}
	r.Done(out)
	return out
}

// CrackFile loads the wordlist at path and cracks rawToken with it. The
// error is non-nil only when the wordlist is unavailable; an empty
// wordlist produces StatusExhausted with zero attempts.
func CrackFile(rawToken, path string, alg Algorithm, r Reporter) (Outcome, error) {
	words, err := LoadWordlist(path)
	if err != nil {
		return Outcome{}, err
	}
	return Crack(rawToken, words, alg, r), nil
}

// CrackBatch cracks every token against the same candidate list,
// independently, and maps each token to its terminal outcome. The wordlist
// is shared, not reloaded, so the per-token cost is the scan alone.
func CrackBatch(tokens []string, words []string, alg Algorithm, r Reporter) map[string]Outcome {
	results := make(map[string]Outcome, len(tokens))
	for _, tok := range tokens {
		results[tok] = Crack(tok, words, alg, r)
	}
	return results
}
