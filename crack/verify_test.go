package crack

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwtsec/jwtattack/token"
)

// forge builds a signed test token and parses it back.
func forge(t *testing.T, payload, secret, alg string) *token.Token {
	t.Helper()
	raw, err := token.Forge(payload, secret, alg, nil)
	require.NoError(t, err)
	tok, err := token.Parse(raw)
	require.NoError(t, err)
	return tok
}

func TestHMACVerifier(t *testing.T) {
	for _, alg := range []Algorithm{HS256, HS384, HS512} {
		t.Run(string(alg), func(t *testing.T) {
			tok := forge(t, `{"user":"testuser"}`, "secret", string(alg))

			// Header algorithm is authoritative when none is pinned.
			v, err := NewHMACVerifier(tok, "")
			require.NoError(t, err)
			assert.Equal(t, Valid, v.Verify("secret"))
			assert.Equal(t, Invalid, v.Verify("wrong"))
			assert.Equal(t, Invalid, v.Verify(""))
			assert.Equal(t, Invalid, v.Verify("Secret"))
			assert.Equal(t, Invalid, v.Verify("secret "))
		})
	}
}

func TestHMACVerifierForgeRoundTrip(t *testing.T) {
	payloads := []string{
		`{"user":"testuser","role":"admin"}`,
		`{"sub":"auth","n":42}`,
		`{}`,
	}
	secrets := []string{"secret", "hunter2", "a", "correct horse battery staple"}

	for _, p := range payloads {
		for _, s := range secrets {
			v, err := NewHMACVerifier(forge(t, p, s, "HS256"), HS256)
			require.NoError(t, err)
			assert.Equal(t, Valid, v.Verify(s), "payload %s secret %s", p, s)
		}
	}
}

func TestHMACVerifierPinnedAlgorithm(t *testing.T) {
	tok := forge(t, `{"user":"x"}`, "secret", "HS256")

	// Pinning a different HMAC variant makes the real secret fail; the
	// recomputed signature uses the pinned hash, not the declared one.
	v, err := NewHMACVerifier(tok, HS384)
	require.NoError(t, err)
	assert.Equal(t, Invalid, v.Verify("secret"))
}

func TestNewHMACVerifierRejectsNonHMAC(t *testing.T) {
	for _, alg := range []string{"none", "RS256", "ES256", ""} {
		t.Run(fmt.Sprintf("alg %q", alg), func(t *testing.T) {
			header := map[string]interface{}{"typ": "JWT"}
			if alg != "" {
				header["alg"] = alg
			}
			h, err := token.EncodeSegment(header)
			require.NoError(t, err)
			p, err := token.EncodeSegment(map[string]interface{}{"user": "x"})
			require.NoError(t, err)
			tok, err := token.Parse(h + "." + p + ".")
			require.NoError(t, err)

			_, err = NewHMACVerifier(tok, "")
			require.Error(t, err)
			assert.True(t, errors.Is(err, token.ErrMalformed))
		})
	}
}

func TestHMACVerifierExpired(t *testing.T) {
	past := time.Now().Add(-time.Hour).Unix()
	payload := fmt.Sprintf(`{"user":"x","exp":%d}`, past)

	v, err := NewHMACVerifier(forge(t, payload, "secret", "HS256"), "")
	require.NoError(t, err)
	// The signature is still the thing being cracked; expiry only changes
	// the classification of a match.
	assert.Equal(t, ValidButExpired, v.Verify("secret"))
	assert.Equal(t, Invalid, v.Verify("wrong"))
}

func TestHMACVerifierNotYetExpired(t *testing.T) {
	future := time.Now().Add(time.Hour).Unix()
	payload := fmt.Sprintf(`{"user":"x","exp":%d}`, future)

	v, err := NewHMACVerifier(forge(t, payload, "secret", "HS256"), "")
	require.NoError(t, err)
	assert.Equal(t, Valid, v.Verify("secret"))
}

func TestHMACVerifierIgnoresOtherTimeClaims(t *testing.T) {
	// nbf in the future and iat in the past do not affect cracking.
	payload := fmt.Sprintf(`{"user":"x","nbf":%d,"iat":%d}`,
		time.Now().Add(time.Hour).Unix(), time.Now().Add(-time.Hour).Unix())

	v, err := NewHMACVerifier(forge(t, payload, "secret", "HS256"), "")
	require.NoError(t, err)
	assert.Equal(t, Valid, v.Verify("secret"))
}

func TestExpiry(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]interface{}
		want    bool
	}{
		{"absent", map[string]interface{}{}, false},
		{"number", map[string]interface{}{"exp": float64(1700000000)}, true},
		{"json number", map[string]interface{}{"exp": json.Number("1700000000")}, true},
		{"string", map[string]interface{}{"exp": "1700000000"}, false},
		{"bool", map[string]interface{}{"exp": true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expiry(tt.payload)
			if tt.want {
				require.NotNil(t, got)
				assert.Equal(t, int64(1700000000), got.Unix())
			} else {
				assert.Nil(t, got)
			}
		})
	}
}
