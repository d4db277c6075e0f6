package token

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testToken assembles a compact token from a header and payload map with
// an arbitrary signature segment.
func testToken(t *testing.T, header, payload map[string]interface{}, sig string) string {
	t.Helper()
	h, err := EncodeSegment(header)
	require.NoError(t, err)
	p, err := EncodeSegment(payload)
	require.NoError(t, err)
	return h + "." + p + "." + sig
}

func TestParse(t *testing.T) {
	header := map[string]interface{}{"alg": "HS256", "typ": "JWT"}
	payload := map[string]interface{}{"user": "testuser", "role": "admin"}
	sig := base64.RawURLEncoding.EncodeToString([]byte("not a real signature"))

	tok, err := Parse(testToken(t, header, payload, sig))
	require.NoError(t, err)
	assert.Equal(t, header, tok.Header)
	assert.Equal(t, payload, tok.Payload)
	assert.Equal(t, []byte("not a real signature"), tok.Signature)
	assert.Equal(t, "HS256", tok.Algorithm())
	assert.Equal(t, sig, tok.SignatureSegment())

	parts := strings.Split(testToken(t, header, payload, sig), ".")
	assert.Equal(t, []byte(parts[0]+"."+parts[1]), tok.SigningInput())
}

func TestParseUnsigned(t *testing.T) {
	header := map[string]interface{}{"alg": "none", "typ": "JWT"}
	payload := map[string]interface{}{"user": "testuser"}

	tok, err := Parse(testToken(t, header, payload, ""))
	require.NoError(t, err)
	assert.Empty(t, tok.Signature)
	assert.Equal(t, "none", tok.Algorithm())
}

func TestParseErrors(t *testing.T) {
	header := map[string]interface{}{"alg": "HS256"}
	payload := map[string]interface{}{"user": "x"}
	h, err := EncodeSegment(header)
	require.NoError(t, err)
	p, err := EncodeSegment(payload)
	require.NoError(t, err)
	array, err := EncodeSegment([]string{"not", "an", "object"})
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"one segment", h},
		{"two segments", h + "." + p},
		{"four segments", h + "." + p + ".sig.extra"},
		{"header not base64url", "+++." + p + "."},
		{"payload not base64url", h + ".+++."},
		{"signature not base64url", h + "." + p + ".+++"},
		{"header not an object", array + "." + p + "."},
		{"payload not an object", h + "." + array + "."},
		{"header not json", base64.RawURLEncoding.EncodeToString([]byte("{oops")) + "." + p + "."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformed))
		})
	}
}

func TestValidateFormat(t *testing.T) {
	header := map[string]interface{}{"alg": "HS256", "typ": "JWT"}
	payload := map[string]interface{}{"user": "testuser"}
	valid := testToken(t, header, payload, base64.RawURLEncoding.EncodeToString([]byte("sig")))

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"ok", valid, true},
		{"ok empty signature", testToken(t, header, payload, ""), true},
		{"empty", "", false},
		{"one segment", "eyJh", false},
		{"two segments", "eyJh.eyJi", false},
		{"four segments", "a.b.c.d", false},
		{"bad characters", "$$$.%%%.^^^", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateFormat(tt.token))
		})
	}
}

func TestDecodeHeaderPayload(t *testing.T) {
	header := map[string]interface{}{"alg": "HS512", "kid": "legacy"}
	payload := map[string]interface{}{"sub": "auth", "admin": true}
	tok := testToken(t, header, payload, "")

	h, err := DecodeHeader(tok)
	require.NoError(t, err)
	assert.Equal(t, header, h)

	p, err := DecodePayload(tok)
	require.NoError(t, err)
	assert.Equal(t, payload, p)

	_, err = DecodeHeader("nope")
	assert.True(t, errors.Is(err, ErrMalformed))
	_, err = DecodePayload("nope")
	assert.True(t, errors.Is(err, ErrMalformed))
}

func TestEncodeSegmentCompact(t *testing.T) {
	seg, err := EncodeSegment(map[string]interface{}{"alg": "none", "typ": "JWT"})
	require.NoError(t, err)

	b, err := DecodeSegment(seg)
	require.NoError(t, err)
	assert.Equal(t, `{"alg":"none","typ":"JWT"}`, string(b))
	assert.NotContains(t, seg, "=")
}

func TestDecodeSegmentPadding(t *testing.T) {
	// Lengths that need zero, one and two padding characters, plus longer
	// inputs covering every remainder class.
	inputs := [][]byte{
		[]byte(""),
		[]byte("f"),
		[]byte("fo"),
		[]byte("foo"),
		[]byte("foob"),
		[]byte("fooba"),
		[]byte("foobar"),
		{0xfb, 0xff, 0xfe, 0x00, 0x01},
	}
	for _, in := range inputs {
		unpadded := base64.RawURLEncoding.EncodeToString(in)
		got, err := DecodeSegment(unpadded)
		require.NoError(t, err)
		assert.Equal(t, in, got)

		// Padded input decodes to the same bytes.
		padded := base64.URLEncoding.EncodeToString(in)
		got, err = DecodeSegment(padded)
		require.NoError(t, err)
		assert.Equal(t, in, got)
	}
}
