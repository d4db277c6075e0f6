// Package token implements the JWT compact serialization primitives used
// across the toolkit: base64url segment encoding, header and payload
// extraction, and structural validation. It performs no cryptographic
// verification; that lives in the crack package.
package token

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// ErrMalformed is returned when a token does not decompose into three
// base64url segments with JSON object header and payload.
var ErrMalformed = errors.New("malformed token")

// Token is the decoded form of a JWT in compact serialization. Header and
// Payload hold the decoded JSON objects, Signature the raw signature bytes.
// The signature may be empty for unsigned (alg:none) tokens.
type Token struct {
	Header    map[string]interface{}
	Payload   map[string]interface{}
	Signature []byte

	parts [3]string
}

// Parse splits a compact JWT into its three segments and decodes them. It
// returns an error wrapping ErrMalformed if the token does not have exactly
// three dot-separated segments, a segment is not valid base64url, or the
// header or payload is not a JSON object.
func Parse(s string) (*Token, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return nil, errors.Wrapf(ErrMalformed, "token has %d segments, expected 3", len(parts))
	}

	header, err := decodeObject(parts[0])
	if err != nil {
		return nil, errors.Wrap(ErrMalformed, "invalid header segment")
	}
	payload, err := decodeObject(parts[1])
	if err != nil {
		return nil, errors.Wrap(ErrMalformed, "invalid payload segment")
	}

	// An empty signature segment is legal, it denotes an unsigned token.
	var signature []byte
	if parts[2] != "" {
		if signature, err = DecodeSegment(parts[2]); err != nil {
			return nil, errors.Wrap(ErrMalformed, "invalid signature segment")
		}
	}

	return &Token{
		Header:    header,
		Payload:   payload,
		Signature: signature,
		parts:     [3]string{parts[0], parts[1], parts[2]},
	}, nil
}

// SigningInput returns the signed portion of the token, the raw header and
// payload segments joined by a dot.
func (t *Token) SigningInput() []byte {
	return []byte(t.parts[0] + "." + t.parts[1])
}

// SignatureSegment returns the raw base64url signature segment as it
// appeared in the token.
func (t *Token) SignatureSegment() string {
	return t.parts[2]
}

// Algorithm returns the value of the "alg" header member, or the empty
// string if it is absent or not a string.
func (t *Token) Algorithm() string {
	if alg, ok := t.Header["alg"].(string); ok {
		return alg
	}
	return ""
}

// DecodeHeader decodes the header of a compact JWT without touching the
// other segments beyond the structural split.
func DecodeHeader(s string) (map[string]interface{}, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return nil, errors.Wrapf(ErrMalformed, "token has %d segments, expected 3", len(parts))
	}
	header, err := decodeObject(parts[0])
	if err != nil {
		return nil, errors.Wrap(ErrMalformed, "invalid header segment")
	}
	return header, nil
}

// DecodePayload decodes the payload (claims) of a compact JWT.
func DecodePayload(s string) (map[string]interface{}, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return nil, errors.Wrapf(ErrMalformed, "token has %d segments, expected 3", len(parts))
	}
	payload, err := decodeObject(parts[1])
	if err != nil {
		return nil, errors.Wrap(ErrMalformed, "invalid payload segment")
	}
	return payload, nil
}

// ValidateFormat reports whether the token is structurally valid: three
// segments, decodable base64url, and JSON object header and payload. It
// says nothing about the validity of the signature.
func ValidateFormat(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// EncodeSegment serializes v as compact JSON and encodes it as unpadded
// base64url, the form JWT segments use.
func EncodeSegment(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", errors.Wrap(err, "error serializing segment")
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// DecodeSegment decodes a base64url segment, tolerating both padded and
// unpadded input by re-padding to a multiple of four.
func DecodeSegment(s string) ([]byte, error) {
	if n := len(s) % 4; n != 0 {
		s += strings.Repeat("=", 4-n)
	}
	b, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "error decoding segment")
	}
	return b, nil
}

// decodeObject decodes a base64url segment into a JSON object.
func decodeObject(seg string) (map[string]interface{}, error) {
	b, err := DecodeSegment(seg)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, errors.Wrap(err, "error unmarshaling segment")
	}
	return m, nil
}
