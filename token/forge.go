package token

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

var signingMethods = map[string]*jwt.SigningMethodHMAC{
	"HS256": jwt.SigningMethodHS256,
	"HS384": jwt.SigningMethodHS384,
	"HS512": jwt.SigningMethodHS512,
}

// SupportedAlgorithms lists the HMAC algorithms the toolkit can sign and
// crack, in the order they are documented.
var SupportedAlgorithms = []string{"HS256", "HS384", "HS512"}

// Forge builds a signed JWT from a JSON payload and a known secret. The
// algorithm must be one of the HMAC family (HS256, HS384, HS512); the "alg"
// and "typ" header members are derived from it, any other members of
// header are carried over verbatim.
func Forge(payloadJSON, secret, algorithm string, header map[string]interface{}) (string, error) {
	method, ok := signingMethods[algorithm]
	if !ok {
		return "", errors.Errorf("unsupported algorithm %q, must be one of HS256, HS384 or HS512", algorithm)
	}

	var claims jwt.MapClaims
	if err := json.Unmarshal([]byte(payloadJSON), &claims); err != nil {
		return "", errors.Wrap(err, "invalid JSON payload")
	}

	tok := jwt.NewWithClaims(method, claims)
	for k, v := range header {
		// "alg" always reflects the signing method actually used.
		if k == "alg" {
			continue
		}
		tok.Header[k] = v
	}

	s, err := tok.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "error signing token")
	}
	return s, nil
}

// Unsigned builds an alg:none token: header and payload encoded as usual,
// signature segment empty. The "alg" member is forced to "none" no matter
// what the caller-supplied header says, since that is the entire point of
// the construction.
func Unsigned(payloadJSON string, header map[string]interface{}) (string, error) {
	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(payloadJSON), &payload); err != nil {
		return "", errors.Wrap(err, "invalid JSON payload")
	}

	h := make(map[string]interface{}, len(header)+2)
	for k, v := range header {
		h[k] = v
	}
	h["alg"] = "none"
	if _, ok := h["typ"]; !ok {
		h["typ"] = "JWT"
	}

	headerSeg, err := EncodeSegment(h)
	if err != nil {
		return "", err
	}
	payloadSeg, err := EncodeSegment(payload)
	if err != nil {
		return "", err
	}
	return headerSeg + "." + payloadSeg + ".", nil
}
