package oauth1

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"hash"
	"strings"
)

// HMACSHA1 is the "HMAC-SHA1" signature method (RFC 5849 3.4.2).
type HMACSHA1 struct{}

// SignWith implements SignatureMethod.
func (HMACSHA1) SignWith(clientSecret string, tokenSecret *string) Sign {
	return newHMACSign(sha1.New, "HMAC-SHA1", clientSecret, tokenSecret)
}

// HMACSHA256 is the "HMAC-SHA256" signature method.
type HMACSHA256 struct{}

// SignWith implements SignatureMethod.
func (HMACSHA256) SignWith(clientSecret string, tokenSecret *string) Sign {
	return newHMACSign(sha256.New, "HMAC-SHA256", clientSecret, tokenSecret)
}

// hmacSign accumulates the signature base string directly into an HMAC
// hash.Hash as it is fed, so the base string itself is never held in memory
// as a whole string. Authorizer has already percent-encoded the key once and
// the value twice by the time it reaches Parameter (RFC 5849 3.4.1.3.2's
// parameter string is itself percent-encoded when concatenated into the base
// string, which is why "%3D"/"%26" appear as literal three-byte separators
// rather than bare "="/"&").
type hmacSign struct {
	defaultPolicy
	methodName string
	mac        hash.Hash
	wroteParam bool
}

func newHMACSign(newHash func() hash.Hash, methodName, clientSecret string, tokenSecret *string) *hmacSign {
	var key strings.Builder
	secret := ""
	if tokenSecret != nil {
		secret = *tokenSecret
	}
	writeSigningKey(&key, clientSecret, secret)
	return &hmacSign{
		methodName: methodName,
		mac:        hmac.New(newHash, []byte(key.String())),
	}
}

func (s *hmacSign) MethodName() string { return s.methodName }

func (s *hmacSign) RequestMethod(method string) {
	s.mac.Write([]byte(method))
}

func (s *hmacSign) URI(uri string) {
	s.mac.Write([]byte("&"))
	s.mac.Write([]byte(encodeString(uri)))
	s.mac.Write([]byte("&"))
}

// Delimiter writes the "%26" parameter separator, skipping the very first
// call: the fixed "&" already written by URI serves as the join between the
// URI and the first parameter, so the parameter string itself only needs a
// separator between its own entries.
func (s *hmacSign) Delimiter() {
	if s.wroteParam {
		s.mac.Write([]byte("%26"))
	}
	s.wroteParam = true
}

// Parameter writes key + "%3D" + value verbatim: Authorizer has already
// percent-encoded both arguments (the key once, the value twice) before
// calling this method.
func (s *hmacSign) Parameter(key string, value any) {
	s.mac.Write([]byte(toDisplayString(key)))
	s.mac.Write([]byte("%3D"))
	s.mac.Write([]byte(toDisplayString(value)))
}

func (s *hmacSign) End() Signature {
	sum := s.mac.Sum(nil)
	return stringSignature(base64.StdEncoding.EncodeToString(sum))
}
