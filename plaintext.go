package oauth1

import "strings"

// Plaintext is the "PLAINTEXT" signature method (RFC 5849 3.4.4). It does
// not feed the signature base string at all; its signature is simply the
// signing key (encode(client_secret) + "&" + encode(token_secret)).
//
// RFC 5849 3.1 says oauth_timestamp and oauth_nonce MAY be omitted when
// using PLAINTEXT, but OAuth Core 1.0 Revision A required them for
// compatibility. This built-in keeps UseNonce/UseTimestamp at the default
// true for interoperability.
type Plaintext struct{}

// SignWith implements SignatureMethod.
func (Plaintext) SignWith(clientSecret string, tokenSecret *string) Sign {
	var key strings.Builder
	secret := ""
	if tokenSecret != nil {
		secret = *tokenSecret
	}
	writeSigningKey(&key, clientSecret, secret)
	return &plaintextSign{signingKey: key.String()}
}

type plaintextSign struct {
	defaultPolicy
	signingKey string
}

func (s *plaintextSign) MethodName() string { return "PLAINTEXT" }

// RequestMethod, URI, Delimiter, and Parameter are no-ops: PLAINTEXT's
// signature does not depend on the method, URI, or parameters at all.
func (s *plaintextSign) RequestMethod(string)  {}
func (s *plaintextSign) URI(string)            {}
func (s *plaintextSign) Delimiter()            {}
func (s *plaintextSign) Parameter(string, any) {}

func (s *plaintextSign) End() Signature {
	return stringSignature(s.signingKey)
}
