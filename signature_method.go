package oauth1

import "fmt"

// Signature is the rendered output of a Sign's End call: something that can
// be written into the Authorization header (after percent-encoding) or
// returned as-is (PLAINTEXT).
type Signature interface {
	fmt.Stringer
}

// stringSignature adapts a plain string to the Signature interface.
type stringSignature string

func (s stringSignature) String() string { return string(s) }

// SignatureMethod is the capability trait for pluggable signing algorithms.
// A SignatureMethod value describes an algorithm (e.g. "HMAC-SHA1"); calling
// SignWith instantiates the per-request signing state for it.
type SignatureMethod interface {
	// SignWith materializes the signing key from the client secret and the
	// token secret (nil when no token credentials are present) and returns
	// fresh per-request signing state.
	SignWith(clientSecret string, tokenSecret *string) Sign
}

// Sign is the per-request signing state machine. Authorizer drives a Sign
// through this call sequence: RequestMethod, URI, then alternating
// Delimiter/Parameter calls (one pair per serialized parameter), then End.
// MethodName, UseNonce and UseTimestamp are queried in between, while the
// oauth_* parameters are being serialized.
type Sign interface {
	// MethodName returns the signature method name written into
	// oauth_signature_method (e.g. "HMAC-SHA1", "PLAINTEXT").
	MethodName() string

	// UseNonce reports whether Authorizer should emit oauth_nonce. Both
	// built-in defaults return true; see DESIGN.md for why PLAINTEXT keeps
	// this true despite RFC 5849 3.1 allowing it to be omitted.
	UseNonce() bool

	// UseTimestamp reports whether Authorizer should emit oauth_timestamp.
	UseTimestamp() bool

	// RequestMethod feeds the uppercase HTTP method into the signature base
	// string. Called exactly once, before URI.
	RequestMethod(method string)

	// URI feeds the absolute request URI into the signature base string.
	// Called exactly once, after RequestMethod and before any Parameter
	// call.
	URI(uri string)

	// Delimiter feeds the "&" parameter separator. Called once before each
	// Parameter call except conceptually the first (implementations decide
	// whether to special-case the first call).
	Delimiter()

	// Parameter feeds one key and value into the signature base string.
	// Authorizer passes the key percent-encoded once and the value
	// percent-encoded twice. Calls arrive in the order the Request
	// serializes its parameters; Authorizer checks only that the raw keys
	// do not decrease, not the order of encoded keys or of values.
	Parameter(key string, value any)

	// End finalizes the signing state and returns the rendered signature.
	End() Signature
}

// defaultPolicy is embedded by built-in Sign implementations to supply the
// spec's default use_nonce = true, use_timestamp = true policy without
// repeating it in every implementation.
type defaultPolicy struct{}

func (defaultPolicy) UseNonce() bool     { return true }
func (defaultPolicy) UseTimestamp() bool { return true }
