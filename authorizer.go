package oauth1

import "strings"

// StrictOrdering controls whether Authorizer and Urlencoder verify that
// parameters are serialized in ascending key order (a key equal to the
// previous one is accepted) and panic otherwise. It defaults to true. Go has no separate debug/release build
// profile to gate this the way the reference implementation does; this
// variable is the closest analogue, letting an advanced caller who has
// independently verified a Request's ordering (e.g. a fuzz-tested codegen)
// skip the check in a hot path. See DESIGN.md.
var StrictOrdering = true

// Authorizer is the streaming serializer that builds an OAuth Authorization
// header value while simultaneously feeding the signature base string to a
// Sign. Construct one with NewAuthorizer, drive it through the Serializer
// interface (directly, or via a Request's Serialize method), and call End
// to obtain the finished header string.
type Authorizer struct {
	sign   Sign
	header strings.Builder

	client Credentials
	token  *Credentials
	options *Options

	nonce     string
	timestamp uint64

	previousKey string
	hasPrev     bool
	wroteAny    bool
}

// NewAuthorizer constructs an Authorizer for the given HTTP method and
// absolute URI, signing with sm and the supplied credentials/options. token
// may be nil when the request carries no token credentials (e.g. the
// temporary-credentials request of RFC 5849 2.1). options may be nil, which
// is equivalent to a zero-value Options.
func NewAuthorizer(sm SignatureMethod, method, uri string, client Credentials, token *Credentials, options *Options) *Authorizer {
	if options == nil {
		options = &Options{}
	}

	var tokenSecret *string
	if token != nil {
		tokenSecret = &token.Secret
	}
	sign := sm.SignWith(client.Secret, tokenSecret)
	sign.RequestMethod(strings.ToUpper(method))
	sign.URI(uri)

	a := &Authorizer{
		sign:    sign,
		client:  client,
		token:   token,
		options: options,
	}
	a.header.WriteString("OAuth ")

	if options.nonce != nil {
		a.nonce = *options.nonce
	} else {
		a.nonce = generateNonce()
	}
	if options.timestamp != nil {
		a.timestamp = *options.timestamp
	} else {
		a.timestamp = nowUnix()
	}

	return a
}

func (a *Authorizer) checkOrder(key string) {
	if !StrictOrdering {
		a.previousKey, a.hasPrev = key, true
		return
	}
	if a.hasPrev && key < a.previousKey {
		panic("oauth1: appended key is less than previously appended one in dictionary order" +
			"\n previous: \"" + a.previousKey + "\"" +
			"\n  current: \"" + key + "\"")
	}
	a.previousKey, a.hasPrev = key, true
}

// appendHeaderRaw appends key="headerValue" to the header accumulator,
// prefixed with a comma if it is not the first parameter.
func (a *Authorizer) appendHeaderRaw(key, headerValue string) {
	if a.wroteAny {
		a.header.WriteByte(',')
	}
	a.header.WriteString(key)
	a.header.WriteString(`="`)
	a.header.WriteString(headerValue)
	a.header.WriteByte('"')
	a.wroteAny = true
}

// SerializeParameter implements Serializer.
func (a *Authorizer) SerializeParameter(key string, value any) {
	a.checkOrder(key)
	a.appendHeaderRaw(key, encodeString(value))

	a.sign.Delimiter()
	a.sign.Parameter(encodeString(key), encodeString(encodeString(value)))
}

// SerializeParameterEncoded implements Serializer.
func (a *Authorizer) SerializeParameterEncoded(key string, value any) {
	a.checkOrder(key)
	a.appendHeaderRaw(key, toDisplayString(value))

	a.sign.Delimiter()
	a.sign.Parameter(encodeString(key), encodeString(value))
}

// oauthParam is the internal hook shared by all eight SerializeOAuth*
// methods: it behaves like SerializeParameter but does not re-verify
// ordering, since the eight oauth_* keys are hardcoded in already-sorted
// position.
func (a *Authorizer) oauthParam(key, value string) {
	a.previousKey, a.hasPrev = key, true
	a.appendHeaderRaw(key, encodeString(value))

	a.sign.Delimiter()
	a.sign.Parameter(encodeString(key), encodeString(encodeString(value)))
}

// SerializeOAuthCallback implements Serializer.
func (a *Authorizer) SerializeOAuthCallback() {
	if a.options.callback != nil {
		a.oauthParam("oauth_callback", *a.options.callback)
	}
}

// SerializeOAuthConsumerKey implements Serializer.
func (a *Authorizer) SerializeOAuthConsumerKey() {
	a.oauthParam("oauth_consumer_key", a.client.Identifier)
}

// SerializeOAuthNonce implements Serializer.
func (a *Authorizer) SerializeOAuthNonce() {
	if a.sign.UseNonce() {
		a.oauthParam("oauth_nonce", a.nonce)
	}
}

// SerializeOAuthSignatureMethod implements Serializer.
func (a *Authorizer) SerializeOAuthSignatureMethod() {
	a.oauthParam("oauth_signature_method", a.sign.MethodName())
}

// SerializeOAuthTimestamp implements Serializer.
func (a *Authorizer) SerializeOAuthTimestamp() {
	if a.sign.UseTimestamp() {
		a.oauthParam("oauth_timestamp", formatUint(a.timestamp))
	}
}

// SerializeOAuthToken implements Serializer.
func (a *Authorizer) SerializeOAuthToken() {
	if a.token != nil {
		a.oauthParam("oauth_token", a.token.Identifier)
	}
}

// SerializeOAuthVerifier implements Serializer.
func (a *Authorizer) SerializeOAuthVerifier() {
	if a.options.verifier != nil {
		a.oauthParam("oauth_verifier", *a.options.verifier)
	}
}

// SerializeOAuthVersion implements Serializer.
func (a *Authorizer) SerializeOAuthVersion() {
	if a.options.version {
		a.oauthParam("oauth_version", "1.0")
	}
}

// End implements Serializer: it finalizes the Sign, appends oauth_signature
// to the header, and returns the completed Authorization header value.
func (a *Authorizer) End() string {
	signature := a.sign.End()
	a.appendHeaderRaw("oauth_signature", encodeString(signature.String()))
	return a.header.String()
}
