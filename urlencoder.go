package oauth1

import "strings"

// Urlencoder is the Serializer that renders a request's user parameters as
// an application/x-www-form-urlencoded string, optionally appended to a base
// URI as its query component.
//
// Unlike Authorizer, Urlencoder never touches a SignatureMethod or Sign: all
// eight SerializeOAuth* hooks are no-ops, so the oauth_* protocol parameters
// (including oauth_signature, which Urlencoder never computes) never appear
// in its output. A request driver calls the very same Serialize method it
// would call against an Authorizer; Urlencoder simply discards the
// oauth_*-parameter half of that call sequence instead of rendering it,
// which is how this package produces both artifacts from one driver without
// exercising the signature algorithm twice. Construct one with
// NewFormUrlencoder or NewQueryUrlencoder, feed parameters, call End.
type Urlencoder struct {
	buf strings.Builder

	// leader is written before the first parameter only: "" for form
	// encoding, "?" when appending to a URI as its query string.
	leader   string
	wroteAny bool

	previousKey string
	hasPrev     bool
}

// NewFormUrlencoder returns an Urlencoder that renders parameters as a bare
// x-www-form-urlencoded body.
func NewFormUrlencoder() *Urlencoder {
	return &Urlencoder{leader: ""}
}

// NewQueryUrlencoder returns an Urlencoder that appends parameters to uri as
// its query string, writing "?" before the first one (and leaving uri
// untouched if no parameters are ever serialized).
func NewQueryUrlencoder(uri string) *Urlencoder {
	u := &Urlencoder{leader: "?"}
	u.buf.WriteString(uri)
	return u
}

func (u *Urlencoder) checkOrder(key string) {
	if !StrictOrdering {
		u.previousKey, u.hasPrev = key, true
		return
	}
	if u.hasPrev && key < u.previousKey {
		panic("oauth1: appended key is less than previously appended one in dictionary order" +
			"\n previous: \"" + u.previousKey + "\"" +
			"\n  current: \"" + key + "\"")
	}
	u.previousKey, u.hasPrev = key, true
}

func (u *Urlencoder) appendRaw(key, value string) {
	if u.wroteAny {
		u.buf.WriteByte('&')
	} else {
		u.buf.WriteString(u.leader)
	}
	u.buf.WriteString(key)
	u.buf.WriteByte('=')
	u.buf.WriteString(value)
	u.wroteAny = true
}

// SerializeParameter implements Serializer.
func (u *Urlencoder) SerializeParameter(key string, value any) {
	u.checkOrder(key)
	u.appendRaw(key, encodeString(value))
}

// SerializeParameterEncoded implements Serializer.
func (u *Urlencoder) SerializeParameterEncoded(key string, value any) {
	u.checkOrder(key)
	u.appendRaw(key, toDisplayString(value))
}

// SerializeOAuthCallback implements Serializer: Urlencoder never renders the
// OAuth protocol parameters, so every SerializeOAuth* hook is a no-op.
func (u *Urlencoder) SerializeOAuthCallback() {}

// SerializeOAuthConsumerKey implements Serializer; see SerializeOAuthCallback.
func (u *Urlencoder) SerializeOAuthConsumerKey() {}

// SerializeOAuthNonce implements Serializer; see SerializeOAuthCallback.
func (u *Urlencoder) SerializeOAuthNonce() {}

// SerializeOAuthSignatureMethod implements Serializer; see SerializeOAuthCallback.
func (u *Urlencoder) SerializeOAuthSignatureMethod() {}

// SerializeOAuthTimestamp implements Serializer; see SerializeOAuthCallback.
func (u *Urlencoder) SerializeOAuthTimestamp() {}

// SerializeOAuthToken implements Serializer; see SerializeOAuthCallback.
func (u *Urlencoder) SerializeOAuthToken() {}

// SerializeOAuthVerifier implements Serializer; see SerializeOAuthCallback.
func (u *Urlencoder) SerializeOAuthVerifier() {}

// SerializeOAuthVersion implements Serializer; see SerializeOAuthCallback.
func (u *Urlencoder) SerializeOAuthVersion() {}

// End implements Serializer: it returns the accumulated buffer. Unlike
// Authorizer.End, no signature is computed or appended — Urlencoder never
// instantiates a Sign at all.
func (u *Urlencoder) End() string {
	return u.buf.String()
}
