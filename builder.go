package oauth1

// Builder is the façade most callers use: configure it once with a signing
// method and client credentials, optionally attach token credentials and
// protocol options, then call one of its per-HTTP-method helpers (or Header
// directly) to sign a request. The unsigned ToFormURLEncoded/ToURIQuery
// artifacts live as free functions, not Builder methods, because they never
// touch a SignatureMethod or credentials (see Urlencoder).
//
// Builder is a small, cheap-to-copy value; its mutators return *Builder for
// chaining. A copied Builder shares its Options with the original, so the
// Callback, Nonce, Timestamp, Verifier and Version mutators on one copy are
// seen by the other; Token and ClearToken affect only the receiver.
type Builder struct {
	sm      SignatureMethod
	client  Credentials
	token   *Credentials
	options *Options
}

// NewBuilder returns a Builder that signs with sm using client credentials,
// no token credentials, and default Options.
func NewBuilder(sm SignatureMethod, client Credentials) *Builder {
	return &Builder{sm: sm, client: client, options: &Options{}}
}

// Token attaches token credentials (the access token, or the temporary
// request token during the RFC 5849 2.1/2.2 dance).
func (b *Builder) Token(token Credentials) *Builder {
	b.token = &token
	return b
}

// ClearToken removes any previously attached token credentials.
func (b *Builder) ClearToken() *Builder {
	b.token = nil
	return b
}

// Callback sets oauth_callback.
func (b *Builder) Callback(callback string) *Builder {
	b.options.Callback(callback)
	return b
}

// Nonce pins oauth_nonce instead of generating a random one. Intended for
// tests.
func (b *Builder) Nonce(nonce string) *Builder {
	b.options.Nonce(nonce)
	return b
}

// Timestamp pins oauth_timestamp instead of using the current time. Intended
// for tests.
func (b *Builder) Timestamp(timestamp uint64) *Builder {
	b.options.Timestamp(timestamp)
	return b
}

// Verifier sets oauth_verifier (RFC 5849 2.3).
func (b *Builder) Verifier(verifier string) *Builder {
	b.options.Verifier(verifier)
	return b
}

// Version sets whether oauth_version=1.0 is emitted.
func (b *Builder) Version(version bool) *Builder {
	b.options.Version(version)
	return b
}

// Header signs req for method and uri and returns the Authorization header
// value (without the leading "Authorization: ").
func (b *Builder) Header(method, uri string, req Request) string {
	a := NewAuthorizer(b.sm, method, uri, b.client, b.token, b.options)
	req.Serialize(a)
	return a.End()
}

// ConsumeHeader is Header taken on a value receiver, so that a Builder built
// around a non-copyable or sensitive SignatureMethod (RSASHA1's private key,
// in particular) can be signed with and then dropped in one expression
// instead of kept alive as a reusable pointer.
func (b Builder) ConsumeHeader(method, uri string, req Request) string {
	return (&b).Header(method, uri, req)
}

// ToFormURLEncoded turns req into an x-www-form-urlencoded string carrying
// its user parameters. It is a free function, not a Builder method: it
// never touches a signature method, credentials, or options, because
// Urlencoder ignores the oauth_* protocol parameters entirely (see
// Urlencoder) — there is nothing Builder's configuration would contribute.
func ToFormURLEncoded(req Request) string {
	u := NewFormUrlencoder()
	req.Serialize(u)
	return u.End()
}

// ToURIQuery turns req into a query string and appends it to uri. See
// ToFormURLEncoded for why this does not go through Builder.
func ToURIQuery(uri string, req Request) string {
	u := NewQueryUrlencoder(uri)
	req.Serialize(u)
	return u.End()
}

// Get signs a GET request and returns its Authorization header value.
func (b *Builder) Get(uri string, req Request) string { return b.Header("GET", uri, req) }

// Post signs a POST request and returns its Authorization header value.
func (b *Builder) Post(uri string, req Request) string { return b.Header("POST", uri, req) }

// Put signs a PUT request and returns its Authorization header value.
func (b *Builder) Put(uri string, req Request) string { return b.Header("PUT", uri, req) }

// Delete signs a DELETE request and returns its Authorization header value.
func (b *Builder) Delete(uri string, req Request) string { return b.Header("DELETE", uri, req) }

// Options signs an OPTIONS request and returns its Authorization header
// value.
func (b *Builder) Options(uri string, req Request) string { return b.Header("OPTIONS", uri, req) }

// Head signs a HEAD request and returns its Authorization header value.
func (b *Builder) Head(uri string, req Request) string { return b.Header("HEAD", uri, req) }

// Connect signs a CONNECT request and returns its Authorization header
// value.
func (b *Builder) Connect(uri string, req Request) string { return b.Header("CONNECT", uri, req) }

// Patch signs a PATCH request and returns its Authorization header value.
func (b *Builder) Patch(uri string, req Request) string { return b.Header("PATCH", uri, req) }

// Trace signs a TRACE request and returns its Authorization header value.
func (b *Builder) Trace(uri string, req Request) string { return b.Header("TRACE", uri, req) }

// Get is free-function sugar around NewBuilder(sm, client).Token(...).Header
// for one-off callers that do not need to reuse a Builder. token may be nil.
func Get(sm SignatureMethod, client Credentials, token *Credentials, options *Options, uri string, req Request) string {
	return header(sm, client, token, options, "GET", uri, req)
}

// Post is Get's POST counterpart.
func Post(sm SignatureMethod, client Credentials, token *Credentials, options *Options, uri string, req Request) string {
	return header(sm, client, token, options, "POST", uri, req)
}

// Put is Get's PUT counterpart.
func Put(sm SignatureMethod, client Credentials, token *Credentials, options *Options, uri string, req Request) string {
	return header(sm, client, token, options, "PUT", uri, req)
}

// Delete is Get's DELETE counterpart.
func Delete(sm SignatureMethod, client Credentials, token *Credentials, options *Options, uri string, req Request) string {
	return header(sm, client, token, options, "DELETE", uri, req)
}

// OptionsMethod is Get's OPTIONS counterpart. Named OptionsMethod, not
// Options, because Options is already this package's configuration-record
// type.
func OptionsMethod(sm SignatureMethod, client Credentials, token *Credentials, options *Options, uri string, req Request) string {
	return header(sm, client, token, options, "OPTIONS", uri, req)
}

// Head is Get's HEAD counterpart.
func Head(sm SignatureMethod, client Credentials, token *Credentials, options *Options, uri string, req Request) string {
	return header(sm, client, token, options, "HEAD", uri, req)
}

// Connect is Get's CONNECT counterpart.
func Connect(sm SignatureMethod, client Credentials, token *Credentials, options *Options, uri string, req Request) string {
	return header(sm, client, token, options, "CONNECT", uri, req)
}

// Patch is Get's PATCH counterpart.
func Patch(sm SignatureMethod, client Credentials, token *Credentials, options *Options, uri string, req Request) string {
	return header(sm, client, token, options, "PATCH", uri, req)
}

// Trace is Get's TRACE counterpart.
func Trace(sm SignatureMethod, client Credentials, token *Credentials, options *Options, uri string, req Request) string {
	return header(sm, client, token, options, "TRACE", uri, req)
}

func header(sm SignatureMethod, client Credentials, token *Credentials, options *Options, method, uri string, req Request) string {
	b := &Builder{sm: sm, client: client, token: token, options: options}
	if b.options == nil {
		b.options = &Options{}
	}
	return b.Header(method, uri, req)
}
