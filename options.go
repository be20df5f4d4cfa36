package oauth1

// Options holds the optional OAuth protocol parameters for a single request:
// the callback URI, a pinned nonce/timestamp (for testing), the verifier,
// and whether to emit oauth_version. The zero value is the "use the
// defaults" configuration: no callback, a freshly generated nonce, the
// current wall-clock timestamp, no verifier, no oauth_version.
type Options struct {
	callback  *string
	nonce     *string
	timestamp *uint64
	verifier  *string
	version   bool
}

// Callback sets the oauth_callback value. Passing "" still sets an explicit
// empty callback; use ClearCallback to unset it.
func (o *Options) Callback(callback string) *Options {
	o.callback = &callback
	return o
}

// ClearCallback unsets any previously set oauth_callback value.
func (o *Options) ClearCallback() *Options {
	o.callback = nil
	return o
}

// Nonce pins the oauth_nonce value instead of generating a random one. This
// is intended for tests; production callers should leave the nonce unset.
func (o *Options) Nonce(nonce string) *Options {
	o.nonce = &nonce
	return o
}

// ClearNonce reverts to generating a fresh random nonce per request.
func (o *Options) ClearNonce() *Options {
	o.nonce = nil
	return o
}

// Timestamp pins the oauth_timestamp value instead of using the current
// wall-clock time. This is intended for tests; production callers should
// leave the timestamp unset.
func (o *Options) Timestamp(timestamp uint64) *Options {
	o.timestamp = &timestamp
	return o
}

// ClearTimestamp reverts to using the current wall-clock time.
func (o *Options) ClearTimestamp() *Options {
	o.timestamp = nil
	return o
}

// Verifier sets the oauth_verifier value.
func (o *Options) Verifier(verifier string) *Options {
	o.verifier = &verifier
	return o
}

// ClearVerifier unsets any previously set oauth_verifier value.
func (o *Options) ClearVerifier() *Options {
	o.verifier = nil
	return o
}

// Version sets whether oauth_version=1.0 is emitted.
func (o *Options) Version(version bool) *Options {
	o.version = version
	return o
}
