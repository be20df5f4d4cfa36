package oauth1

// Serializer is fed with a request's key-value pairs and produces a single
// string from them: either an Authorization header value (Authorizer) or a
// URI query / x-www-form-urlencoded string (Urlencoder).
//
// A Request's Serialize method feeds a Serializer with its parameters
// through the Serialize* methods, in strictly ascending byte order of key,
// with the eight oauth_* parameters other than oauth_signature occupying
// their sorted position via one call to SerializeOAuthParameters. See request.go for the full contract.
type Serializer interface {
	// SerializeParameter serializes a key-value pair. The value is
	// percent-encoded by the serializer; the key is not (callers are
	// expected to pass raw keys here).
	SerializeParameter(key string, value any)

	// SerializeParameterEncoded serializes a key-value pair whose value is
	// already percent-encoded. The serializer will not encode it again for
	// the header, though it is still folded into the signature base string
	// through the usual single extra layer of encoding C3 expects.
	SerializeParameterEncoded(key string, value any)

	// SerializeOAuthCallback appends oauth_callback, if set.
	SerializeOAuthCallback()
	// SerializeOAuthConsumerKey appends oauth_consumer_key.
	SerializeOAuthConsumerKey()
	// SerializeOAuthNonce appends oauth_nonce, if the signature method uses one.
	SerializeOAuthNonce()
	// SerializeOAuthSignatureMethod appends oauth_signature_method.
	SerializeOAuthSignatureMethod()
	// SerializeOAuthTimestamp appends oauth_timestamp, if the signature method uses one.
	SerializeOAuthTimestamp()
	// SerializeOAuthToken appends oauth_token, if token credentials are present.
	SerializeOAuthToken()
	// SerializeOAuthVerifier appends oauth_verifier, if set.
	SerializeOAuthVerifier()
	// SerializeOAuthVersion appends oauth_version=1.0, if enabled.
	SerializeOAuthVersion()

	// End finalizes the serialization and returns the serialized value.
	End() string
}

// SerializeOAuthParameters calls the eight individual
// SerializeOAuth*... hooks on s in the fixed order the RFC's key ordering
// requires (oauth_callback < oauth_consumer_key < oauth_nonce <
// oauth_signature_method < oauth_timestamp < oauth_token < oauth_verifier <
// oauth_version). A Request implementation should call this once, between
// the user parameters that sort below "oauth_" and those that sort above it.
func SerializeOAuthParameters(s Serializer) {
	s.SerializeOAuthCallback()
	s.SerializeOAuthConsumerKey()
	s.SerializeOAuthNonce()
	s.SerializeOAuthSignatureMethod()
	s.SerializeOAuthTimestamp()
	s.SerializeOAuthToken()
	s.SerializeOAuthVerifier()
	s.SerializeOAuthVersion()
}
