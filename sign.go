package oauth1

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

const (
	authorizationHeaderParam = "Authorization"
	contentTypeHeaderParam   = "Content-Type"
	formContentType          = "application/x-www-form-urlencoded"
)

// Signer adds OAuth1 Authorization headers to outgoing *http.Requests. It
// collects a request's query and form parameters into a Request and hands
// the actual base-string construction and signing to Builder, so the header
// it produces is exactly what Authorizer would produce for the same
// parameters through the library's direct entry points.
type Signer struct {
	config *Config
}

func (s *Signer) builder(token *Token) *Builder {
	client := NewCredentials(s.config.ConsumerKey, s.config.ConsumerSecret)
	b := NewBuilder(s.config.signatureMethod(), client)
	if token != nil {
		b.Token(token.Credentials())
	}
	return b
}

// SetRequestTokenAuthHeader adds the OAuth1 header for the temporary
// credential request, per RFC 5849 2.1.
func (s *Signer) SetRequestTokenAuthHeader(req *http.Request) error {
	b := s.builder(nil).Callback(s.config.CallbackURL)
	return s.setHeader(req, b)
}

// SetAccessTokenAuthHeader adds the OAuth1 header for the token credential
// request, per RFC 5849 2.3.
func (s *Signer) SetAccessTokenAuthHeader(req *http.Request, requestToken, requestSecret, verifier string) error {
	b := s.builder(NewToken(requestToken, requestSecret)).Verifier(verifier)
	return s.setHeader(req, b)
}

// SetRequestAuthHeader adds the OAuth1 header for an authenticated request
// made with an access token, per RFC 5849 3.1.
func (s *Signer) SetRequestAuthHeader(req *http.Request, accessToken *Token) error {
	return s.setHeader(req, s.builder(accessToken))
}

func (s *Signer) setHeader(req *http.Request, b *Builder) error {
	params, err := collectRequestParameters(req)
	if err != nil {
		return err
	}
	header := b.Header(req.Method, baseURI(req), params)
	req.Header.Set(authorizationHeaderParam, header)
	return nil
}

// mapRequest is the Request implementation collectRequestParameters builds:
// an unordered bag of string parameters, serialized in ascending key order
// with the oauth_* parameters interleaved at their sorted position.
type mapRequest map[string]string

func (m mapRequest) Serialize(s Serializer) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	i := 0
	for ; i < len(keys) && keys[i] < "oauth_"; i++ {
		s.SerializeParameter(keys[i], m[keys[i]])
	}
	SerializeOAuthParameters(s)
	for ; i < len(keys); i++ {
		s.SerializeParameter(keys[i], m[keys[i]])
	}
}

// collectRequestParameters collects a request's query parameters and, if its
// body is a single-part x-www-form-urlencoded form, its form parameters, per
// RFC 5849 3.4.1.3. Duplicate parameter names are not supported: the value
// returned by net/url for a given name wins. The request body, if consumed,
// is replaced with an equivalent io.ReadCloser so the caller can still send
// it.
func collectRequestParameters(req *http.Request) (mapRequest, error) {
	params := mapRequest{}
	for key, values := range req.URL.Query() {
		params[key] = values[0]
	}
	if req.Body != nil && req.Header.Get(contentTypeHeaderParam) == formContentType {
		b, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		values, err := url.ParseQuery(string(b))
		if err != nil {
			return nil, err
		}
		for key, v := range values {
			params[key] = v[0]
		}
		req.Body = io.NopCloser(bytes.NewReader(b))
	}
	return params, nil
}

// baseURI returns the base string URI of a request per RFC 5849 3.4.1.2:
// lowercased scheme and host, the default port for the scheme dropped, and
// the path without its query component.
func baseURI(req *http.Request) string {
	scheme := strings.ToLower(req.URL.Scheme)
	host := strings.ToLower(req.URL.Host)
	if hostPort := strings.SplitN(host, ":", 2); len(hostPort) == 2 &&
		((scheme == "http" && hostPort[1] == "80") || (scheme == "https" && hostPort[1] == "443")) {
		host = hostPort[0]
	}
	return scheme + "://" + host + req.URL.EscapedPath()
}
