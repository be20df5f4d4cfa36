package oauth1

import "net/http"

// Transport is an http.RoundTripper that signs each outgoing request with
// OAuth1 credentials drawn from a TokenSource before delegating to Base.
type Transport struct {
	// Base is the underlying RoundTripper used to make requests. It
	// defaults to http.DefaultTransport if nil.
	Base http.RoundTripper

	source TokenSource
	signer *Signer
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.source.Token()
	if err != nil {
		return nil, err
	}
	req = cloneRequest(req)
	if err := t.signer.SetRequestAuthHeader(req, token); err != nil {
		return nil, err
	}
	return t.base().RoundTrip(req)
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

// cloneRequest returns a shallow copy of req with a deep-copied Header, so
// that setting the Authorization header never mutates a request the caller
// still holds a reference to.
func cloneRequest(req *http.Request) *http.Request {
	r := new(http.Request)
	*r = *req
	r.Header = make(http.Header, len(req.Header))
	for k, v := range req.Header {
		r.Header[k] = append([]string(nil), v...)
	}
	return r
}
