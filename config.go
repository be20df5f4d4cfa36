package oauth1

import (
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

const (
	oauthTokenParam             = "oauth_token"
	oauthTokenSecretParam       = "oauth_token_secret"
	oauthVerifierParam          = "oauth_verifier"
	oauthCallbackConfirmedParam = "oauth_callback_confirmed"
)

// Config represents an OAuth1 consumer's (client's) key and secret, the
// callback URL, the signing method to use, and the provider Endpoint to
// which the consumer corresponds.
type Config struct {
	// ConsumerKey is the Consumer Key (Client Identifier).
	ConsumerKey string
	// ConsumerSecret is the Consumer Secret (Client Shared-Secret).
	ConsumerSecret string
	// CallbackURL is sent as oauth_callback in the temporary credential
	// request (RFC 5849 2.1).
	CallbackURL string
	// Endpoint specifies the provider's OAuth1 endpoint URLs.
	Endpoint Endpoint
	// Method is the signature method used to sign requests. A nil Method
	// defaults to HMACSHA1, the method every OAuth1 provider is required to
	// support.
	Method SignatureMethod
}

// NewConfig returns a new Config with the given consumer key and secret,
// signing with HMACSHA1.
func NewConfig(consumerKey, consumerSecret string) *Config {
	return &Config{
		ConsumerKey:    consumerKey,
		ConsumerSecret: consumerSecret,
	}
}

func (c *Config) signatureMethod() SignatureMethod {
	if c.Method != nil {
		return c.Method
	}
	return HMACSHA1{}
}

// Client returns an HTTP client that signs every outgoing request with the
// given access Token.
func (c *Config) Client(t *Token) *http.Client {
	return NewClient(c, t)
}

// NewClient returns a new http.Client which signs requests via OAuth1.
func NewClient(config *Config, token *Token) *http.Client {
	return &http.Client{
		Transport: &Transport{
			source: StaticTokenSource(token),
			signer: &Signer{config: config},
		},
	}
}

// RequestToken obtains a request token and secret (temporary credential) by
// POSTing a request (with oauth_callback in the auth header) to the
// Endpoint's RequestTokenURL. The response body form is validated to ensure
// oauth_callback_confirmed is true.
// See RFC 5849 2.1 Temporary Credentials.
func (c *Config) RequestToken() (requestToken, requestSecret string, err error) {
	req, err := http.NewRequest("POST", c.Endpoint.RequestTokenURL, nil)
	if err != nil {
		return "", "", err
	}
	signer := &Signer{config: c}
	if err := signer.SetRequestTokenAuthHeader(req); err != nil {
		return "", "", err
	}

	values, err := doFormRequest(req)
	if err != nil {
		return "", "", err
	}
	if values.Get(oauthCallbackConfirmedParam) != "true" {
		return "", "", errors.New("oauth1: oauth_callback_confirmed was not true")
	}
	requestToken = values.Get(oauthTokenParam)
	requestSecret = values.Get(oauthTokenSecretParam)
	if requestToken == "" || requestSecret == "" {
		return "", "", errors.New("oauth1: RequestToken response missing oauth token or secret")
	}
	return requestToken, requestSecret, nil
}

// AuthorizationURL accepts a request token and returns the *url.URL to the
// Endpoint's authorization page that asks the resource owner to authorize
// the consumer to act on their behalf.
// See RFC 5849 2.2 Resource Owner Authorization.
func (c *Config) AuthorizationURL(requestToken string) (*url.URL, error) {
	authorizationURL, err := url.Parse(c.Endpoint.AuthorizeURL)
	if err != nil {
		return nil, err
	}
	values := authorizationURL.Query()
	values.Add(oauthTokenParam, requestToken)
	authorizationURL.RawQuery = values.Encode()
	return authorizationURL, nil
}

// HandleAuthorizationCallback handles an OAuth1 authorization callback GET
// http.Request from a provider server, returning the request token from
// earlier in the flow and the verifier string.
// See RFC 5849 2.2 Resource Owner Authorization.
func (c *Config) HandleAuthorizationCallback(req *http.Request) (requestToken, verifier string, err error) {
	if err := req.ParseForm(); err != nil {
		return "", "", err
	}
	requestToken = req.Form.Get(oauthTokenParam)
	verifier = req.Form.Get(oauthVerifierParam)
	if requestToken == "" || verifier == "" {
		return "", "", errors.New("oauth1: callback did not receive an oauth_token or oauth_verifier")
	}
	return requestToken, verifier, nil
}

// AccessToken obtains an access token (token credential) by POSTing a
// request (with oauth_token and oauth_verifier in the auth header) to the
// Endpoint's AccessTokenURL.
// See RFC 5849 2.3 Token Credentials.
func (c *Config) AccessToken(requestToken, requestSecret, verifier string) (accessToken, accessSecret string, err error) {
	req, err := http.NewRequest("POST", c.Endpoint.AccessTokenURL, nil)
	if err != nil {
		return "", "", err
	}
	signer := &Signer{config: c}
	if err := signer.SetAccessTokenAuthHeader(req, requestToken, requestSecret, verifier); err != nil {
		return "", "", err
	}

	values, err := doFormRequest(req)
	if err != nil {
		return "", "", err
	}
	accessToken = values.Get(oauthTokenParam)
	accessSecret = values.Get(oauthTokenSecretParam)
	if accessToken == "" || accessSecret == "" {
		return "", "", errors.New("oauth1: AccessToken response missing access token or secret")
	}
	return accessToken, accessSecret, nil
}

// doFormRequest performs req and parses its response body as an
// x-www-form-urlencoded form, the response format RFC 5849 2.1 and 2.3
// both specify for the temporary and token credential requests.
func doFormRequest(req *http.Request) (url.Values, error) {
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return url.ParseQuery(string(body))
}
