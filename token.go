package oauth1

// Token is an RFC 5849 token credential pair: an access token (or, earlier
// in the authorization dance, a temporary/request token) and its secret.
type Token struct {
	Token       string
	TokenSecret string
}

// NewToken returns a Token with the given token and secret.
func NewToken(token, tokenSecret string) *Token {
	return &Token{Token: token, TokenSecret: tokenSecret}
}

// Credentials adapts a Token to the Credentials a Builder expects.
func (t *Token) Credentials() Credentials {
	return NewCredentials(t.Token, t.TokenSecret)
}

// TokenSource supplies a Token on demand, so that a Transport can re-fetch
// or rotate credentials rather than holding one fixed value forever.
type TokenSource interface {
	Token() (*Token, error)
}

type staticTokenSource struct {
	token *Token
}

func (s staticTokenSource) Token() (*Token, error) {
	return s.token, nil
}

// StaticTokenSource returns a TokenSource that always returns the same
// Token.
func StaticTokenSource(token *Token) TokenSource {
	return staticTokenSource{token: token}
}
