package oauth1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilderPerMethodHelpersSetRequestMethod(t *testing.T) {
	assert := assert.New(t)
	client := NewCredentials(twitterCK, twitterCS)

	methods := map[string]func(*Builder, string, Request) string{
		"GET":    (*Builder).Get,
		"POST":   (*Builder).Post,
		"PUT":    (*Builder).Put,
		"DELETE": (*Builder).Delete,
		"PATCH":  (*Builder).Patch,
		"TRACE":  (*Builder).Trace,
	}

	req := RequestFunc(func(s Serializer) { SerializeOAuthParameters(s) })
	for method, call := range methods {
		var seen string
		sm := signatureMethodFunc(func(clientSecret string, tokenSecret *string) Sign {
			return &recordingSign{spy: &seen}
		})
		b := NewBuilder(sm, client).Nonce(twitterNonce).Timestamp(twitterTS)
		call(b, "https://example.com", req)
		assert.Equal(method, seen, "helper for %s fed the wrong HTTP method", method)
	}
}

func TestBuilderConsumeHeaderMatchesHeader(t *testing.T) {
	assert := assert.New(t)
	client := NewCredentials(twitterCK, twitterCS)
	req := RequestFunc(func(s Serializer) { SerializeOAuthParameters(s) })

	b1 := *NewBuilder(HMACSHA1{}, client).Nonce(twitterNonce).Timestamp(twitterTS)
	b2 := *NewBuilder(HMACSHA1{}, client).Nonce(twitterNonce).Timestamp(twitterTS)

	assert.Equal(b2.Header("GET", "https://example.com", req), b1.ConsumeHeader("GET", "https://example.com", req))
}

func TestFreeFunctionsMatchBuilder(t *testing.T) {
	assert := assert.New(t)
	client := NewCredentials(twitterCK, twitterCS)
	token := NewCredentials(twitterAK, twitterAS)
	options := (&Options{}).Nonce(twitterNonce).Timestamp(twitterTS)
	req := RequestFunc(func(s Serializer) { SerializeOAuthParameters(s) })

	viaBuilder := NewBuilder(HMACSHA1{}, client).Token(token).Nonce(twitterNonce).Timestamp(twitterTS).Get("https://example.com", req)
	viaFreeFunc := Get(HMACSHA1{}, client, &token, options, "https://example.com", req)
	assert.Equal(viaBuilder, viaFreeFunc)
}

// recordingSign is a minimal Sign used to observe which HTTP method a
// Builder helper feeds it, without computing a real signature.
type recordingSign struct {
	defaultPolicy
	spy *string
}

func (s *recordingSign) MethodName() string     { return "TEST" }
func (s *recordingSign) RequestMethod(m string) { *s.spy = m }
func (s *recordingSign) URI(string)             {}
func (s *recordingSign) Delimiter()             {}
func (s *recordingSign) Parameter(string, any)  {}
func (s *recordingSign) End() Signature         { return stringSignature("") }

type signatureMethodFunc func(clientSecret string, tokenSecret *string) Sign

func (f signatureMethodFunc) SignWith(clientSecret string, tokenSecret *string) Sign {
	return f(clientSecret, tokenSecret)
}
