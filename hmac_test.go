package oauth1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHMACSHA1MethodName(t *testing.T) {
	assert := assert.New(t)
	sign := HMACSHA1{}.SignWith("cs", nil)
	assert.Equal("HMAC-SHA1", sign.MethodName())
}

func TestHMACSHA256MethodName(t *testing.T) {
	assert := assert.New(t)
	sign := HMACSHA256{}.SignWith("cs", nil)
	assert.Equal("HMAC-SHA256", sign.MethodName())
}

func TestHMACDefaultPolicy(t *testing.T) {
	assert := assert.New(t)
	sign := HMACSHA1{}.SignWith("cs", nil)
	assert.True(sign.UseNonce())
	assert.True(sign.UseTimestamp())
}

func TestHMACSignatureDependsOnURI(t *testing.T) {
	assert := assert.New(t)

	sign := func(uri string) string {
		s := HMACSHA1{}.SignWith("cs", nil)
		s.RequestMethod("GET")
		s.URI(uri)
		s.Delimiter()
		s.Parameter("a", "1")
		return s.End().String()
	}

	assert.NotEqual(sign("https://example.com/a"), sign("https://example.com/b"))
}

func TestHMACSameInputsProduceSameSignature(t *testing.T) {
	assert := assert.New(t)

	run := func() string {
		s := HMACSHA1{}.SignWith("cs", nil)
		s.RequestMethod("GET")
		s.URI("https://example.com")
		s.Delimiter()
		s.Parameter("a", "1")
		return s.End().String()
	}

	assert.Equal(run(), run())
}
