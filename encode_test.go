package oauth1

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeStringUnreservedPassesThrough(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("abcXYZ019-._~", encodeString("abcXYZ019-._~"))
}

func TestEncodeStringReservedBytes(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("Hello%20Ladies%20%2B%20Gentlemen%2C%20a%20signed%20OAuth%20request%21",
		encodeString("Hello Ladies + Gentlemen, a signed OAuth request!"))
}

func TestEncodeStringNonASCIIByteByByte(t *testing.T) {
	assert := assert.New(t)
	// "ふー" encodes to its UTF-8 bytes, each escaped individually.
	assert.Equal("%E3%81%B5%E3%83%BC", encodeString("ふー"))
}

func TestEncodeStringUppercaseHex(t *testing.T) {
	assert := assert.New(t)
	got := encodeString("\x00\xff")
	assert.Equal("%00%FF", got)
	assert.Equal(strings.ToUpper(got), got)
}

func TestWriteSigningKeyAlwaysWritesAmpersand(t *testing.T) {
	assert := assert.New(t)

	var withToken strings.Builder
	writeSigningKey(&withToken, "cs", "ts")
	assert.Equal("cs&ts", withToken.String())

	var withoutToken strings.Builder
	writeSigningKey(&withoutToken, "cs", "")
	assert.Equal("cs&", withoutToken.String())
}

func TestWriteSigningKeyEncodesBothHalves(t *testing.T) {
	assert := assert.New(t)
	var b strings.Builder
	writeSigningKey(&b, "a b", "c&d")
	assert.Equal("a%20b&c%26d", b.String())
}
