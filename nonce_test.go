package oauth1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateNonceLengthAndCharset(t *testing.T) {
	assert := assert.New(t)
	n := generateNonce()
	assert.Len(n, 32)
	for _, r := range n {
		assert.True((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_')
	}
}

func TestGenerateNonceIsRandom(t *testing.T) {
	assert := assert.New(t)
	assert.NotEqual(generateNonce(), generateNonce())
}
