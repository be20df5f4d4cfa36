package oauth1

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialsRedactsSecretInString(t *testing.T) {
	assert := assert.New(t)
	c := NewCredentials("identifier", "super-secret")
	assert.NotContains(c.String(), "super-secret")
	assert.Contains(c.String(), "identifier")
}

func TestCredentialsRedactsSecretInGoString(t *testing.T) {
	assert := assert.New(t)
	c := NewCredentials("identifier", "super-secret")
	rendered := fmt.Sprintf("%#v", c)
	assert.NotContains(rendered, "super-secret")
}

func TestCredentialsRedactsSecretInPrintf(t *testing.T) {
	assert := assert.New(t)
	c := NewCredentials("identifier", "super-secret")
	rendered := fmt.Sprintf("%v", c)
	assert.NotContains(rendered, "super-secret")
}
