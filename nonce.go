package oauth1

import (
	"crypto/rand"
	"encoding/base64"
)

// nonceLength is the byte length of the random value underlying a generated
// nonce, chosen so the base64url encoding below comes out to 32 characters.
const nonceLength = 24

// generateNonce returns a fresh cryptographically random, URL-safe,
// 32-character nonce. It is the production default for oauth_nonce when
// Options.nonce is unset.
func generateNonce() string {
	b := make([]byte, nonceLength)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand.Read only fails if the OS entropy source is
		// unavailable, a host invariant this library does not attempt to
		// recover from.
		panic("oauth1: failed to read random nonce: " + err.Error())
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
