package oauth1

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"encoding/base64"
	"hash"

	"github.com/pkg/errors"
)

// RSASHA1 is the "RSA-SHA1" signature method (RFC 5849 3.4.3). Unlike
// HMAC-SHA1/256 and PLAINTEXT, it signs with an asymmetric private key
// rather than a key derived from the client/token secrets, so its SignWith
// ignores the client/token secret arguments (they remain part of the
// SignatureMethod interface only for symmetry with the other built-ins).
//
// RSASHA1 holds a private key and is therefore the built-in motivating
// Builder.ConsumeHeader: an RSA private key is usually not something callers
// want copied around, so a Builder configured with RSASHA1 should typically
// be consumed rather than kept and reused.
type RSASHA1 struct {
	// PrivateKey signs the SHA-1 digest of the signature base string.
	PrivateKey *rsa.PrivateKey
}

// SignWith implements SignatureMethod.
func (r RSASHA1) SignWith(string, *string) Sign {
	return &rsaSign{key: r.PrivateKey, hash: sha1.New()}
}

type rsaSign struct {
	defaultPolicy
	key        *rsa.PrivateKey
	hash       hash.Hash
	wroteParam bool
}

func (s *rsaSign) MethodName() string { return "RSA-SHA1" }

func (s *rsaSign) RequestMethod(method string) {
	s.hash.Write([]byte(method))
}

func (s *rsaSign) URI(uri string) {
	s.hash.Write([]byte("&"))
	s.hash.Write([]byte(encodeString(uri)))
	s.hash.Write([]byte("&"))
}

func (s *rsaSign) Delimiter() {
	if s.wroteParam {
		s.hash.Write([]byte("%26"))
	}
	s.wroteParam = true
}

func (s *rsaSign) Parameter(key string, value any) {
	s.hash.Write([]byte(toDisplayString(key)))
	s.hash.Write([]byte("%3D"))
	s.hash.Write([]byte(toDisplayString(value)))
}

func (s *rsaSign) End() Signature {
	digest := s.hash.Sum(nil)
	sig, err := rsa.SignPKCS1v15(rand.Reader, s.key, crypto.SHA1, digest)
	if err != nil {
		// A signing failure here means the key itself is malformed (e.g.
		// too small for PKCS#1 v1.5 padding of a SHA-1 digest), which is a
		// configuration error the caller must fix, not a condition this
		// total-on-well-formed-input library can recover from.
		panic(errors.Wrap(err, "oauth1: RSA-SHA1 signing failed"))
	}
	return stringSignature(base64.StdEncoding.EncodeToString(sig))
}
