package oauth1

import (
	"fmt"
	"strconv"
	"strings"
)

// isUnreserved reports whether b is in the RFC 3986 "unreserved" set:
// A-Z a-z 0-9 - . _ ~. Every other byte must be percent-encoded.
func isUnreserved(b byte) bool {
	switch {
	case 'A' <= b && b <= 'Z':
		return true
	case 'a' <= b && b <= 'z':
		return true
	case '0' <= b && b <= '9':
		return true
	}
	switch b {
	case '-', '.', '_', '~':
		return true
	}
	return false
}

const upperHex = "0123456789ABCDEF"

// writeEncoded percent-encodes the bytes of fmt.Sprint(v) into w according
// to RFC 3986 2.1 (uppercase hex, unreserved bytes pass through unchanged).
// Multibyte UTF-8 sequences are encoded byte by byte, which is correct
// because every continuation/lead byte of a multibyte rune falls outside
// the unreserved set.
func writeEncoded(w *strings.Builder, v any) {
	s := toDisplayString(v)
	for i := 0; i < len(s); i++ {
		b := s[i]
		if isUnreserved(b) {
			w.WriteByte(b)
		} else {
			w.WriteByte('%')
			w.WriteByte(upperHex[b>>4])
			w.WriteByte(upperHex[b&0x0f])
		}
	}
}

// encodeString is a convenience wrapper around writeEncoded for callers that
// want the encoded form as a standalone string rather than writing it into
// an existing builder.
func encodeString(v any) string {
	var b strings.Builder
	writeEncoded(&b, v)
	return b.String()
}

// toDisplayString renders v as RFC 5849 expects a parameter value to be
// displayed: plain strings pass through unchanged (so encoding is applied to
// exactly their bytes, never to a quoted/escaped Go representation),
// everything else goes through fmt.Sprint.
func toDisplayString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}

// formatUint renders a Unix timestamp as a decimal string for oauth_timestamp.
func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// writeSigningKey writes percent(clientSecret) + "&" + percent(tokenSecret)
// to w. tokenSecret is the empty string when no token credentials are in
// play; the "&" separator is always written, matching RFC 5849 3.4.2's key
// construction even when there is no token secret to append.
func writeSigningKey(w *strings.Builder, clientSecret, tokenSecret string) {
	writeEncoded(w, clientSecret)
	w.WriteByte('&')
	writeEncoded(w, tokenSecret)
}
