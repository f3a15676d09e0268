// Package codec decodes the ad-hoc key/value payloads accepted by the API.
package codec

import (
	"strings"
)

const (
	pairSeparator  = "&"
	valueSeparator = "="
)

// ParseForm decodes an URL-encoded body into a key/value map.
// A pair must contain exactly one '='; anything else is skipped. Later duplicates win.
func ParseForm(body string) map[string]string {
	data := make(map[string]string)
	if body == "" {
		return data
	}
	for _, pair := range strings.Split(body, pairSeparator) {
		kv := strings.Split(pair, valueSeparator)
		if len(kv) != 2 {
			continue
		}
		data[unescape(kv[0])] = unescape(kv[1])
	}
	return data
}

// ParseQuery decodes a raw query string. One leading '?' is ignored.
func ParseQuery(query string) map[string]string {
	return ParseForm(strings.TrimPrefix(query, "?"))
}

// unescape percent-decodes s without treating '+' as a space.
// Each valid %XX becomes its byte; a malformed escape is copied as written.
// Byte sequences that are not UTF-8 become U+FFFD, so the value survives a JSON round trip.
func unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return strings.ToValidUTF8(b.String(), "\uFFFD")
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
