// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// redirectMarker is the query parameter DuckDuckGo uses to carry the real
// target of a redirect link.
const redirectMarker = "uddg="

// StripHTML removes markup from text: every <...> span becomes a space, any
// stray angle bracket is dropped, whitespace runs collapse to a single space
// and the ends are trimmed. StripHTML(StripHTML(s)) == StripHTML(s).
func StripHTML(text string) string {
	text = htmlTagPattern.ReplaceAllLiteralString(text, " ")
	text = strings.Map(func(r rune) rune {
		if r == '<' || r == '>' {
			return ' '
		}
		return r
	}, text)
	return strings.Join(strings.Fields(text), " ")
}

// DecodeRedirectURL unwraps a DuckDuckGo redirect link. Everything after the
// first "uddg=" is percent-decoded and returned as the target. Links without
// the marker come back unchanged, and so does the whole input when the tail
// is not valid percent-encoded UTF-8.
func DecodeRedirectURL(raw string) string {
	idx := strings.Index(raw, redirectMarker)
	if idx < 0 {
		return raw
	}
	target, err := url.PathUnescape(raw[idx+len(redirectMarker):])
	if err != nil || !utf8.ValidString(target) {
		return raw
	}
	return target
}

// encodeURIComponent percent-encodes s the way browsers do for a single URI
// component: only ASCII letters, digits and -_.!~*'() are left as is.
func encodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreservedComponent(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isUnreservedComponent(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
