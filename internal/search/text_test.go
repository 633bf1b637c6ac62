// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- StripHTML ---

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain text", "hello world", "hello world"},
		{"tags become spaces", "<b>Hello</b>  world", "Hello world"},
		{"self-closing tag separates words", "a<br/>b", "a b"},
		{"whitespace collapses and trims", "  x \n\t y  ", "x y"},
		{"attributes", `<span class="searchmatch">Москва</span> — столица`, "Москва — столица"},
		{"bracketed text looks like a tag", "1 < 2 > 0", "1 0"},
		{"stray open bracket", "a < b", "a b"},
		{"stray close bracket", "a > b", "a b"},
		{"nested brackets", "<<b>>", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripHTML(tt.in))
		})
	}
}

func TestStripHTMLProperties(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"<p>para</p><p>graph</p>",
		"unclosed <tag and more",
		"a  >  b  <  c",
		"<<<>>>",
		"tab\tnew\nline\r\nend",
		"<a href='x'>link</a> nbsp",
		"<",
		">",
	}
	for _, in := range inputs {
		out := StripHTML(in)
		assert.NotContains(t, out, "<", "input %q", in)
		assert.NotContains(t, out, ">", "input %q", in)
		assert.NotContains(t, out, "  ", "input %q", in)
		assert.Equal(t, strings.TrimSpace(out), out, "input %q", in)
		assert.Equal(t, out, StripHTML(out), "not idempotent for %q", in)
	}
}

// --- DecodeRedirectURL ---

func TestDecodeRedirectURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"redirect target", "https://x/?uddg=https%3A%2F%2Fexample.com", "https://example.com"},
		{"no marker", "https://plain.example", "https://plain.example"},
		{"empty", "", ""},
		{"tail after target is kept", "//duckduckgo.com/l/?uddg=https%3A%2F%2Fa.com%2Fp%3Fx%3D1&rut=abc", "https://a.com/p?x=1&rut=abc"},
		{"plus is not a space", "https://x/?uddg=a+b", "a+b"},
		{"truncated escape falls back", "https://x/?uddg=%E0%A4%A", "https://x/?uddg=%E0%A4%A"},
		{"bad hex falls back", "https://x/?uddg=%zz", "https://x/?uddg=%zz"},
		{"invalid utf-8 falls back", "https://x/?uddg=%FF", "https://x/?uddg=%FF"},
		{"cyrillic target", "https://x/?uddg=https%3A%2F%2Fru.wikipedia.org%2Fwiki%2F%D0%9C", "https://ru.wikipedia.org/wiki/М"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeRedirectURL(tt.in))
		})
	}
}

// --- encodeURIComponent / articlePath ---

func TestEncodeURIComponent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Go", "Go"},
		{"it's(ok)!~*-_.", "it's(ok)!~*-_."},
		{"C++ & C#", "C%2B%2B%20%26%20C%23"},
		{"a/b?c=d", "a%2Fb%3Fc%3Dd"},
		{"Москва", "%D0%9C%D0%BE%D1%81%D0%BA%D0%B2%D0%B0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, encodeURIComponent(tt.in))
		})
	}
}

func TestArticlePath(t *testing.T) {
	assert.Equal(t, "New_York_City", articlePath("New York City"))
	assert.Equal(t, "New_York", articlePath("New \t York"))
	assert.Equal(t, "C%2B%2B_%26_C%23", articlePath("C++ & C#"))
}
