package ryu

import "strings"

// Prefix builds a child that prepends p to every string parent emits.
func Prefix(parent *Source[string], p string) *Source[string] {
	return Map(parent, func(s string) string { return p + s })
}

// Suffix builds a child that appends sfx to every string parent emits.
func Suffix(parent *Source[string], sfx string) *Source[string] {
	return Map(parent, func(s string) string { return s + sfx })
}

// Chomp builds a child that strips one trailing "\n" or "\r\n" from every
// string parent emits, leaving strings without a trailing newline untouched
// (spec §6 "chomp").
func Chomp(parent *Source[string]) *Source[string] {
	return Map(parent, func(s string) string {
		if t, ok := strings.CutSuffix(s, "\n"); ok {
			return strings.TrimSuffix(t, "\r")
		}
		return s
	})
}
