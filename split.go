package ryu

import "strings"

// Split builds a child that, for every string parent emits, emits each
// substring produced by splitting on sep, in order (spec §6 "split").
func Split(parent *Source[string], sep string) *Source[string] {
	child := chain[string, string](parent, "split")
	eachWhileSource(parent, child, func(s string) {
		for _, part := range strings.Split(s, sep) {
			if err := child.Emit(part); err != nil {
				return
			}
		}
	})
	forwardCompletion(parent, child)
	return child
}
