package ryu

import "regexp"

// ExtractAll builds a child that, for every string parent emits, emits one
// map[string]string per non-overlapping match of re, keyed by re's named
// capture groups (spec §6 "extract_all"). A match with no named groups
// contributes a single "0" key holding the whole match, mirroring how an
// unnamed capture would be addressed.
func ExtractAll(parent *Source[string], re *regexp.Regexp) *Source[map[string]string] {
	child := chain[string, map[string]string](parent, "extract_all")
	names := re.SubexpNames()

	eachWhileSource(parent, child, func(s string) {
		for _, groups := range re.FindAllStringSubmatch(s, -1) {
			m := make(map[string]string)
			named := false
			for i, g := range groups {
				if i == 0 {
					continue
				}
				if names[i] != "" {
					m[names[i]] = g
					named = true
				}
			}
			if !named {
				m["0"] = groups[0]
			}
			if err := child.Emit(m); err != nil {
				return
			}
		}
	})
	forwardCompletion(parent, child)
	return child
}
