package ryu

import "strings"

// ByLine builds a child that reassembles upstream string chunks into
// complete lines, emitting each line without its trailing newline (spec §6
// "by_line"). Any partial trailing line still buffered when parent completes
// is residue (GLOSSARY "Residue") and is discarded, not emitted. Intended to
// sit downstream of Decode(parent, "utf8") on a FromReader chain.
func ByLine(parent *Source[string]) *Source[string] {
	child := chain[string, string](parent, "by_line")
	var pending strings.Builder

	eachWhileSource(parent, child, func(chunk string) {
		pending.WriteString(chunk)
		buf := pending.String()
		pending.Reset()

		for {
			i := strings.IndexByte(buf, '\n')
			if i < 0 {
				pending.WriteString(buf)
				return
			}
			line := buf[:i]
			line = strings.TrimSuffix(line, "\r")
			if err := child.Emit(line); err != nil {
				return
			}
			buf = buf[i+1:]
		}
	})

	forwardCompletion(parent, child)
	return child
}
