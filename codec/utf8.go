package codec

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// encodeUTF8 is stateless: it just views the string as bytes.
func encodeUTF8() Codec {
	return func(item any) (any, error) {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("codec: encode utf8 expects string, got %T", item)
		}
		return []byte(s), nil
	}
}

// decodeUTF8 is the stateful streaming decoder spec §6 calls out by name: it
// buffers a trailing incomplete multi-byte sequence (the "residue") until a
// later chunk completes it, rather than ever emitting utf8.RuneError for a
// rune that merely straddles a chunk boundary.
func decodeUTF8() Codec {
	var residue []byte
	return func(item any) (any, error) {
		chunk, ok := item.([]byte)
		if !ok {
			return nil, fmt.Errorf("codec: decode utf8 expects []byte, got %T", item)
		}

		buf := residue
		if buf == nil {
			buf = chunk
		} else {
			buf = append(append([]byte(nil), buf...), chunk...)
		}

		var out strings.Builder
		i := 0
		for i < len(buf) {
			r, size := utf8.DecodeRune(buf[i:])
			if r == utf8.RuneError && size <= 1 && len(buf)-i < utf8.UTFMax {
				// possibly a valid rune truncated at the chunk boundary; wait for more.
				break
			}
			out.WriteRune(r)
			i += size
		}
		residue = append([]byte(nil), buf[i:]...)
		return out.String(), nil
	}
}
