package codec

import (
	"encoding/base64"
	"fmt"
)

func encodeBase64() Codec {
	return func(item any) (any, error) {
		b, ok := item.([]byte)
		if !ok {
			return nil, fmt.Errorf("codec: encode base64 expects []byte, got %T", item)
		}
		return base64.StdEncoding.EncodeToString(b), nil
	}
}

func decodeBase64() Codec {
	return func(item any) (any, error) {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("codec: decode base64 expects string, got %T", item)
		}
		return base64.StdEncoding.DecodeString(s)
	}
}
