package codec

import (
	"encoding/json"
	"fmt"
)

func encodeJSON() Codec {
	return func(item any) (any, error) {
		b, err := json.Marshal(item)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
}

func decodeJSON() Codec {
	return func(item any) (any, error) {
		var b []byte
		switch v := item.(type) {
		case []byte:
			b = v
		case string:
			b = []byte(v)
		default:
			return nil, errUnsupportedJSONInput(item)
		}
		var out any
		if err := json.Unmarshal(b, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
}

func errUnsupportedJSONInput(item any) error {
	return &unsupportedInputError{codec: "json", item: item}
}

type unsupportedInputError struct {
	codec string
	item  any
}

func (e *unsupportedInputError) Error() string {
	return fmt.Sprintf("codec: decode %s expects []byte or string, got %T", e.codec, e.item)
}
