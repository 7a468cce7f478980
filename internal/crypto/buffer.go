package crypto

import (
	"encoding/json"
	"reflect"
)

var byteSliceType = reflect.TypeOf([]byte(nil))

// AsBuffer reports whether v is held in a binary representation and returns
// its bytes. Strings, textual JSON and structured values are never converted,
// even when their content would make a valid payload.
func AsBuffer(v any) ([]byte, bool) {
	switch b := v.(type) {
	case nil:
		return nil, false
	case []byte:
		return b, true
	case json.RawMessage:
		return nil, false
	case Seed:
		return b[:], true
	case PublicKey:
		return b[:], true
	case PrivateKey:
		return b[:], true
	case Signature:
		return b[:], true
	case *Seed:
		if b == nil {
			return nil, false
		}
		return b[:], true
	case *PublicKey:
		if b == nil {
			return nil, false
		}
		return b[:], true
	case *PrivateKey:
		if b == nil {
			return nil, false
		}
		return b[:], true
	case *Signature:
		if b == nil {
			return nil, false
		}
		return b[:], true
	}

	// named byte slices such as pkg/types.Buffer
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice && rv.Type().ConvertibleTo(byteSliceType) {
		return rv.Convert(byteSliceType).Bytes(), true
	}
	return nil, false
}
