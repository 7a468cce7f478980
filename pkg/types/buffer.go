package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// BufferType is the discriminator of the binary JSON form.
const BufferType = "Buffer"

var ErrNotBuffer = errors.New(`value is not a {"type":"Buffer","data":[...]} object`)

// Buffer is binary data. In JSON it is the object
// {"type":"Buffer","data":[0-255,...]} and never a string, so text can not be
// mistaken for bytes on the wire.
type Buffer []byte

func (b Buffer) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"type":"Buffer","data":[`)
	for i, c := range b {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Itoa(int(c)))
	}
	buf.WriteString("]}")
	return buf.Bytes(), nil
}

func (b *Buffer) UnmarshalJSON(data []byte) error {
	out, ok, err := decodeBuffer(data)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotBuffer
	}
	*b = out
	return nil
}

// DecodeValue returns a Buffer when raw holds the binary form, and the plain
// decoded JSON value (string, map, number...) otherwise. Missing values decode
// to nil. Callers hand the result to the signing service, which decides
// whether the representation is acceptable.
func DecodeValue(raw json.RawMessage) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	buf, ok, err := decodeBuffer(raw)
	if err != nil {
		return nil, err
	}
	if ok {
		return buf, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

type bufferObject struct {
	Type json.RawMessage `json:"type"`
	Data json.RawMessage `json:"data"`
}

// decodeBuffer reports ok=false without error when data is valid JSON that is
// simply not in the binary form.
func decodeBuffer(data []byte) (Buffer, bool, error) {
	trim := bytes.TrimSpace(data)
	if len(trim) == 0 || trim[0] != '{' {
		return nil, false, nil
	}

	var obj bufferObject
	if err := json.Unmarshal(trim, &obj); err != nil {
		return nil, false, err
	}
	var typ string
	if err := json.Unmarshal(obj.Type, &typ); err != nil || typ != BufferType {
		return nil, false, nil
	}

	rawData := bytes.TrimSpace(obj.Data)
	if len(rawData) == 0 || rawData[0] != '[' {
		return nil, false, fmt.Errorf("buffer data must be an array of bytes")
	}

	var values []int
	if err := json.Unmarshal(rawData, &values); err != nil {
		return nil, false, fmt.Errorf("buffer data must be an array of bytes: %w", err)
	}

	out := make(Buffer, len(values))
	for i, v := range values {
		if v < 0 || v > 255 {
			return nil, false, fmt.Errorf("buffer data[%d]=%d is out of byte range", i, v)
		}
		out[i] = byte(v)
	}
	return out, true, nil
}
