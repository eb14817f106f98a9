package rendering

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// DecodeJSON parses a JSON document into a Value, keeping object keys in document order.
// Numbers are kept as json.Number so they re-encode exactly as written.
func DecodeJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec, 0)
	if err != nil {
		return Value{}, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, &DecodeError{Message: "unexpected data after top-level value", Cause: err}
	}

	return v, nil
}

func decodeValue(dec *json.Decoder, depth int) (Value, error) {
	if depth > MaxDepth {
		return Value{}, &NestingError{Limit: MaxDepth}
	}

	tok, err := dec.Token()
	if err != nil {
		return Value{}, &DecodeError{Message: "failed to read token", Cause: err}
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			fields := []Field{}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, &DecodeError{Message: "failed to read object key", Cause: err}
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, &DecodeError{Message: fmt.Sprintf("unexpected object key %v", keyTok)}
				}
				child, err := decodeValue(dec, depth+1)
				if err != nil {
					return Value{}, err
				}
				fields = append(fields, Field{Key: key, Value: child})
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, &DecodeError{Message: "unterminated object", Cause: err}
			}
			return Map(fields...), nil
		case '[':
			items := []Value{}
			for dec.More() {
				child, err := decodeValue(dec, depth+1)
				if err != nil {
					return Value{}, err
				}
				items = append(items, child)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, &DecodeError{Message: "unterminated array", Cause: err}
			}
			return List(items...), nil
		default:
			return Value{}, &DecodeError{Message: fmt.Sprintf("unexpected delimiter %q", rune(t))}
		}
	case string:
		return String(t), nil
	default:
		return Scalar(t), nil
	}
}

// UnmarshalJSON implements json.Unmarshaler with the same ordering rules as DecodeJSON.
func (v *Value) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeJSON(data)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

// MarshalJSON implements json.Marshaler. Map fields are written in order and
// HTML characters are not escaped, so LaTeX output stays readable.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case KindMap:
		buf.WriteByte('{')
		for i, field := range v.fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeLeaf(buf, field.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := field.Value.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case KindList:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case KindString:
		return encodeLeaf(buf, v.str)
	default:
		return encodeLeaf(buf, v.scalar)
	}
}

func encodeLeaf(buf *bytes.Buffer, leaf any) error {
	var out bytes.Buffer
	enc := json.NewEncoder(&out)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(leaf); err != nil {
		return fmt.Errorf("failed to encode %T: %w", leaf, err)
	}
	buf.Write(bytes.TrimSuffix(out.Bytes(), []byte("\n")))
	return nil
}
