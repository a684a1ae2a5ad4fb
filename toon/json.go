package toon

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ParseJSON parses JSON bytes into the ordered Value model. It uses
// encoding/json's streaming Token() API (rather than unmarshaling into
// map[string]any, which loses key order) so that object field order is
// preserved exactly as written, matching spec §3's insertion-order
// invariant on the Object type.
func ParseJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := parseJSONValue(dec)
	if err != nil {
		return Value{}, newInputParseError("%s", err)
	}
	if dec.More() {
		return Value{}, newInputParseError("unexpected trailing data after JSON value")
	}
	return v, nil
}

func parseJSONValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return parseJSONToken(dec, tok)
}

func parseJSONToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, errInvalidObjectKey
				}
				val, err := parseJSONValue(dec)
				if err != nil {
					return Value{}, err
				}
				obj.Set(key, val)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return Value{}, err
			}
			return ObjectValue(obj), nil
		case '[':
			var items []Value
			for dec.More() {
				val, err := parseJSONValue(dec)
				if err != nil {
					return Value{}, err
				}
				items = append(items, val)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return Value{}, err
			}
			return Array(items...), nil
		default:
			return Value{}, errUnexpectedDelimiter
		}
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		s := string(t)
		if !strings.ContainsAny(s, ".eE") {
			if i, err := strconv.ParseInt(s, 10, 64); err == nil {
				return Int(i), nil
			}
		}
		f, err := t.Float64()
		if err != nil {
			return Value{}, err
		}
		return Float(f), nil
	case string:
		return String(t), nil
	default:
		return Value{}, errUnexpectedToken
	}
}

var (
	errInvalidObjectKey    = newInputParseError("expected object key")
	errUnexpectedDelimiter = newInputParseError("unexpected JSON delimiter")
	errUnexpectedToken     = newInputParseError("unexpected JSON token")
)

// ToCompactJSON renders v as compact (no whitespace) JSON text, preserving
// object field order. This is the output format for Decode (spec §6:
// "decode(toon_text) -> json_text"; pretty-printing is an explicit
// Non-goal).
func ToCompactJSON(v Value) string {
	var b strings.Builder
	writeJSON(&b, v)
	return b.String()
}

func writeJSON(b *strings.Builder, v Value) {
	switch v.Kind() {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		if v.Bool() {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindInt:
		b.WriteString(strconv.FormatInt(v.Int(), 10))
	case KindFloat:
		data, _ := json.Marshal(v.Float())
		b.Write(data)
	case KindString:
		data, _ := json.Marshal(v.Str())
		b.Write(data)
	case KindArray:
		b.WriteByte('[')
		for i, e := range v.Array() {
			if i > 0 {
				b.WriteByte(',')
			}
			writeJSON(b, e)
		}
		b.WriteByte(']')
	case KindObject:
		b.WriteByte('{')
		o := v.Obj()
		for i := 0; i < o.Len(); i++ {
			if i > 0 {
				b.WriteByte(',')
			}
			k, val := o.ValueAt(i)
			keyData, _ := json.Marshal(k)
			b.Write(keyData)
			b.WriteByte(':')
			writeJSON(b, val)
		}
		b.WriteByte('}')
	}
}
