package toon

import (
	"strconv"
	"strings"
)

// Encode parses jsonText and renders it as TOON text (spec §6 "encode").
func Encode(jsonText string) (string, error) {
	v, err := ParseJSON([]byte(jsonText))
	if err != nil {
		return "", err
	}
	return EncodeValue(v), nil
}

// EncodeValue renders v directly, bypassing JSON parsing. Exported so
// callers that already hold a Value (e.g. the filter pre-pass) can skip
// the round-trip through JSON text.
func EncodeValue(v Value) string {
	switch v.Kind() {
	case KindObject:
		return strings.Join(emitObjectFields(v.Obj(), ""), "\n")
	case KindArray:
		arr := v.Array()
		if len(arr) == 0 {
			// Root-level empty array: spec §9's documented quirk. The
			// root-array path selects inline representation for
			// all-primitive input, and an empty array is vacuously
			// all-primitive, so the "[N]: " prefix is emitted before the
			// (empty) inline body — leaving a trailing space.
			return "[0]: "
		}
		return strings.Join(emitArrayField("", arr, ""), "\n")
	default:
		return emitPrimitive(v, Document)
	}
}

func emitObjectFields(o *Object, indent string) []string {
	var lines []string
	for i := 0; i < o.Len(); i++ {
		key, val := o.ValueAt(i)
		lines = append(lines, emitField(key, val, indent)...)
	}
	return lines
}

func emitField(key string, v Value, indent string) []string {
	keyText := renderKey(key)
	switch v.Kind() {
	case KindObject:
		o := v.Obj()
		if o.Len() == 0 {
			return []string{indent + keyText + ":"}
		}
		lines := []string{indent + keyText + ":"}
		lines = append(lines, emitObjectFields(o, indent+"  ")...)
		return lines
	case KindArray:
		return emitArrayField(keyText, v.Array(), indent)
	default:
		return []string{indent + keyText + ": " + emitPrimitive(v, Document)}
	}
}

// emitArrayField renders the array header plus body at the given indent.
// keyPrefix is "" for a root-level or list-item array (no preceding key).
func emitArrayField(keyPrefix string, arr []Value, indent string) []string {
	n := len(arr)
	header := indent + keyPrefix + "[" + strconv.Itoa(n) + "]"
	if n == 0 {
		return []string{header + ":"}
	}

	if fields, ok := tabularFields(arr); ok {
		lines := []string{header + "{" + strings.Join(fields, ",") + "}:"}
		rowIndent := indent + "  "
		for _, elem := range arr {
			o := elem.Obj()
			cells := make([]string, len(fields))
			for i, f := range fields {
				val, _ := o.Get(f)
				cells[i] = emitPrimitive(val, TabularCell)
			}
			lines = append(lines, rowIndent+strings.Join(cells, ","))
		}
		return lines
	}

	if allPrimitive(arr) {
		cells := make([]string, n)
		for i, v := range arr {
			cells[i] = emitPrimitive(v, InlineArray)
		}
		return []string{header + ": " + strings.Join(cells, ",")}
	}

	lines := []string{header + ":"}
	itemIndent := indent + "  "
	for _, elem := range arr {
		lines = append(lines, emitListItem(elem, itemIndent)...)
	}
	return lines
}

// emitListItem renders one "- " item of an expanded list. indent is the
// item's own (pre-dash) indentation.
func emitListItem(v Value, indent string) []string {
	switch v.Kind() {
	case KindArray:
		lines := emitArrayField("", v.Array(), indent)
		first := indent + "- " + strings.TrimPrefix(lines[0], indent)
		return append([]string{first}, lines[1:]...)

	case KindObject:
		o := v.Obj()
		if o.Len() == 0 {
			// Empty object inside an expanded list is unspecified by the
			// source encoder (spec §9): the natural "- :" form doesn't
			// round-trip. We emit a bare "-" and teach the decoder to
			// read it back as {}.
			return []string{indent + "-"}
		}
		firstKey, firstVal := o.ValueAt(0)
		// The first field is laid out at the field column (indent+2) so its
		// nested body sits deeper than the sibling fields; "- " then takes
		// the place of the two column spaces on its first line.
		firstLines := emitField(firstKey, firstVal, indent+"  ")
		first := indent + "- " + strings.TrimPrefix(firstLines[0], indent+"  ")
		result := append([]string{first}, firstLines[1:]...)
		for i := 1; i < o.Len(); i++ {
			k, val := o.ValueAt(i)
			result = append(result, emitField(k, val, indent+"  ")...)
		}
		return result

	default:
		return []string{indent + "- " + emitPrimitive(v, Document)}
	}
}

func emitPrimitive(v Value, ctx QuoteContext) string {
	switch v.Kind() {
	case KindNull:
		return "null"
	case KindBool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case KindInt, KindFloat:
		return NormalizeNumber(v)
	case KindString:
		return renderString(v.Str(), ctx)
	default:
		panic("toon: emitPrimitive called on non-primitive Value")
	}
}

// tabularFields reports whether arr is tabular-eligible (spec §4.3 rule 2)
// and, if so, its shared field list in the shared insertion order.
func tabularFields(arr []Value) ([]string, bool) {
	if len(arr) == 0 || arr[0].Kind() != KindObject {
		return nil, false
	}
	fields := arr[0].Obj().Keys()
	for _, elem := range arr {
		if elem.Kind() != KindObject {
			return nil, false
		}
		o := elem.Obj()
		keys := o.Keys()
		if len(keys) != len(fields) {
			return nil, false
		}
		for i, k := range keys {
			if k != fields[i] {
				return nil, false
			}
		}
		for _, v := range o.Values() {
			if !v.IsPrimitive() {
				return nil, false
			}
		}
	}
	out := make([]string, len(fields))
	copy(out, fields)
	return out, true
}

func allPrimitive(arr []Value) bool {
	for _, v := range arr {
		if !v.IsPrimitive() {
			return false
		}
	}
	return true
}
