package toon

import "strings"

// FilterAndEncode strips fields matching patterns from the JSON value
// before encoding it as TOON (spec §6 "filter_and_encode").
func FilterAndEncode(jsonText string, patterns []string) (string, error) {
	parsed, err := parsePatterns(patterns)
	if err != nil {
		return "", err
	}
	v, err := ParseJSON([]byte(jsonText))
	if err != nil {
		return "", err
	}
	return EncodeValue(filterValue(v, parsed)), nil
}

// parsePatterns splits each dot-separated pattern into segments. A pattern
// with an empty segment (a doubled dot, or a leading/trailing dot) is
// rejected rather than silently treated as a wildcard-less no-op segment.
func parsePatterns(patterns []string) ([][]string, error) {
	out := make([][]string, 0, len(patterns))
	for _, p := range patterns {
		segs := strings.Split(p, ".")
		for _, s := range segs {
			if s == "" {
				return nil, newInputParseError("filter pattern %q has an empty segment", p)
			}
		}
		out = append(out, segs)
	}
	return out, nil
}

// filterValue is the tree rewrite of spec §9 "Filter pre-pass": at each
// object node, drop keys whose final segment matches one of patterns, and
// descend into the surviving children with the narrowed pattern set. A '*'
// segment both narrows (like any other match) and propagates the original
// full pattern unchanged, so a leading "*.x" keeps matching "x" at every
// depth below. Arrays are transparent: patterns pass to every element
// without consuming a segment.
func filterValue(v Value, patterns [][]string) Value {
	switch v.Kind() {
	case KindObject:
		o := v.Obj()
		out := NewObject()
		for i := 0; i < o.Len(); i++ {
			key, val := o.ValueAt(i)
			drop := false
			var childPatterns [][]string
			seen := make(map[string]bool)
			for _, p := range patterns {
				if !matchSegment(p[0], key) {
					continue
				}
				if len(p) == 1 {
					drop = true
					continue
				}
				addPattern(&childPatterns, seen, p[1:])
				if p[0] == "*" {
					addPattern(&childPatterns, seen, p)
				}
			}
			if drop {
				continue
			}
			out.Set(key, filterValue(val, childPatterns))
		}
		return ObjectValue(out)

	case KindArray:
		arr := v.Array()
		result := make([]Value, len(arr))
		for i, e := range arr {
			result[i] = filterValue(e, patterns)
		}
		return Array(result...)

	default:
		return v
	}
}

func matchSegment(seg, key string) bool {
	return seg == "*" || seg == key
}

func addPattern(dst *[][]string, seen map[string]bool, p []string) {
	k := strings.Join(p, "\x00")
	if seen[k] {
		return
	}
	seen[k] = true
	*dst = append(*dst, p)
}
