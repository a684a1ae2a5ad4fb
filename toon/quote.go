package toon

import "strings"

// QuoteContext selects which delimiter character forces quoting (spec §4.2
// rule 7): colon in Document context, comma in InlineArray/TabularCell.
type QuoteContext int

const (
	Document QuoteContext = iota
	InlineArray
	TabularCell
)

const escapeChars = "\\\"\n\r\t"

// needsQuoting implements the quoting oracle of spec §4.2.
func needsQuoting(s string, ctx QuoteContext) bool {
	if s == "" {
		return true
	}
	if hasEdgeWhitespace(s) {
		return true
	}
	switch s {
	case "true", "false", "null":
		return true
	}
	if looksNumeric(s) {
		return true
	}
	if strings.ContainsAny(s, "\\\"[]{}\n\r\t") {
		return true
	}
	if s[0] == '-' {
		return true
	}
	switch ctx {
	case Document:
		if strings.Contains(s, ":") {
			return true
		}
	case InlineArray, TabularCell:
		if strings.Contains(s, ",") {
			return true
		}
	}
	return false
}

func hasEdgeWhitespace(s string) bool {
	return isASCIISpace(s[0]) || isASCIISpace(s[len(s)-1])
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// quoteString renders s as a quoted TOON string literal: a double quote,
// the body with \, ", \n, \r, \t escape-prefixed, and a closing quote.
func quoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// renderString renders s for ctx: quoted if needsQuoting, otherwise bare.
func renderString(s string, ctx QuoteContext) string {
	if needsQuoting(s, ctx) {
		return quoteString(s)
	}
	return s
}

// unescapeBody reverses quoteString's body transform. Any backslash
// followed by a character other than \, ", n, r, t passes through as a
// literal backslash followed by that character (spec §4.2).
func unescapeBody(body string) string {
	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i == len(body)-1 {
			b.WriteByte(c)
			continue
		}
		next := body[i+1]
		switch next {
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			b.WriteByte('\\')
			b.WriteByte(next)
			i++
			continue
		}
		i++
	}
	return b.String()
}

// isBareKey reports whether s matches the bare-key grammar from spec §4.3: ^[A-Za-z_][A-Za-z0-9_.]*$
func isBareKey(s string) bool {
	if s == "" {
		return false
	}
	c0 := s[0]
	if !(c0 == '_' || (c0 >= 'a' && c0 <= 'z') || (c0 >= 'A' && c0 <= 'Z')) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if c == '_' || c == '.' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			continue
		}
		return false
	}
	return true
}

// renderKey renders an object key: unquoted if it matches the bare-key
// grammar, quoted (with the same escape set as strings) otherwise.
func renderKey(key string) string {
	if isBareKey(key) {
		return key
	}
	return quoteString(key)
}
