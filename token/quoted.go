package token

import (
	"encoding/hex"
	"unicode"
	"unicode/utf8"
)

// NeedsQuote reports whether v cannot be written as a bare (unquoted)
// string literal. A bare literal must be non-empty, must not collide with
// the keyword literals, must not look like the start of a number, and may
// only contain letters, digits, and a small set of punctuation that the
// paired parser treats as word characters.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	switch v {
	case "true", "false", "null":
		return true
	}
	if c := v[0]; c == '-' || c >= '0' && c <= '9' {
		return true
	}
	for _, r := range v {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		switch r {
		case '-', '_', '.', '/':
			continue
		}
		return true
	}
	return false
}

// Quote renders v as a double quoted string literal, escaping per JSON
// rules with \u hex escapes for control characters.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}
