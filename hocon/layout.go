package hocon

import (
	"unicode"

	"github.com/DenWav/Configurate/ir"
	"github.com/DenWav/Configurate/token"
)

// longLineLength is the rendered width at which an otherwise inline list
// is forced into block layout.
const longLineLength = 80

// isSimpleKey reports whether a key can be written without quotes: it must
// be non-empty and consist only of letters, digits, '-' and '_'.
func isSimpleKey(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			continue
		}
		return false
	}
	return true
}

// listInline decides whether a list renders on a single line. A list is
// inline when every element is a scalar, no element carries a comment, and
// the rendered elements plus one separator each stay under longLineLength.
// The length scan stops as soon as the threshold is reached so elements
// are not rendered twice.
func listInline(values []*ir.Node, quoting token.Quoting) (bool, error) {
	for _, v := range values {
		switch v.Type {
		case ir.ObjectType, ir.ArrayType:
			return false, nil
		}
		if v.Comment != "" {
			return false, nil
		}
	}
	length := 0
	for _, v := range values {
		text, err := token.Literal(v, quoting)
		if err != nil {
			return false, err
		}
		length += len(text) + 1
		if length >= longLineLength {
			return false, nil
		}
	}
	return true, nil
}
