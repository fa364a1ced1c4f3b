package token

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/DenWav/Configurate/ir"
)

// Quoting selects when string literals are quoted.
type Quoting int

const (
	// QuoteWhenRequired leaves strings bare when NeedsQuote is false.
	QuoteWhenRequired Quoting = iota
	// QuoteAlways quotes every string literal.
	QuoteAlways
)

func ParseQuoting(v string) (Quoting, error) {
	q, ok := map[string]Quoting{
		"when-required": QuoteWhenRequired,
		"always":        QuoteAlways,
	}[v]
	if ok {
		return q, nil
	}
	return 0, fmt.Errorf("%w: quoting %q", ErrValue, v)
}

func (q Quoting) String() string {
	d, err := q.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (q Quoting) MarshalText() ([]byte, error) {
	switch q {
	case QuoteWhenRequired:
		return []byte("when-required"), nil
	case QuoteAlways:
		return []byte("always"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a quoting mode>", q)
	}
}

func (q *Quoting) UnmarshalText(d []byte) error {
	pq, err := ParseQuoting(string(d))
	if err != nil {
		return err
	}
	*q = pq
	return nil
}

// Literal renders a scalar node as its literal textual form under the
// given quoting mode. It is total over the scalar node types and fails
// with ErrNotScalar for composite nodes and ErrValue for malformed ones.
func Literal(y *ir.Node, quoting Quoting) (string, error) {
	switch y.Type {
	case ir.StringType:
		if quoting == QuoteAlways || NeedsQuote(y.String) {
			return Quote(y.String), nil
		}
		return y.String, nil
	case ir.NumberType:
		if y.Int64 != nil {
			return strconv.FormatInt(*y.Int64, 10), nil
		}
		if y.Float64 != nil {
			// FormatFloat writes NaN/Inf as bare words, not literals
			f := *y.Float64
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return "", fmt.Errorf("%w: non-finite float %v", ErrValue, f)
			}
			v := strconv.FormatFloat(f, 'f', -1, 64)
			// floats keep a fractional part so they reparse as floats
			if !strings.Contains(v, ".") {
				v += ".0"
			}
			return v, nil
		}
		return "", fmt.Errorf("%w: number node without a value", ErrValue)
	case ir.BoolType:
		return strconv.FormatBool(y.Bool), nil
	case ir.NullType:
		return "null", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrNotScalar, y.Type)
	}
}
