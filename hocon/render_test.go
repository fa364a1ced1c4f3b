package hocon

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/DenWav/Configurate/ir"
	"github.com/DenWav/Configurate/token"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// lfOpts pins the line separator so expectations hold on any platform.
func lfOpts() *Builder {
	return NewBuilder().WithLineSeparator(LF)
}

func diffText(want, got string) string {
	dmp := diffpatch.New()
	return dmp.DiffPrettyText(dmp.DiffMain(want, got, false))
}

func checkRender(t *testing.T, node *ir.Node, opts Options, want string) {
	t.Helper()
	got, err := Render(node, opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != want {
		t.Fatalf("render mismatch\nwant %q\ngot  %q\ndiff:\n%s", want, got, diffText(want, got))
	}
}

func TestRenderDefaults(t *testing.T) {
	node := ir.FromKeyVals(
		ir.KeyVal{Key: "a", Val: ir.FromInt(1)},
		ir.KeyVal{Key: "b", Val: ir.FromKeyVals(
			ir.KeyVal{Key: "c", Val: ir.FromInt(2)},
		)},
	)
	checkRender(t, node, lfOpts().Build(), "a: 1\nb {\n    c: 2\n}\n")
}

func TestRenderMapOrder(t *testing.T) {
	node := ir.FromKeyVals(
		ir.KeyVal{Key: "z", Val: ir.FromInt(1)},
		ir.KeyVal{Key: "m", Val: ir.FromInt(2)},
		ir.KeyVal{Key: "a", Val: ir.FromInt(3)},
	)
	checkRender(t, node, lfOpts().Build(), "z: 1\nm: 2\na: 3\n")
}

func TestRenderEmptyRootMap(t *testing.T) {
	checkRender(t, ir.FromKeyVals(), lfOpts().Build(), "")
}

func TestRenderEmptyList(t *testing.T) {
	node := ir.FromKeyVals(
		ir.KeyVal{Key: "xs", Val: ir.FromSlice(nil)},
	)
	checkRender(t, node, lfOpts().Build(), "xs: [ ]\n")

	// empty lists stay `[ ]` under any style
	checkRender(t, node,
		lfOpts().WithIndent(Tab, 1).WithSeparatorCharacter(Equals).Build(),
		"xs = [ ]\n")
}

func TestRenderInlineList(t *testing.T) {
	node := ir.FromKeyVals(
		ir.KeyVal{Key: "ns", Val: ir.FromSlice([]*ir.Node{
			ir.FromInt(1), ir.FromInt(2), ir.FromInt(3), ir.FromInt(4), ir.FromInt(5),
		})},
	)
	checkRender(t, node, lfOpts().Build(), "ns: [ 1, 2, 3, 4, 5 ]\n")
}

func TestRenderLongListBlocks(t *testing.T) {
	long := strings.Repeat("a", 16)
	vals := []*ir.Node{}
	for range 5 {
		vals = append(vals, ir.FromString(long))
	}
	node := ir.FromKeyVals(ir.KeyVal{Key: "xs", Val: ir.FromSlice(vals)})
	want := "xs: [\n" +
		"    " + long + ",\n" +
		"    " + long + ",\n" +
		"    " + long + ",\n" +
		"    " + long + ",\n" +
		"    " + long + "\n" +
		"]\n"
	checkRender(t, node, lfOpts().Build(), want)

	// dropping one element brings it back under the threshold
	node = ir.FromKeyVals(ir.KeyVal{Key: "xs", Val: ir.FromSlice(vals[:4])})
	want = "xs: [ " + long + ", " + long + ", " + long + ", " + long + " ]\n"
	checkRender(t, node, lfOpts().Build(), want)
}

func TestRenderNestedChildBlocksList(t *testing.T) {
	node := ir.FromKeyVals(
		ir.KeyVal{Key: "xs", Val: ir.FromSlice([]*ir.Node{
			ir.FromInt(1),
			ir.FromSlice([]*ir.Node{ir.FromInt(2)}),
		})},
	)
	checkRender(t, node, lfOpts().Build(), "xs: [\n    1,\n    [ 2 ]\n]\n")
}

func TestRenderCommentedElementBlocksList(t *testing.T) {
	node := ir.FromKeyVals(
		ir.KeyVal{Key: "xs", Val: ir.FromSlice([]*ir.Node{
			ir.FromInt(1),
			ir.FromInt(2).WithComment("note"),
		})},
	)
	got, err := Render(node, lfOpts().Build())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "[\n") {
		t.Fatalf("commented element should force block layout, got %q", got)
	}
}

func TestRenderMapInListBlocks(t *testing.T) {
	node := ir.FromKeyVals(
		ir.KeyVal{Key: "xs", Val: ir.FromSlice([]*ir.Node{
			ir.FromKeyVals(ir.KeyVal{Key: "a", Val: ir.FromInt(1)}),
		})},
	)
	checkRender(t, node, lfOpts().Build(), "xs: [\n    {\n        a: 1\n    }\n]\n")
}

func TestRenderComments(t *testing.T) {
	node := ir.FromKeyVals(
		ir.KeyVal{Key: "a", Val: ir.FromInt(1).WithComment("first\nsecond")},
	)
	checkRender(t, node, lfOpts().Build(), "# first\n# second\na: 1\n")

	checkRender(t, node, lfOpts().WithCommentStyle(DoubleSlash).Build(),
		"// first\n// second\na: 1\n")
}

func TestRenderCommentLineBreaks(t *testing.T) {
	// \r\n and \r both split comment lines
	node := ir.FromKeyVals(
		ir.KeyVal{Key: "a", Val: ir.FromInt(1).WithComment("one\r\ntwo\rthree")},
	)
	checkRender(t, node, lfOpts().Build(), "# one\n# two\n# three\na: 1\n")
}

func TestRenderNestedComment(t *testing.T) {
	node := ir.FromKeyVals(
		ir.KeyVal{Key: "b", Val: ir.FromKeyVals(
			ir.KeyVal{Key: "c", Val: ir.FromInt(2).WithComment("inner")},
		).WithComment("outer")},
	)
	checkRender(t, node, lfOpts().Build(),
		"# outer\nb {\n    # inner\n    c: 2\n}\n")
}

func TestRenderKeyQuoting(t *testing.T) {
	node := ir.FromKeyVals(
		ir.KeyVal{Key: "plain", Val: ir.FromInt(1)},
		ir.KeyVal{Key: "with space", Val: ir.FromInt(2)},
		ir.KeyVal{Key: "", Val: ir.FromInt(3)},
		ir.KeyVal{Key: "café", Val: ir.FromInt(4)},
		ir.KeyVal{Key: "dot.ted", Val: ir.FromInt(5)},
	)
	checkRender(t, node, lfOpts().Build(),
		"plain: 1\n\"with space\": 2\n\"\": 3\ncafé: 4\n\"dot.ted\": 5\n")

	checkRender(t, ir.FromKeyVals(ir.KeyVal{Key: "plain", Val: ir.FromInt(1)}),
		lfOpts().WithKeyQuoting(token.QuoteAlways).Build(),
		"\"plain\": 1\n")
}

func TestRenderStringQuoting(t *testing.T) {
	node := ir.FromKeyVals(
		ir.KeyVal{Key: "s", Val: ir.FromString("bare")},
	)
	checkRender(t, node, lfOpts().Build(), "s: bare\n")
	checkRender(t, node, lfOpts().WithStringQuoting(token.QuoteAlways).Build(),
		"s: \"bare\"\n")

	// strings that would reparse as other scalars always quote
	node = ir.FromKeyVals(
		ir.KeyVal{Key: "t", Val: ir.FromString("true")},
		ir.KeyVal{Key: "n", Val: ir.FromString("10")},
	)
	checkRender(t, node, lfOpts().Build(), "t: \"true\"\nn: \"10\"\n")
}

func TestRenderSeparatorStyles(t *testing.T) {
	node := ir.FromKeyVals(ir.KeyVal{Key: "a", Val: ir.FromInt(1)})

	checkRender(t, node, lfOpts().WithSeparatorCharacter(Equals).Build(), "a = 1\n")
	checkRender(t, node,
		lfOpts().WithSeparatorCharacter(Equals).WithSeparatorSpacing(0, 0).Build(),
		"a=1\n")
	checkRender(t, node, lfOpts().WithSeparatorSpacing(2, 2).Build(), "a  :  1\n")
}

func TestRenderObjectSeparatorIncluded(t *testing.T) {
	node := ir.FromKeyVals(
		ir.KeyVal{Key: "b", Val: ir.FromKeyVals(
			ir.KeyVal{Key: "c", Val: ir.FromInt(2)},
		)},
	)
	checkRender(t, node, lfOpts().WithObjectSeparator(Included).Build(),
		"b: {\n    c: 2\n}\n")
}

func TestRenderTabIndent(t *testing.T) {
	node := ir.FromKeyVals(
		ir.KeyVal{Key: "b", Val: ir.FromKeyVals(
			ir.KeyVal{Key: "c", Val: ir.FromInt(2)},
		)},
	)
	checkRender(t, node, lfOpts().WithIndent(Tab, 1).Build(), "b {\n\tc: 2\n}\n")
}

func TestRenderCRLF(t *testing.T) {
	node := ir.FromKeyVals(ir.KeyVal{Key: "a", Val: ir.FromInt(1)})
	checkRender(t, node, NewBuilder().WithLineSeparator(CRLF).Build(), "a: 1\r\n")
}

func TestRenderDeepNesting(t *testing.T) {
	node := ir.FromKeyVals(
		ir.KeyVal{Key: "a", Val: ir.FromKeyVals(
			ir.KeyVal{Key: "b", Val: ir.FromKeyVals(
				ir.KeyVal{Key: "c", Val: ir.FromString("deep")},
			)},
		)},
	)
	checkRender(t, node, lfOpts().Build(),
		"a {\n    b {\n        c: deep\n    }\n}\n")
}

func TestRenderRootList(t *testing.T) {
	node := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
	checkRender(t, node, lfOpts().Build(), "[ 1, 2 ]\n")

	node = ir.FromSlice([]*ir.Node{
		ir.FromInt(1),
		ir.FromSlice([]*ir.Node{ir.FromInt(2)}),
	})
	checkRender(t, node, lfOpts().Build(), "[\n1,\n[ 2 ]\n]\n")
}

func TestRenderRootScalar(t *testing.T) {
	checkRender(t, ir.FromString("hello"), lfOpts().Build(), "hello\n")
	checkRender(t, ir.Null(), lfOpts().Build(), "null\n")
}

func TestRenderScalarErrorCarriesPath(t *testing.T) {
	bad := &ir.Node{Type: ir.NumberType} // no value
	node := ir.FromKeyVals(
		ir.KeyVal{Key: "a", Val: ir.FromKeyVals(
			ir.KeyVal{Key: "b", Val: bad},
		)},
	)
	_, err := Render(node, lfOpts().Build())
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrRender) {
		t.Errorf("error should wrap ErrRender: %v", err)
	}
	if !errors.Is(err, token.ErrValue) {
		t.Errorf("error should wrap token.ErrValue: %v", err)
	}
	if !strings.Contains(err.Error(), "a.b") {
		t.Errorf("error should name the node path a.b: %v", err)
	}
}

func TestRenderNonFiniteFloatErrors(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		node := ir.FromKeyVals(
			ir.KeyVal{Key: "x", Val: ir.FromFloat(f)},
		)
		_, err := Render(node, lfOpts().Build())
		if err == nil {
			t.Fatalf("float %v: expected error", f)
		}
		if !errors.Is(err, token.ErrValue) {
			t.Errorf("float %v: error should wrap token.ErrValue: %v", f, err)
		}
		if !strings.Contains(err.Error(), "x") {
			t.Errorf("float %v: error should name the node path: %v", f, err)
		}
	}
}

func TestRenderListErrorCarriesIndex(t *testing.T) {
	node := ir.FromKeyVals(
		ir.KeyVal{Key: "xs", Val: ir.FromSlice([]*ir.Node{
			ir.FromInt(1),
			&ir.Node{Type: ir.NumberType},
		})},
	)
	_, err := Render(node, lfOpts().Build())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "xs") {
		t.Errorf("error should name the list: %v", err)
	}
}

func TestRenderColorsDoNotChangeLayout(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	node := ir.FromKeyVals(
		ir.KeyVal{Key: "a", Val: ir.FromInt(1).WithComment("hi")},
		ir.KeyVal{Key: "xs", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})},
	)
	plain, err := Render(node, lfOpts().Build())
	if err != nil {
		t.Fatal(err)
	}
	colored, err := Render(node, lfOpts().WithColors(NewColors()).Build())
	if err != nil {
		t.Fatal(err)
	}
	if plain != colored {
		t.Fatalf("colors changed layout\nplain   %q\ncolored %q", plain, colored)
	}
}
