package hocon

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/DenWav/Configurate/ir"
	"github.com/DenWav/Configurate/token"
)

// linePattern matches the line breaks accepted inside comment text.
var linePattern = regexp.MustCompile("\r\n|\r|\n")

// Render lays out a configuration tree as text under the given style.
// The tree is borrowed read-only for the duration of the call. On failure
// no partial output is returned.
func Render(node *ir.Node, opts Options) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := RenderTo(buf, node, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderTo renders node to w. Callers must discard anything already
// written to w when an error is returned.
func RenderTo(w io.Writer, node *ir.Node, opts Options) error {
	rs := newRenderState(w, opts)
	if err := rs.renderNode(node, 0); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	// A bare root map already ends with its last child's newline; list
	// and scalar roots do not, so terminate the document here.
	if rs.wrote && !rs.lastNewline {
		return rs.writeNewline()
	}
	return nil
}

// renderState is one render session: the style, its precomputed fragments,
// and the output writer. Sessions are never shared between calls.
type renderState struct {
	opts Options
	w    io.Writer

	indent          string
	spaceLeftOfSep  string
	spaceRightOfSep string
	newline         string

	path        []string
	wrote       bool
	lastNewline bool
}

func newRenderState(w io.Writer, opts Options) *renderState {
	return &renderState{
		opts:            opts,
		w:               w,
		indent:          strings.Repeat(string(opts.indentCharacter.Char()), max(0, opts.indent)),
		spaceLeftOfSep:  strings.Repeat(" ", max(0, opts.spacesBeforeSeparator)),
		spaceRightOfSep: strings.Repeat(" ", max(0, opts.spacesAfterSeparator)),
		newline:         opts.lineSeparator.Separator(),
	}
}

func (rs *renderState) renderNode(node *ir.Node, indentLevel int) error {
	switch node.Type {
	case ir.ObjectType:
		return rs.renderMap(node, indentLevel)
	case ir.ArrayType:
		return rs.renderList(node, indentLevel)
	case ir.StringType, ir.NumberType, ir.BoolType, ir.NullType:
		return rs.renderScalar(node)
	default:
		panic("node type")
	}
}

func (rs *renderState) renderMap(node *ir.Node, indentLevel int) error {
	if indentLevel > 0 {
		// only open braces below the root; the root map renders bare
		if err := rs.write("{"); err != nil {
			return err
		}
		if err := rs.writeNewline(); err != nil {
			return err
		}
	}

	for i, key := range node.Fields {
		val := node.Values[i]

		if err := rs.renderComments(val, indentLevel); err != nil {
			return err
		}
		if err := rs.writeIndent(indentLevel); err != nil {
			return err
		}
		if err := rs.writeKey(key); err != nil {
			return err
		}

		if val.Type != ir.ObjectType || rs.opts.objectSeparator == Included {
			if err := rs.writeSeparator(); err != nil {
				return err
			}
		} else {
			// nested objects drop the separator: `key { ... }`
			if err := rs.write(" "); err != nil {
				return err
			}
		}

		rs.path = append(rs.path, key)
		if err := rs.renderNode(val, indentLevel+1); err != nil {
			return err
		}
		rs.path = rs.path[:len(rs.path)-1]
		if err := rs.writeNewline(); err != nil {
			return err
		}
	}

	if indentLevel > 0 {
		// closing brace sits one level left of the children
		if err := rs.writeIndent(indentLevel - 1); err != nil {
			return err
		}
		return rs.write("}")
	}
	return nil
}

func (rs *renderState) renderList(node *ir.Node, indentLevel int) error {
	inline, err := listInline(node.Values, rs.opts.stringQuoting)
	if err != nil {
		return fmt.Errorf("at %s: %w", rs.pathString(), err)
	}

	if err := rs.write("["); err != nil {
		return err
	}

	n := len(node.Values)
	for i, v := range node.Values {
		if inline {
			if err := rs.write(" "); err != nil {
				return err
			}
		} else {
			if err := rs.writeNewline(); err != nil {
				return err
			}
			if err := rs.writeIndent(indentLevel); err != nil {
				return err
			}
		}
		rs.path = append(rs.path, "["+strconv.Itoa(i)+"]")
		if err := rs.renderNode(v, indentLevel+1); err != nil {
			return err
		}
		rs.path = rs.path[:len(rs.path)-1]
		if i < n-1 {
			if err := rs.write(rs.color(ir.ArrayType, SepColor, ",")); err != nil {
				return err
			}
		}
	}

	if inline {
		// also covers the empty list, which renders as `[ ]`
		return rs.write(" ]")
	}
	if err := rs.writeNewline(); err != nil {
		return err
	}
	if err := rs.writeIndent(indentLevel - 1); err != nil {
		return err
	}
	return rs.write("]")
}

func (rs *renderState) renderScalar(node *ir.Node) error {
	text, err := token.Literal(node, rs.opts.stringQuoting)
	if err != nil {
		return fmt.Errorf("at %s: %w", rs.pathString(), err)
	}
	return rs.write(rs.color(node.Type, ValueColor, text))
}

func (rs *renderState) renderComments(node *ir.Node, indentLevel int) error {
	if node.Comment == "" {
		return nil
	}
	prefix := rs.opts.commentStyle.Prefix()
	for _, line := range linePattern.Split(node.Comment, -1) {
		if err := rs.writeIndent(indentLevel); err != nil {
			return err
		}
		if err := rs.write(rs.color(node.Type, CommentColor, prefix+" "+line)); err != nil {
			return err
		}
		if err := rs.writeNewline(); err != nil {
			return err
		}
	}
	return nil
}

func (rs *renderState) writeKey(key string) error {
	if rs.opts.keyQuoting == token.QuoteAlways || !isSimpleKey(key) {
		key = token.Quote(key)
	}
	return rs.write(rs.color(ir.ObjectType, FieldColor, key))
}

func (rs *renderState) writeSeparator() error {
	if err := rs.write(rs.spaceLeftOfSep); err != nil {
		return err
	}
	sep := rs.opts.separatorCharacter.Token()
	if err := rs.write(rs.color(ir.ObjectType, SepColor, sep)); err != nil {
		return err
	}
	return rs.write(rs.spaceRightOfSep)
}

func (rs *renderState) writeIndent(indentLevel int) error {
	for range max(0, indentLevel) {
		if err := rs.write(rs.indent); err != nil {
			return err
		}
	}
	return nil
}

func (rs *renderState) writeNewline() error {
	if _, err := io.WriteString(rs.w, rs.newline); err != nil {
		return err
	}
	rs.wrote = true
	rs.lastNewline = true
	return nil
}

func (rs *renderState) write(s string) error {
	if s == "" {
		return nil
	}
	if _, err := io.WriteString(rs.w, s); err != nil {
		return err
	}
	rs.wrote = true
	rs.lastNewline = false
	return nil
}

func (rs *renderState) color(t ir.Type, a ColorAttr, s string) string {
	if rs.opts.colors == nil {
		return s
	}
	return rs.opts.colors.Color(t, a, s)
}

func (rs *renderState) pathString() string {
	if len(rs.path) == 0 {
		return "(root)"
	}
	b := &strings.Builder{}
	for i, seg := range rs.path {
		if i > 0 && seg[0] != '[' {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}
