package hocon

import (
	"fmt"
	"runtime"

	"github.com/DenWav/Configurate/token"
)

// SeparatorCharacter is the token written between a key and its value.
type SeparatorCharacter int

const (
	Colon SeparatorCharacter = iota
	Equals
)

// Token returns the separator text for this variant.
func (s SeparatorCharacter) Token() string {
	switch s {
	case Colon:
		return ":"
	case Equals:
		return "="
	default:
		panic("separator character")
	}
}

func ParseSeparatorCharacter(v string) (SeparatorCharacter, error) {
	s, ok := map[string]SeparatorCharacter{
		"colon":  Colon,
		":":      Colon,
		"equals": Equals,
		"=":      Equals,
	}[v]
	if ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: separator character %q", ErrOption, v)
}

func (s SeparatorCharacter) String() string {
	d, err := s.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (s SeparatorCharacter) MarshalText() ([]byte, error) {
	switch s {
	case Colon:
		return []byte("colon"), nil
	case Equals:
		return []byte("equals"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a separator character>", s)
	}
}

func (s *SeparatorCharacter) UnmarshalText(d []byte) error {
	ps, err := ParseSeparatorCharacter(string(d))
	if err != nil {
		return err
	}
	*s = ps
	return nil
}

// ObjectSeparator controls whether the key-value separator appears before
// nested objects, giving `key { ... }` (Omitted) or `key: { ... }`
// (Included).
type ObjectSeparator int

const (
	Omitted ObjectSeparator = iota
	Included
)

func ParseObjectSeparator(v string) (ObjectSeparator, error) {
	s, ok := map[string]ObjectSeparator{
		"omitted":  Omitted,
		"included": Included,
	}[v]
	if ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: object separator %q", ErrOption, v)
}

func (s ObjectSeparator) String() string {
	d, err := s.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (s ObjectSeparator) MarshalText() ([]byte, error) {
	switch s {
	case Omitted:
		return []byte("omitted"), nil
	case Included:
		return []byte("included"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not an object separator>", s)
	}
}

func (s *ObjectSeparator) UnmarshalText(d []byte) error {
	ps, err := ParseObjectSeparator(string(d))
	if err != nil {
		return err
	}
	*s = ps
	return nil
}

// IndentCharacter is the character indentation is built from.
type IndentCharacter int

const (
	Space IndentCharacter = iota
	Tab
)

// Char returns the indent character for this variant.
func (c IndentCharacter) Char() byte {
	switch c {
	case Space:
		return ' '
	case Tab:
		return '\t'
	default:
		panic("indent character")
	}
}

func ParseIndentCharacter(v string) (IndentCharacter, error) {
	c, ok := map[string]IndentCharacter{
		"space": Space,
		"tab":   Tab,
	}[v]
	if ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: indent character %q", ErrOption, v)
}

func (c IndentCharacter) String() string {
	d, err := c.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (c IndentCharacter) MarshalText() ([]byte, error) {
	switch c {
	case Space:
		return []byte("space"), nil
	case Tab:
		return []byte("tab"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not an indent character>", c)
	}
}

func (c *IndentCharacter) UnmarshalText(d []byte) error {
	pc, err := ParseIndentCharacter(string(d))
	if err != nil {
		return err
	}
	*c = pc
	return nil
}

// CommentStyle is the prefix written before each comment line.
type CommentStyle int

const (
	Hash CommentStyle = iota
	DoubleSlash
)

// Prefix returns the comment prefix for this variant.
func (c CommentStyle) Prefix() string {
	switch c {
	case Hash:
		return "#"
	case DoubleSlash:
		return "//"
	default:
		panic("comment style")
	}
}

func ParseCommentStyle(v string) (CommentStyle, error) {
	c, ok := map[string]CommentStyle{
		"hash":         Hash,
		"#":            Hash,
		"double-slash": DoubleSlash,
		"//":           DoubleSlash,
	}[v]
	if ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: comment style %q", ErrOption, v)
}

func (c CommentStyle) String() string {
	d, err := c.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (c CommentStyle) MarshalText() ([]byte, error) {
	switch c {
	case Hash:
		return []byte("hash"), nil
	case DoubleSlash:
		return []byte("double-slash"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a comment style>", c)
	}
}

func (c *CommentStyle) UnmarshalText(d []byte) error {
	pc, err := ParseCommentStyle(string(d))
	if err != nil {
		return err
	}
	*c = pc
	return nil
}

// LineSeparator is the line ending written between output lines.
type LineSeparator int

const (
	System LineSeparator = iota
	LF
	CRLF
)

// Separator returns the line ending text for this variant.
func (l LineSeparator) Separator() string {
	switch l {
	case System:
		if runtime.GOOS == "windows" {
			return "\r\n"
		}
		return "\n"
	case LF:
		return "\n"
	case CRLF:
		return "\r\n"
	default:
		panic("line separator")
	}
}

func ParseLineSeparator(v string) (LineSeparator, error) {
	l, ok := map[string]LineSeparator{
		"system": System,
		"lf":     LF,
		"crlf":   CRLF,
	}[v]
	if ok {
		return l, nil
	}
	return 0, fmt.Errorf("%w: line separator %q", ErrOption, v)
}

func (l LineSeparator) String() string {
	d, err := l.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (l LineSeparator) MarshalText() ([]byte, error) {
	switch l {
	case System:
		return []byte("system"), nil
	case LF:
		return []byte("lf"), nil
	case CRLF:
		return []byte("crlf"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a line separator>", l)
	}
}

func (l *LineSeparator) UnmarshalText(d []byte) error {
	pl, err := ParseLineSeparator(string(d))
	if err != nil {
		return err
	}
	*l = pl
	return nil
}

// Options is an immutable bundle of formatting choices. Construct one with
// DefaultOptions or through a Builder; clone with overrides through
// ToBuilder. The zero value is not meaningful, always go through a
// constructor.
type Options struct {
	separatorCharacter SeparatorCharacter
	objectSeparator    ObjectSeparator
	stringQuoting      token.Quoting
	keyQuoting         token.Quoting

	spacesBeforeSeparator int
	spacesAfterSeparator  int

	indentCharacter IndentCharacter
	indent          int

	commentStyle  CommentStyle
	lineSeparator LineSeparator

	colors *Colors
}

// DefaultOptions returns the default style: colon separator omitted before
// nested objects, quoting only when required, one space after the
// separator, 4-space indent, hash comments, platform line ending.
func DefaultOptions() Options {
	return NewBuilder().Build()
}

func (o Options) SeparatorCharacter() SeparatorCharacter { return o.separatorCharacter }
func (o Options) ObjectSeparator() ObjectSeparator       { return o.objectSeparator }
func (o Options) StringQuoting() token.Quoting           { return o.stringQuoting }
func (o Options) KeyQuoting() token.Quoting              { return o.keyQuoting }
func (o Options) SpacesBeforeSeparator() int             { return o.spacesBeforeSeparator }
func (o Options) SpacesAfterSeparator() int              { return o.spacesAfterSeparator }
func (o Options) IndentCharacter() IndentCharacter       { return o.indentCharacter }
func (o Options) Indent() int                            { return o.indent }
func (o Options) CommentStyle() CommentStyle             { return o.commentStyle }
func (o Options) LineSeparator() LineSeparator           { return o.lineSeparator }

// ToBuilder returns a Builder seeded with this Options, for cloning with
// overrides. The receiver is unaffected by anything done to the Builder.
func (o Options) ToBuilder() *Builder {
	return &Builder{opts: o}
}

// Builder accumulates style choices and produces an immutable Options.
type Builder struct {
	opts Options
}

func NewBuilder() *Builder {
	return &Builder{
		opts: Options{
			separatorCharacter:   Colon,
			objectSeparator:      Omitted,
			stringQuoting:        token.QuoteWhenRequired,
			keyQuoting:           token.QuoteWhenRequired,
			spacesAfterSeparator: 1,
			indentCharacter:      Space,
			indent:               4,
			commentStyle:         Hash,
			lineSeparator:        System,
		},
	}
}

func (b *Builder) WithSeparatorCharacter(s SeparatorCharacter) *Builder {
	b.opts.separatorCharacter = s
	return b
}

func (b *Builder) WithObjectSeparator(s ObjectSeparator) *Builder {
	b.opts.objectSeparator = s
	return b
}

func (b *Builder) WithStringQuoting(q token.Quoting) *Builder {
	b.opts.stringQuoting = q
	return b
}

func (b *Builder) WithKeyQuoting(q token.Quoting) *Builder {
	b.opts.keyQuoting = q
	return b
}

func (b *Builder) WithSeparatorSpacing(before, after int) *Builder {
	b.opts.spacesBeforeSeparator = before
	b.opts.spacesAfterSeparator = after
	return b
}

func (b *Builder) WithIndent(c IndentCharacter, charsPerIndent int) *Builder {
	b.opts.indentCharacter = c
	b.opts.indent = charsPerIndent
	return b
}

func (b *Builder) WithCommentStyle(c CommentStyle) *Builder {
	b.opts.commentStyle = c
	return b
}

func (b *Builder) WithLineSeparator(l LineSeparator) *Builder {
	b.opts.lineSeparator = l
	return b
}

// WithColors attaches an ANSI color scheme applied around tokens as they
// are written. Colors never affect layout.
func (b *Builder) WithColors(c *Colors) *Builder {
	b.opts.colors = c
	return b
}

// Build returns the accumulated Options. The Builder may keep being used
// afterwards; the returned value is an independent snapshot.
func (b *Builder) Build() Options {
	return b.opts
}
