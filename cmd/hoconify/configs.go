package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/DenWav/Configurate/hocon"
	"github.com/DenWav/Configurate/token"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Equals    bool `cli:"name=e aliases=equals desc='use = as the key-value separator'"`
	ObjSep    bool `cli:"name=s aliases=objsep desc='keep the separator before nested objects'"`
	QuoteVals bool `cli:"name=q aliases=quote desc='always quote string values'"`
	QuoteKeys bool `cli:"name=Q aliases=quote-keys desc='always quote keys'"`
	Tabs      bool `cli:"name=tabs desc='indent with tabs'"`
	Slash     bool `cli:"name=slash desc='write // comments instead of #'"`
	CRLF      bool `cli:"name=crlf desc='use CRLF line endings'"`
	Color     bool `cli:"name=color desc='render with color'"`
	NoColor   bool `cli:"name=no-color desc='never render with color'"`

	Indent              int
	SepBefore, SepAfter int
	SepSpacingSet       bool

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) indentOpt(cc *cli.Context, a string) (any, error) {
	n, err := strconv.Atoi(a)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: -indent wants a non-negative count, got %q", cli.ErrUsage, a)
	}
	cfg.Indent = n
	return n, nil
}

func (cfg *MainConfig) sepSpacingOpt(cc *cli.Context, a string) (any, error) {
	before, after, ok := strings.Cut(a, ",")
	if !ok {
		return nil, fmt.Errorf("%w: -sep-spacing wants before,after", cli.ErrUsage)
	}
	b, err := strconv.Atoi(before)
	if err != nil || b < 0 {
		return nil, fmt.Errorf("%w: -sep-spacing before %q", cli.ErrUsage, before)
	}
	f, err := strconv.Atoi(after)
	if err != nil || f < 0 {
		return nil, fmt.Errorf("%w: -sep-spacing after %q", cli.ErrUsage, after)
	}
	cfg.SepBefore, cfg.SepAfter = b, f
	cfg.SepSpacingSet = true
	return nil, nil
}

func (cfg *MainConfig) renderOpts(w io.Writer) hocon.Options {
	b := hocon.NewBuilder()
	if cfg.Equals {
		b.WithSeparatorCharacter(hocon.Equals)
	}
	if cfg.ObjSep {
		b.WithObjectSeparator(hocon.Included)
	}
	if cfg.QuoteVals {
		b.WithStringQuoting(token.QuoteAlways)
	}
	if cfg.QuoteKeys {
		b.WithKeyQuoting(token.QuoteAlways)
	}
	indentChar, charsPer := hocon.Space, 4
	if cfg.Tabs {
		indentChar, charsPer = hocon.Tab, 1
	}
	if cfg.Indent > 0 {
		charsPer = cfg.Indent
	}
	b.WithIndent(indentChar, charsPer)
	if cfg.Slash {
		b.WithCommentStyle(hocon.DoubleSlash)
	}
	if cfg.CRLF {
		b.WithLineSeparator(hocon.CRLF)
	}
	if cfg.SepSpacingSet {
		b.WithSeparatorSpacing(cfg.SepBefore, cfg.SepAfter)
	}
	if colors := cfg.colors(w); colors != nil {
		b.WithColors(colors)
	}
	return b.Build()
}

// lineSeparator is the line ending matching the rendered output, used
// for the blank line between multiple input files.
func (cfg *MainConfig) lineSeparator() string {
	if cfg.CRLF {
		return hocon.CRLF.Separator()
	}
	return hocon.System.Separator()
}

func (cfg *MainConfig) colors(w io.Writer) *hocon.Colors {
	if cfg.NoColor {
		return nil
	}
	if cfg.Color {
		return hocon.NewColors()
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return hocon.NewColors()
	}
	return nil
}
