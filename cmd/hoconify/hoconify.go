package main

import (
	"fmt"
	"io"
	"os"

	"github.com/DenWav/Configurate/hocon"
	"github.com/DenWav/Configurate/load"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "indent",
			Description: "characters per indent level (default 4, 1 with -tabs)",
			Type:        cli.NamedFuncOpt(cfg.indentOpt, "(count)"),
		},
		&cli.Opt{
			Name:        "sep-spacing",
			Description: "spaces around the separator (default 0,1)",
			Type:        cli.NamedFuncOpt(cfg.sepSpacingOpt, "(before,after)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "hoconify").
		WithSynopsis("hoconify [opts] [files]").
		WithDescription("hoconify renders YAML or JSON configuration as HOCON-style text.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return hoconify(cfg, cc, args)
		})
}

func hoconify(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return renderReader(cfg, cc.Out, cc.In)
	}
	return renderFiles(cfg, cc.Out, args)
}

func renderFiles(cfg *MainConfig, w io.Writer, files []string) error {
	for i, file := range files {
		if err := renderFile(cfg, w, file); err != nil {
			return err
		}
		if i < len(files)-1 {
			if _, err := io.WriteString(w, cfg.lineSeparator()); err != nil {
				return err
			}
		}
	}
	return nil
}

func renderFile(cfg *MainConfig, w io.Writer, file string) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := renderReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func renderReader(cfg *MainConfig, w io.Writer, r io.Reader) error {
	node, err := load.Reader(r)
	if err != nil {
		return err
	}
	return hocon.RenderTo(w, node, cfg.renderOpts(w))
}
