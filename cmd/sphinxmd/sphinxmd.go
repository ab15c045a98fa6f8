package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/sphinxmd/encode"
)

func sphinxmdMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		if sub := cfg.Main.FindSub(cc, args[0]); sub != nil {
			err = sub.Run(cc, args[1:])
			if errors.Is(err, cli.ErrUsage) {
				sub.Usage(cc, err)
				os.Exit(sub.Exit(cc, err))
			}
			return err
		}
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: expected at most a pandoc output format, got %v", cli.ErrUsage, args)
	}
	return pandocFilter(cfg, cc)
}

// pandocFilter rewrites the json document on cc.In to cc.Out. Pandoc reads
// the result back, so the output is always compact json.
func pandocFilter(cfg *MainConfig, cc *cli.Context) error {
	f, err := cfg.filter()
	if err != nil {
		return err
	}
	in, err := readInput(cfg, "-", cc.In)
	if err != nil {
		return err
	}
	res, err := f.Run(in.doc)
	if err != nil {
		return fmt.Errorf("error filtering: %w", err)
	}
	d, err := encode.Bytes(res.Doc, encode.Compact(true))
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	if _, err := cc.Out.Write(d); err != nil {
		return err
	}
	cfg.summarize(in, res, len(d))
	return nil
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
