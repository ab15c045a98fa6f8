package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/sphinxmd/encode"
)

func filterCmd(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		return err
	}
	f, err := cfg.filter()
	if err != nil {
		return err
	}
	return eachInput(cfg.MainConfig, cc, args, func(in *input) error {
		res, err := f.Run(in.doc)
		if err != nil {
			return err
		}
		d, err := encode.Bytes(res.Doc, cfg.encOpts()...)
		if err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		if _, err := cc.Out.Write(d); err != nil {
			return err
		}
		cfg.summarize(in, res, len(d))
		return nil
	})
}
