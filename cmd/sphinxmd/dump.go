package main

import (
	"github.com/scott-cotton/cli"
	"github.com/signadot/sphinxmd/encode"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachInput(cfg.MainConfig, cc, args, func(in *input) error {
		return encode.Encode(in.doc, cc.Out, cfg.encOpts()...)
	})
}
