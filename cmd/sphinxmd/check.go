package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	f, err := cfg.filter()
	if err != nil {
		return err
	}
	unresolved := 0
	err = eachInput(cfg.MainConfig, cc, args, func(in *input) error {
		res, err := f.Run(in.doc)
		if err != nil {
			return err
		}
		for _, ref := range res.Stats.Unresolved {
			fmt.Fprintf(cc.Out, "%s: unresolved reference %q\n", in.name, ref)
		}
		unresolved += len(res.Stats.Unresolved)
		return nil
	})
	if err != nil {
		return err
	}
	if unresolved != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
