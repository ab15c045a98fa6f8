package main

import (
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
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "sphinxmd").
		WithSynopsis("sphinxmd [opts] [FORMAT] | sphinxmd [opts] command [opts]").
		WithDescription(mainDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sphinxmdMain(cfg, cc, args)
		}).
		WithSubs(
			FilterCommand(cfg),
			DumpCommand(cfg),
			RefsCommand(cfg),
			DiffCommand(cfg),
			CheckCommand(cfg))
}

const mainDescription = `sphinxmd is a pandoc filter for documents read from Sphinx reStructuredText.

Run without a command, sphinxmd follows the pandoc filter protocol: it reads
the JSON document on standard input and writes the rewritten document to
standard output. The optional FORMAT argument is the output format pandoc
passes to filters; it is ignored.

  pandoc -f rst -t markdown --filter sphinxmd index.rst

The rewrite repairs headings with unrecognised underlines, resolves
references to headings, unwraps block quotes, turns admonitions, version
notes and js:function directives into markdown friendly blocks and turns
field lists into Arguments, Returns and Return Types sections.

Configuration

-config names a yaml file overriding the defaults:

  warningMarker: "{.is-warning}"
  lineIndent: "&nbsp;&nbsp;&nbsp;&nbsp;&nbsp;&nbsp;&nbsp;&nbsp;"
  lineBreak: "<br/>\n"
  unwrapQuotes: true
  fieldListsInAPIOnly: false
  languages:
    objective-c: objc
  containers:
    admonition: note
  sections:
    arguments: Arguments
    returns: Returns
    returnTypes: Return Types`

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Filter, "filter").
		WithAliases("f").
		WithSynopsis("filter [files]").
		WithDescription("rewrite pandoc json documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return filterCmd(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [files]").
		WithDescription("decode and re-encode pandoc documents without rewriting them").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func RefsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RefsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Refs, "refs").
		WithAliases("r").
		WithSynopsis("refs [-raw] [files]").
		WithDescription("list the reference targets of documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return refs(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, Context: 3}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [-patch] [-context n] [files]").
		WithDescription("show what the rewrite changes; exits 1 when it changes anything").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [files]").
		WithDescription("report unresolved references; exits 1 when there are any").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}
