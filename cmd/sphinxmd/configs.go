package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/scott-cotton/cli"
	"github.com/signadot/sphinxmd/encode"
	"github.com/signadot/sphinxmd/filter"
	"github.com/signadot/sphinxmd/format"
)

type MainConfig struct {
	Config  string `cli:"name=config desc='filter configuration file (yaml)'"`
	Compact bool   `cli:"name=compact desc='output compact json'"`
	Quiet   bool   `cli:"name=q desc='do not print diagnostics'"`
	Verbose bool   `cli:"name=v desc='print a summary of each run on stderr'"`
	Color   bool   `cli:"name=color desc='color diagnostics and diffs'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	// Err receives diagnostics and summaries.
	Err io.Writer

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) errOut() io.Writer {
	if cfg.Err == nil {
		return os.Stderr
	}
	return cfg.Err
}

func (cfg *MainConfig) inFormat() format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	return format.JSONFormat
}

func (cfg *MainConfig) encOpts() []encode.EncodeOption {
	fmat := format.JSONFormat
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.Compact(cfg.Compact),
	}
}

// colors reports whether w should get color, -color forcing it on.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) logger() zerolog.Logger {
	if cfg.Quiet {
		return zerolog.Nop()
	}
	w := cfg.errOut()
	return zerolog.New(zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      !cfg.colors(w),
		PartsExclude: []string{zerolog.TimestampFieldName},
	})
}

func (cfg *MainConfig) filter() (*filter.Filter, error) {
	fc := filter.DefaultConfig()
	if cfg.Config != "" {
		var err error
		fc, err = filter.LoadConfig(cfg.Config)
		if err != nil {
			return nil, err
		}
	}
	return filter.New(filter.WithConfig(fc), filter.WithLogger(cfg.logger())), nil
}

type FilterConfig struct {
	*MainConfig

	Filter *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type RefsConfig struct {
	*MainConfig
	Raw bool `cli:"name=raw desc='print identifiers only'"`

	Refs *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Patch   bool `cli:"name=patch desc='print a json merge patch instead of a line diff'"`
	Context int  `cli:"name=context desc='unchanged lines shown around changes'"`

	Diff *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}
