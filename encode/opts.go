package encode

import "github.com/signadot/sphinxmd/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// Compact drops indentation from JSON output. It has no effect on YAML.
func Compact(v bool) EncodeOption {
	return func(es *EncState) { es.compact = v }
}

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
