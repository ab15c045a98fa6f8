package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in  string
		out Format
		err error
	}{
		{"json", JSONFormat, nil},
		{"j", JSONFormat, nil},
		{"yaml", YAMLFormat, nil},
		{"yml", YAMLFormat, nil},
		{"toml", 0, ErrBadFormat},
		{"", 0, ErrBadFormat},
	}
	for _, tt := range tests {
		f, err := ParseFormat(tt.in)
		if !errors.Is(err, tt.err) {
			t.Errorf("ParseFormat(%q): got error %v, want %v", tt.in, err, tt.err)
			continue
		}
		if err == nil && f != tt.out {
			t.Errorf("ParseFormat(%q) = %s, want %s", tt.in, f, tt.out)
		}
	}
	for _, f := range AllFormats() {
		var back Format
		if err := back.UnmarshalText([]byte(f.String())); err != nil || back != f {
			t.Errorf("%s: got %s, %v", f, back, err)
		}
	}
}
