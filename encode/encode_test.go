package encode

import (
	"strings"
	"testing"

	"github.com/signadot/sphinxmd/ast"
	"github.com/signadot/sphinxmd/format"
)

func testDoc() *ast.Document {
	return &ast.Document{
		APIVersion: []int{1, 23, 1},
		Blocks:     []ast.Block{ast.NewPara(ast.FromWords("hi there")...)},
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		opts []EncodeOption
		out  string
	}{
		{
			name: "compact",
			opts: []EncodeOption{Compact(true)},
			out:  `{"pandoc-api-version":[1,23,1],"meta":{},"blocks":[{"t":"Para","c":[{"t":"Str","c":"hi"},{"t":"Space"},{"t":"Str","c":"there"}]}]}`,
		},
		{
			name: "indent",
			opts: []EncodeOption{Indent(1)},
			out: `{
 "pandoc-api-version": [
  1,
  23,
  1
 ],
 "meta": {},
 "blocks": [
  {
   "t": "Para",
   "c": [
    {
     "t": "Str",
     "c": "hi"
    },
    {
     "t": "Space"
    },
    {
     "t": "Str",
     "c": "there"
    }
   ]
  }
 ]
}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MustString(testDoc(), tt.opts...); got != tt.out {
				t.Errorf("got\n%s\nwant\n%s", got, tt.out)
			}
		})
	}
}

func TestEncodeYAML(t *testing.T) {
	got := MustString(testDoc(), EncodeFormat(format.YAMLFormat))
	for _, want := range []string{"pandoc-api-version:", "blocks:", "t: Para", "c: hi"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in\n%s", want, got)
		}
	}
	if FormatFromOpts(EncodeFormat(format.YAMLFormat)) != format.YAMLFormat {
		t.Error("format not recorded")
	}
}
