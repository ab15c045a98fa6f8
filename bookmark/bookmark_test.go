package bookmark

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/sphinxmd/ast"
)

func TestAnchor(t *testing.T) {
	tests := []struct {
		id, text string
		out      string
	}{
		{"foobar", "Foo Bar", "#foo-bar"},
		{"FooBar", " Foo Bar ", "#foo-bar"},
		{"install", "Installing the SDK", "#installing-the-sdk"},
		{"release-notes", "1.2 Release Notes", "#h-12-release-notes"},
		{"12", "1.2", "#h-12"},
		// text equal to its identifier keeps its dots
		{"1.2", "1.2", "#1.2"},
		// a single digit is not a numbered heading
		{"x", "7", "#7"},
	}
	for _, tt := range tests {
		if got := Anchor(tt.id, tt.text); got != tt.out {
			t.Errorf("Anchor(%q, %q) = %q, want %q", tt.id, tt.text, got, tt.out)
		}
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"Missing", "#missing"},
		{"fooBarBaz", "#foo-bar-baz"},
		{"HTTPServer", "#httpserver"},
		{"getURL", "#get-url"},
		{"foo-bar", "#foo-bar"},
		{"", "#"},
		{"ÉtatCivil", "#état-civil"},
	}
	for _, tt := range tests {
		if got := Slug(tt.in); got != tt.out {
			t.Errorf("Slug(%q) = %q, want %q", tt.in, got, tt.out)
		}
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	caption := ast.FromWords("Foo Bar")
	r.Set("foo-bar", FromHeader("foo-bar", caption))
	r.Set("a", Bookmark{Anchor: "#first"})
	r.Set("a", Bookmark{Anchor: "#second"})

	b, ok := r.Lookup("foo-bar")
	if !ok {
		t.Fatal("foo-bar not registered")
	}
	want := Bookmark{Caption: caption, Anchor: "#foo-bar"}
	if diff := cmp.Diff(want, b); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if b, _ := r.Lookup("a"); b.Anchor != "#second" {
		t.Errorf("later entry should win, got %q", b.Anchor)
	}
	if diff := cmp.Diff([]string{"a", "foo-bar"}, r.IDs()); diff != "" {
		t.Errorf("ids (-want +got):\n%s", diff)
	}
	if _, ok := r.Lookup("missing"); ok {
		t.Error("unexpected hit")
	}
	var nilReg *Registry
	if _, ok := nilReg.Lookup("a"); ok || nilReg.Len() != 0 {
		t.Error("nil registry should be empty")
	}
}
