// Package bookmark holds the heading registry used to resolve `:ref:`
// cross references, and the two anchor rules: the one derived from a
// heading and the fallback slug computed from a bare reference.
package bookmark

import (
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/signadot/sphinxmd/ast"
)

type Bookmark struct {
	Caption []ast.Inline
	Anchor  string
}

// Registry maps heading identifiers to bookmarks. It is built by a single
// pass over a document and read by later passes; it is not safe for
// concurrent writers.
type Registry struct {
	d map[string]Bookmark
}

func NewRegistry() *Registry {
	return &Registry{d: map[string]Bookmark{}}
}

// Set records b under id, replacing any earlier entry.
func (r *Registry) Set(id string, b Bookmark) {
	r.d[id] = b
}

func (r *Registry) Lookup(id string) (Bookmark, bool) {
	if r == nil {
		return Bookmark{}, false
	}
	b, ok := r.d[id]
	return b, ok
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.d)
}

// IDs returns the registered identifiers in lexical order.
func (r *Registry) IDs() []string {
	if r == nil {
		return nil
	}
	res := make([]string, 0, len(r.d))
	for id := range r.d {
		res = append(res, id)
	}
	slices.Sort(res)
	return res
}

var numbered = regexp.MustCompile(`^[0-9].+`)

// FromHeader computes the bookmark for a heading with identifier id and
// content caption.
func FromHeader(id string, caption []ast.Inline) Bookmark {
	return Bookmark{Caption: caption, Anchor: Anchor(id, ast.Stringify(caption...))}
}

// Anchor returns the link target of a heading whose flattened text is text.
// Headings whose text is their identifier, modulo spaces, keep the plain
// dashed form. Other headings starting with a digit get an "h-" prefix with
// dots removed.
func Anchor(id, text string) string {
	text = strings.TrimSpace(text)
	dashed := strings.ReplaceAll(text, " ", "-")
	if strings.ReplaceAll(text, " ", "") == id || !numbered.MatchString(text) {
		return "#" + strings.ToLower(dashed)
	}
	return "#h-" + strings.ToLower(strings.ReplaceAll(dashed, ".", ""))
}

// Slug is the anchor of an unresolved reference: every upper case letter
// starts a new dash separated segment unless it follows another upper case
// letter or opens the text. All letters are lower cased.
func Slug(ref string) string {
	b := &strings.Builder{}
	b.WriteByte('#')
	last := -1
	i := 0
	for _, r := range ref {
		if unicode.IsUpper(r) {
			if i != 0 && last != i-1 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			last = i
		} else {
			b.WriteRune(r)
		}
		i++
	}
	return b.String()
}
