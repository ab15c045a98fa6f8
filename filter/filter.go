// Package filter rewrites the pandoc tree of a Sphinx document into the
// shape expected by a simplified markdown renderer.
//
// A run is three full walks over the document, in order:
//
//   - title repair splits paragraphs holding a heading whose underline
//     was not recognised;
//   - bookmark collection records every heading in a bookmark.Registry;
//   - the rewrite handles block quotes, directive containers, references,
//     code blocks, tables, soft breaks and field lists, resolving
//     references against the registry.
//
// Directive containers are Divs dispatched by class to a ContainerOp, see
// RegisterContainer.
package filter

import (
	"github.com/rs/zerolog"
	"github.com/signadot/sphinxmd/ast"
	"github.com/signadot/sphinxmd/bookmark"
	"github.com/signadot/sphinxmd/debug"
)

type Filter struct {
	cfg *Config
	log zerolog.Logger
}

type Option func(*Filter)

// WithLogger sets the logger diagnostics are written to.
func WithLogger(l zerolog.Logger) Option {
	return func(f *Filter) { f.log = l }
}

func WithConfig(c *Config) Option {
	return func(f *Filter) { f.cfg = c }
}

func New(opts ...Option) *Filter {
	f := &Filter{cfg: DefaultConfig(), log: zerolog.Nop()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Filter) Config() *Config {
	return f.cfg
}

// Stats counts what a run changed.
type Stats struct {
	Titles     int
	Bookmarks  int
	Refs       int
	Unresolved []string
	Functions  int
	FieldLists int
	Containers map[string]int
}

type Result struct {
	Doc       *ast.Document
	Bookmarks *bookmark.Registry
	Stats     Stats
}

// Run applies title repair, bookmark collection and the rewrite to doc.
// doc is left unchanged.
func (f *Filter) Run(doc *ast.Document) (*Result, error) {
	s := f.newState(nil)
	repaired, err := s.repairTitles(doc)
	if err != nil {
		return nil, err
	}
	s.reg = s.collectBookmarks(repaired)
	out, err := s.rewrite(repaired)
	if err != nil {
		return nil, err
	}
	if debug.Rewrite() {
		debug.LogAny(s.stats)
	}
	return &Result{Doc: out, Bookmarks: s.reg, Stats: *s.stats}, nil
}

// RepairTitles runs title repair alone.
func (f *Filter) RepairTitles(doc *ast.Document) (*ast.Document, error) {
	return f.newState(nil).repairTitles(doc)
}

// Bookmarks returns the registry built from the headings of doc, without
// title repair.
func (f *Filter) Bookmarks(doc *ast.Document) *bookmark.Registry {
	return f.newState(nil).collectBookmarks(doc)
}

// Rewrite runs the rewrite alone, resolving references against reg.
func (f *Filter) Rewrite(doc *ast.Document, reg *bookmark.Registry) (*ast.Document, error) {
	return f.newState(reg).rewrite(doc)
}

// State is what container ops see of a running rewrite.
type State struct {
	cfg   *Config
	log   zerolog.Logger
	reg   *bookmark.Registry
	stats *Stats

	// references whose caption is being rewritten
	resolving map[string]bool
}

func (f *Filter) newState(reg *bookmark.Registry) *State {
	if reg == nil {
		reg = bookmark.NewRegistry()
	}
	return &State{
		cfg:   f.cfg,
		log:   f.log,
		reg:   reg,
		stats: &Stats{Containers: map[string]int{}},

		resolving: map[string]bool{},
	}
}

func (s *State) Config() *Config {
	return s.cfg
}

func (s *State) Logger() *zerolog.Logger {
	return &s.log
}

func (s *State) Bookmarks() *bookmark.Registry {
	return s.reg
}
