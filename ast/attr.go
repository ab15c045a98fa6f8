package ast

import "slices"

type KV struct {
	Key   string
	Value string
}

// Attr is the identifier, class set and key/value properties carried by
// headers, divs, spans, code and a few table parts.
type Attr struct {
	ID      string
	Classes []string
	KVs     []KV
}

func (a Attr) HasClass(c string) bool {
	return slices.Contains(a.Classes, c)
}

func (a Attr) Get(key string) (string, bool) {
	for _, kv := range a.KVs {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// WithClass returns a copy of a with c appended unless already present.
func (a Attr) WithClass(c string) Attr {
	if a.HasClass(c) {
		return a
	}
	a.Classes = append(slices.Clone(a.Classes), c)
	return a
}

func (a Attr) WithoutClass(c string) Attr {
	a.Classes = slices.DeleteFunc(slices.Clone(a.Classes), func(x string) bool { return x == c })
	return a
}

// ReplaceClass returns a copy of a where class from is replaced in place by
// to. If to is already present, from is only removed.
func (a Attr) ReplaceClass(from, to string) Attr {
	if !a.HasClass(from) {
		return a
	}
	if a.HasClass(to) {
		return a.WithoutClass(from)
	}
	a.Classes = slices.Clone(a.Classes)
	for i, c := range a.Classes {
		if c == from {
			a.Classes[i] = to
		}
	}
	return a
}

func (a Attr) Clone() Attr {
	return Attr{
		ID:      a.ID,
		Classes: slices.Clone(a.Classes),
		KVs:     slices.Clone(a.KVs),
	}
}
