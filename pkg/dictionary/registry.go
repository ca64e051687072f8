// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dictionary

// Registry is an immutable index over one or more entry tables. It keeps
// pointers into the tables it was built from; callers must not modify the
// tables afterwards.
type Registry struct {
	byName map[string]*Entry
	byTag  map[Tag]*Entry
}

// NewRegistry indexes tables in order by alias and by inner tag. When two
// entries share an alias or a tag the later one wins, so tables appended
// last take precedence.
func NewRegistry(tables ...[]Entry) *Registry {
	n := 0
	for _, t := range tables {
		n += len(t)
	}
	r := &Registry{
		byName: make(map[string]*Entry, n),
		byTag:  make(map[Tag]*Entry, n),
	}
	for _, t := range tables {
		for i := range t {
			e := &t[i]
			r.byName[e.Alias] = e
			r.byTag[e.Tag.Inner()] = e
		}
	}
	return r
}

// ByName implements DataDictionary.
func (r *Registry) ByName(name string) (Entry, bool) {
	e, ok := r.byName[name]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// ByTag implements DataDictionary. Only the inner tag of each entry is
// indexed; a tag that merely falls inside a wildcard range is not found.
func (r *Registry) ByTag(tag Tag) (Entry, bool) {
	e, ok := r.byTag[tag]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Len returns the number of distinct aliases indexed.
func (r *Registry) Len() int {
	return len(r.byName)
}
