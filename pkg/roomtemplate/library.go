package roomtemplate

import "fmt"

// Library is the fixed catalogue of room templates together with every
// precomputed way any two of them can be docked door to door. It is
// built once (NewLibrary) and treated as read-only afterwards; the
// crawler consults it but never mutates it.
type Library struct {
	templates []*RoomTemplate
	byID      map[int]*RoomTemplate
}

// NewLibrary constructs the fixed 16-template catalogue and computes
// every pairwise Combination up front. This is the only place template
// IDs are assigned, by insertion order starting at 0.
func NewLibrary() *Library {
	l := &Library{
		byID: make(map[int]*RoomTemplate),
	}
	for i, t := range newTemplates() {
		t.ID = i
		l.templates = append(l.templates, t)
		l.byID[i] = t
	}
	computeCombinations(l.templates)
	return l
}

// Templates returns the full catalogue in ID order. The returned slice
// must not be mutated by callers.
func (l *Library) Templates() []*RoomTemplate {
	return l.templates
}

// Template returns the template with the given ID. It panics if id is
// out of range, since any caller holding an ID must have gotten it from
// this same Library.
func (l *Library) Template(id int) *RoomTemplate {
	t, ok := l.byID[id]
	if !ok {
		panic(fmt.Sprintf("roomtemplate: no template with id %d", id))
	}
	return t
}

// OfType returns every template of the given RoomType, in catalogue
// order.
func (l *Library) OfType(rt RoomType) []*RoomTemplate {
	var out []*RoomTemplate
	for _, t := range l.templates {
		if t.RoomType == rt {
			out = append(out, t)
		}
	}
	return out
}

// Len returns the number of templates in the catalogue.
func (l *Library) Len() int {
	return len(l.templates)
}
