// Package chapter defines the chapter catalog: descriptors identifying each
// teaching chapter and the immutable registry the session runtime reads.
package chapter

import (
	"iter"

	"github.com/vanderheijden86/primer/pkg/debug"
	"github.com/vanderheijden86/primer/pkg/doc"
)

// Descriptor identifies one chapter: a stable unique key, a display title,
// and the entry callable producing its document. Entry is invoked only
// while a session is inside the chapter, never during registry construction
// or selection.
type Descriptor struct {
	Key   string
	Title string
	Entry func() *doc.Document
}

// Registry is the fixed, display-ordered chapter catalog. It is immutable
// after Build and safe to share by reference without synchronization.
type Registry struct {
	descriptors []Descriptor
	byKey       map[string]int
}

// Build assembles the registry in display order. It is infallible: empty
// input yields an empty registry. Duplicate keys keep the first occurrence;
// later ones are dropped and debug-logged.
func Build(descriptors ...Descriptor) *Registry {
	reg := &Registry{
		descriptors: make([]Descriptor, 0, len(descriptors)),
		byKey:       make(map[string]int, len(descriptors)),
	}
	for _, d := range descriptors {
		if _, dup := reg.byKey[d.Key]; dup {
			debug.Log("registry: dropping duplicate chapter key %q", d.Key)
			continue
		}
		reg.byKey[d.Key] = len(reg.descriptors)
		reg.descriptors = append(reg.descriptors, d)
	}
	return reg
}

// Lookup returns the descriptor for key, or false if no chapter has it.
func (r *Registry) Lookup(key string) (Descriptor, bool) {
	i, ok := r.byKey[key]
	if !ok {
		return Descriptor{}, false
	}
	return r.descriptors[i], true
}

// All returns the descriptors in display order as a restartable sequence.
func (r *Registry) All() iter.Seq[Descriptor] {
	return func(yield func(Descriptor) bool) {
		for _, d := range r.descriptors {
			if !yield(d) {
				return
			}
		}
	}
}

// Len returns the number of chapters.
func (r *Registry) Len() int {
	return len(r.descriptors)
}
