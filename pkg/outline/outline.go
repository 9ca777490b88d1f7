// Package outline derives the course plan from the chapter catalog: a
// directed graph of prerequisite edges, a stabilized topological order, and
// a printable outline. A prerequisite cycle is a content bug and surfaces
// as an error naming the chapters involved.
package outline

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/vanderheijden86/primer/pkg/chapter"
	"github.com/vanderheijden86/primer/pkg/debug"
)

// Outline is the prerequisite graph over one registry's chapters.
type Outline struct {
	g        *simple.DirectedGraph
	reg      *chapter.Registry
	keyToID  map[string]int64
	idToKey  map[int64]string
	prereqs  map[string][]string
	displays map[string]int
}

// Build assembles the prerequisite graph. Node IDs follow display order, so
// the stabilized sort breaks ties the way the selector lists chapters.
// Edges run prerequisite -> chapter. Prerequisite entries naming unknown
// chapters (or a chapter itself) are dropped with a debug log line; they
// cannot gate anything the registry does not hold.
func Build(reg *chapter.Registry, prereqs map[string][]string) *Outline {
	o := &Outline{
		g:        simple.NewDirectedGraph(),
		reg:      reg,
		keyToID:  make(map[string]int64, reg.Len()),
		idToKey:  make(map[int64]string, reg.Len()),
		prereqs:  make(map[string][]string, len(prereqs)),
		displays: make(map[string]int, reg.Len()),
	}

	pos := 0
	for d := range reg.All() {
		n := o.g.NewNode()
		o.g.AddNode(n)
		o.keyToID[d.Key] = n.ID()
		o.idToKey[n.ID()] = d.Key
		o.displays[d.Key] = pos
		pos++
	}

	for key, required := range prereqs {
		to, ok := o.keyToID[key]
		if !ok {
			debug.Log("outline: dropping prerequisites for unknown chapter %q", key)
			continue
		}
		for _, req := range required {
			from, ok := o.keyToID[req]
			if !ok {
				debug.Log("outline: chapter %q requires unknown chapter %q", key, req)
				continue
			}
			if from == to {
				debug.Log("outline: chapter %q requires itself", key)
				continue
			}
			o.g.SetEdge(o.g.NewEdge(o.g.Node(from), o.g.Node(to)))
			o.prereqs[key] = append(o.prereqs[key], req)
		}
	}
	for key := range o.prereqs {
		sort.Slice(o.prereqs[key], func(i, j int) bool {
			return o.displays[o.prereqs[key][i]] < o.displays[o.prereqs[key][j]]
		})
	}

	return o
}

// Prerequisites returns the kept prerequisite keys for one chapter, in
// display order.
func (o *Outline) Prerequisites(key string) []string {
	return o.prereqs[key]
}

// Order returns every chapter key in an order satisfying all prerequisite
// edges. Chapters with no ordering constraint between them keep their
// display order. A cycle yields an error naming the chapters on it.
func (o *Outline) Order() ([]string, error) {
	sorted, err := topo.SortStabilized(o.g, nil)
	if err != nil {
		var unorderable topo.Unorderable
		if errors.As(err, &unorderable) {
			return nil, fmt.Errorf("prerequisite cycle through %s", strings.Join(o.cycleKeys(unorderable), ", "))
		}
		return nil, err
	}

	order := make([]string, len(sorted))
	for i, n := range sorted {
		order[i] = o.idToKey[n.ID()]
	}
	return order, nil
}

// cycleKeys flattens the strongly connected components a failed sort
// reports into chapter keys, display-ordered for a stable message.
func (o *Outline) cycleKeys(unorderable topo.Unorderable) []string {
	var keys []string
	for _, scc := range unorderable {
		for _, n := range scc {
			keys = append(keys, o.idToKey[n.ID()])
		}
	}
	sort.Slice(keys, func(i, j int) bool { return o.displays[keys[i]] < o.displays[keys[j]] })
	return keys
}

// Render writes the numbered course plan with prerequisite annotations.
func (o *Outline) Render(w io.Writer) error {
	order, err := o.Order()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Course outline (%d chapters)\n\n", len(order))
	for i, key := range order {
		d, ok := o.reg.Lookup(key)
		if !ok {
			return fmt.Errorf("outline holds unknown chapter key %q", key)
		}
		line := fmt.Sprintf("%2d. %-28s (%s)", i+1, d.Title, d.Key)
		if required := o.prereqs[key]; len(required) > 0 {
			line += "  after: " + strings.Join(required, ", ")
		}
		fmt.Fprintln(w, line)
	}
	return nil
}
