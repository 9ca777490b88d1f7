package flow

import "fmt"

// NodeKind discriminates flowchart nodes.
type NodeKind uint8

const (
	NodeStart NodeKind = iota
	NodeDecision
	NodeAction
)

// Node is one flowchart box on a column/row grid: start on top, decisions
// down the center column, each yes action to the right of its decision, the
// else action to the left of the last decision.
type Node struct {
	Kind   NodeKind
	Label  string
	Col    int
	Row    int
	Active bool
}

// Edge connects two nodes by index into Chart.Nodes. Active edges lie on
// the taken path.
type Edge struct {
	From   int
	To     int
	Label  string
	Active bool
}

// Chart is a laid-out decision flowchart for one set of condition values.
type Chart struct {
	Nodes    []Node
	Edges    []Edge
	Selected int
}

// Chart lays out d for values. Nodes and edges along the taken path carry
// Active; a decision is active when the walkthrough reaches it, its yes
// action only when it is the one chosen.
func (d Decision) Chart(values []bool) Chart {
	selected := d.SelectedIndex(values)
	nodes := []Node{{Kind: NodeStart, Label: "start", Col: 1, Row: 0, Active: true}}
	var edges []Edge
	prev := 0
	for i, b := range d.Branches {
		visited := i <= selected
		into := ""
		if i > 0 {
			into = "no"
		}
		di := len(nodes)
		nodes = append(nodes, Node{Kind: NodeDecision, Label: b.Label, Col: 1, Row: i + 1, Active: visited})
		edges = append(edges, Edge{From: prev, To: di, Label: into, Active: visited})

		ai := len(nodes)
		nodes = append(nodes, Node{Kind: NodeAction, Label: b.Yes.Label, Col: 2, Row: i + 1, Active: selected == i})
		edges = append(edges, Edge{From: di, To: ai, Label: "yes", Active: selected == i})
		prev = di
	}
	row := len(d.Branches)
	if row == 0 {
		row = 1
	}
	ei := len(nodes)
	nodes = append(nodes, Node{Kind: NodeAction, Label: d.Else.Label, Col: 0, Row: row, Active: selected == len(d.Branches)})
	edges = append(edges, Edge{From: prev, To: ei, Label: "no", Active: selected == len(d.Branches)})
	return Chart{Nodes: nodes, Edges: edges, Selected: selected}
}

// ChartLine is one row of the textual flowchart.
type ChartLine struct {
	Text   string
	Active bool
}

// Lines renders d for values as plain text, top to bottom, with the taken
// path marked active. Front ends decorate active lines with their accent
// style.
func (d Decision) Lines(values []bool) []ChartLine {
	selected := d.SelectedIndex(values)
	lines := []ChartLine{{Text: "● start", Active: true}}
	for i, b := range d.Branches {
		truth := i < len(values) && values[i]
		lines = append(lines, ChartLine{
			Text:   fmt.Sprintf("◆ %s (%t)", b.Label, truth),
			Active: i <= selected,
		})
		lines = append(lines, ChartLine{
			Text:   "    yes → " + b.Yes.Display,
			Active: selected == i,
		})
	}
	lines = append(lines, ChartLine{
		Text:   "└ else → " + d.Else.Display,
		Active: selected == len(d.Branches),
	})
	return lines
}
