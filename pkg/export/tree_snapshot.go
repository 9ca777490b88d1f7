// Package export renders static snapshots of expression trees (SVG or PNG)
// with a summary block: the rendered expression, its value, how many
// reduction steps it takes, and the next subterm to reduce marked in an
// accent colour. Snapshots give learners something to print or share
// without opening a session.
package export

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"git.sr.ht/~sbinet/gg"
	"github.com/ajstarks/svgo"
	"golang.org/x/image/font/basicfont"

	"github.com/vanderheijden86/primer/pkg/expr"
	"github.com/vanderheijden86/primer/pkg/logic"
)

// SnapshotOptions controls tree snapshot export behaviour.
type SnapshotOptions struct {
	Path   string // Output path; format inferred from extension when Format empty
	Format string // "svg" or "png" (case-insensitive). If empty, inferred from Path.
	Title  string // Optional title rendered in the summary block
	Source string // Expression text, e.g. "(3+4)*2" or "true and not false"
	Logic  bool   // Parse Source with the boolean engine instead of arithmetic
}

// SaveTreeSnapshot parses the expression, lays its tree out and writes a
// static image. The next reducible subterm gets the accent fill, the way a
// stepper widget would mark it.
func SaveTreeSnapshot(opts SnapshotOptions) error {
	if strings.TrimSpace(opts.Source) == "" {
		return fmt.Errorf("no expression to render")
	}

	format := strings.ToLower(strings.TrimPrefix(opts.Format, "."))
	if format == "" {
		switch strings.ToLower(filepath.Ext(opts.Path)) {
		case ".svg":
			format = "svg"
		case ".png":
			format = "png"
		default:
			format = "svg" // safe default
			if opts.Path != "" && filepath.Ext(opts.Path) == "" {
				opts.Path = opts.Path + ".svg"
			}
		}
	}
	if format != "svg" && format != "png" {
		return fmt.Errorf("unsupported format %q (want svg or png)", format)
	}
	if opts.Path == "" {
		return fmt.Errorf("output path is required")
	}

	layout, err := buildLayout(opts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return fmt.Errorf("create parent dir: %w", err)
	}

	switch format {
	case "svg":
		return renderSVG(opts.Path, layout)
	case "png":
		return renderPNG(opts.Path, layout)
	default:
		return fmt.Errorf("unhandled format %q", format)
	}
}

// --- layout computation ----------------------------------------------------

const (
	nodeW        = 76.0
	nodeH        = 40.0
	colGap       = 28.0
	rowGap       = 46.0
	padding      = 36.0
	headerHeight = 120.0
)

type layoutNode struct {
	Label     string
	Highlight bool
	Leaf      bool
	X, Y      float64
}

// layoutEdge joins parent to child by node index.
type layoutEdge struct {
	From int
	To   int
}

type layoutResult struct {
	Nodes   []layoutNode
	Edges   []layoutEdge
	Width   int
	Height  int
	Header  float64
	Summary summaryInfo
}

type summaryInfo struct {
	Title    string
	Rendered string
	Value    string
	Steps    int
}

func buildLayout(opts SnapshotOptions) (layoutResult, error) {
	var (
		nodes    []layoutNode
		edges    []layoutEdge
		rendered string
		value    string
		steps    int
	)

	if opts.Logic {
		e, err := logic.Parse(opts.Source)
		if err != nil {
			return layoutResult{}, fmt.Errorf("parse %q: %w", opts.Source, err)
		}
		trace, err := logic.Steps(e)
		if err != nil {
			return layoutResult{}, fmt.Errorf("reduce %q: %w", opts.Source, err)
		}
		highlight, _ := logic.FindReducible(e)
		flattenLogic(logic.Tree(e, highlight), -1, &nodes, &edges)
		rendered = logic.Render(e)
		value = logic.Render(trace[len(trace)-1].Expr)
		steps = len(trace) - 1
	} else {
		e, err := expr.Parse(opts.Source)
		if err != nil {
			return layoutResult{}, fmt.Errorf("parse %q: %w", opts.Source, err)
		}
		trace, err := expr.Steps(e)
		if err != nil {
			return layoutResult{}, fmt.Errorf("reduce %q: %w", opts.Source, err)
		}
		highlight, _ := expr.FindReducible(e)
		flattenExpr(expr.Tree(e, highlight), -1, &nodes, &edges)
		rendered = expr.Render(e)
		value = expr.Render(trace[len(trace)-1].Expr)
		steps = len(trace) - 1
	}

	maxX, maxY := 0.0, 0.0
	for _, n := range nodes {
		if n.X > maxX {
			maxX = n.X
		}
		if n.Y > maxY {
			maxY = n.Y
		}
	}

	width := int(maxX + nodeW + padding)
	if width < 640 {
		width = 640
	}
	height := int(maxY + nodeH + padding)
	if height < 420 {
		height = 420
	}

	title := strings.TrimSpace(opts.Title)
	if title == "" {
		if opts.Logic {
			title = "Boolean expression snapshot"
		} else {
			title = "Expression snapshot"
		}
	}

	return layoutResult{
		Nodes:  nodes,
		Edges:  edges,
		Width:  width,
		Height: height,
		Header: headerHeight,
		Summary: summaryInfo{
			Title:    title,
			Rendered: truncate(rendered, 72),
			Value:    value,
			Steps:    steps,
		},
	}, nil
}

// flattenExpr places each tree node on the column/row grid the layout engine
// assigned and records parent-child edges by index.
func flattenExpr(n *expr.Node, parent int, nodes *[]layoutNode, edges *[]layoutEdge) {
	idx := len(*nodes)
	*nodes = append(*nodes, layoutNode{
		Label:     n.Label,
		Highlight: n.Highlight,
		Leaf:      len(n.Children) == 0,
		X:         padding + float64(n.X)*(nodeW+colGap),
		Y:         padding + headerHeight + float64(n.Depth)*(nodeH+rowGap),
	})
	if parent >= 0 {
		*edges = append(*edges, layoutEdge{From: parent, To: idx})
	}
	for _, c := range n.Children {
		flattenExpr(c, idx, nodes, edges)
	}
}

func flattenLogic(n *logic.Node, parent int, nodes *[]layoutNode, edges *[]layoutEdge) {
	idx := len(*nodes)
	*nodes = append(*nodes, layoutNode{
		Label:     n.Label,
		Highlight: n.Highlight,
		Leaf:      len(n.Children) == 0,
		X:         padding + float64(n.X)*(nodeW+colGap),
		Y:         padding + headerHeight + float64(n.Depth)*(nodeH+rowGap),
	})
	if parent >= 0 {
		*edges = append(*edges, layoutEdge{From: parent, To: idx})
	}
	for _, c := range n.Children {
		flattenLogic(c, idx, nodes, edges)
	}
}

// --- rendering -------------------------------------------------------------

var (
	colorLiteral  = color.RGBA{0xc8, 0xe6, 0xc9, 0xff}
	colorOperator = color.RGBA{0xe3, 0xf2, 0xfd, 0xff}
	colorAccent   = color.RGBA{0xff, 0xf3, 0xe0, 0xff}
	colorStroke   = color.RGBA{0x22, 0x22, 0x22, 0xff}
	colorEdge     = color.RGBA{0x6b, 0x80, 0xbf, 0xff}
	colorText     = color.RGBA{0x11, 0x11, 0x11, 0xff}
	colorSubtle   = color.RGBA{0x66, 0x66, 0x66, 0xff}
	colorBackdrop = color.RGBA{0xf9, 0xfa, 0xfb, 0xff}
	colorHeaderBG = color.RGBA{0xf3, 0xf4, 0xf6, 0xff}
	colorLegendBG = color.RGBA{0xee, 0xee, 0xee, 0xff}
)

func nodeColor(n layoutNode) color.RGBA {
	switch {
	case n.Highlight:
		return colorAccent
	case n.Leaf:
		return colorLiteral
	default:
		return colorOperator
	}
}

func renderPNG(path string, layout layoutResult) error {
	dc := gg.NewContext(layout.Width, layout.Height)
	dc.SetColor(colorBackdrop)
	dc.Clear()

	// header
	dc.SetColor(colorHeaderBG)
	dc.DrawRoundedRectangle(16, 16, float64(layout.Width)-32, layout.Header-24, 10)
	dc.Fill()

	dc.SetFontFace(basicfont.Face7x13)

	drawSummaryBlock(dc, layout)
	drawLegend(dc, layout)

	// connectors under the boxes
	dc.SetColor(colorEdge)
	dc.SetLineWidth(2)
	for _, e := range layout.Edges {
		x1, y1, x2, y2 := connector(layout.Nodes[e.From], layout.Nodes[e.To])
		midY := (y1 + y2) / 2
		dc.MoveTo(x1, y1)
		dc.LineTo(x1, midY)
		dc.LineTo(x2, midY)
		dc.LineTo(x2, y2)
		dc.Stroke()
	}

	for _, n := range layout.Nodes {
		drawNode(dc, n)
	}

	return dc.SavePNG(path)
}

func renderSVG(path string, layout layoutResult) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return renderSVGToWriter(file, layout)
}

func renderSVGToWriter(w io.Writer, layout layoutResult) error {
	canvas := svg.New(w)
	canvas.Start(layout.Width, layout.Height)
	canvas.Rect(0, 0, layout.Width, layout.Height, fmt.Sprintf("fill:%s", css(colorBackdrop)))
	canvas.Roundrect(16, 16, layout.Width-32, int(layout.Header-24), 10, 10, fmt.Sprintf("fill:%s", css(colorHeaderBG)))

	drawSummaryBlockSVG(canvas, layout)
	drawLegendSVG(canvas, layout)

	for _, e := range layout.Edges {
		x1, y1, x2, y2 := connector(layout.Nodes[e.From], layout.Nodes[e.To])
		midY := (y1 + y2) / 2
		canvas.Polyline(
			[]int{int(x1), int(x1), int(x2), int(x2)},
			[]int{int(y1), int(midY), int(midY), int(y2)},
			fmt.Sprintf("fill:none;stroke:%s;stroke-width:2", css(colorEdge)),
		)
	}

	for _, n := range layout.Nodes {
		x := int(n.X)
		y := int(n.Y)
		canvas.Roundrect(x, y, int(nodeW), int(nodeH), 8, 8,
			fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1.2", css(nodeColor(n)), css(colorStroke)))
		canvas.Text(x+int(nodeW)/2, y+int(nodeH)/2+5, n.Label,
			fmt.Sprintf("fill:%s;font-size:14px;font-family:monospace;text-anchor:middle", css(colorText)))
	}

	canvas.End()
	return nil
}

// connector returns the endpoints of the orthogonal parent-to-child line:
// bottom centre of the parent box to top centre of the child box.
func connector(from, to layoutNode) (x1, y1, x2, y2 float64) {
	return from.X + nodeW/2, from.Y + nodeH, to.X + nodeW/2, to.Y
}

func drawNode(dc *gg.Context, n layoutNode) {
	dc.SetColor(nodeColor(n))
	dc.DrawRoundedRectangle(n.X, n.Y, nodeW, nodeH, 8)
	dc.Fill()
	dc.SetColor(colorStroke)
	dc.SetLineWidth(1.2)
	dc.DrawRoundedRectangle(n.X, n.Y, nodeW, nodeH, 8)
	dc.Stroke()

	dc.SetColor(colorText)
	dc.DrawStringAnchored(n.Label, n.X+nodeW/2, n.Y+nodeH/2, 0.5, 0.5)
}

func drawSummaryBlock(dc *gg.Context, layout layoutResult) {
	dc.SetColor(colorText)
	dc.DrawStringAnchored(layout.Summary.Title, 32, 44, 0, 0.5)
	dc.SetColor(colorSubtle)
	dc.DrawStringAnchored(fmt.Sprintf("expr: %s", layout.Summary.Rendered), 32, 64, 0, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("value: %s  steps: %d", layout.Summary.Value, layout.Summary.Steps), 32, 84, 0, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("nodes: %d", len(layout.Nodes)), 32, 104, 0, 0.5)
}

func drawLegend(dc *gg.Context, layout layoutResult) {
	boxW := 180.0
	boxH := 80.0
	x := float64(layout.Width) - boxW - 20
	y := 24.0
	dc.SetColor(colorLegendBG)
	dc.DrawRoundedRectangle(x, y, boxW, boxH, 10)
	dc.Fill()
	dc.SetColor(colorStroke)
	dc.DrawRoundedRectangle(x, y, boxW, boxH, 10)
	dc.Stroke()

	dc.SetColor(colorText)
	dc.DrawStringAnchored("Legend", x+12, y+18, 0, 0.5)
	drawLegendRow(dc, x+12, y+36, colorLiteral, "Value")
	drawLegendRow(dc, x+12, y+52, colorOperator, "Operator")
	drawLegendRow(dc, x+12, y+68, colorAccent, "Next to reduce")
}

func drawLegendRow(dc *gg.Context, x, y float64, c color.RGBA, label string) {
	dc.SetColor(c)
	dc.DrawRoundedRectangle(x, y-8, 14, 14, 3)
	dc.Fill()
	dc.SetColor(colorStroke)
	dc.DrawRoundedRectangle(x, y-8, 14, 14, 3)
	dc.Stroke()
	dc.SetColor(colorSubtle)
	dc.DrawStringAnchored(label, x+20, y, 0, 0.5)
}

func drawSummaryBlockSVG(canvas *svg.SVG, layout layoutResult) {
	canvas.Text(32, 44, layout.Summary.Title, fmt.Sprintf("fill:%s;font-size:16px;font-family:monospace;font-weight:bold", css(colorText)))
	canvas.Text(32, 64, fmt.Sprintf("expr: %s", layout.Summary.Rendered), fmt.Sprintf("fill:%s;font-size:13px;font-family:monospace", css(colorSubtle)))
	canvas.Text(32, 84, fmt.Sprintf("value: %s  steps: %d", layout.Summary.Value, layout.Summary.Steps), fmt.Sprintf("fill:%s;font-size:13px;font-family:monospace", css(colorSubtle)))
	canvas.Text(32, 104, fmt.Sprintf("nodes: %d", len(layout.Nodes)), fmt.Sprintf("fill:%s;font-size:13px;font-family:monospace", css(colorSubtle)))
}

func drawLegendSVG(canvas *svg.SVG, layout layoutResult) {
	boxW := 180
	boxH := 80
	x := layout.Width - boxW - 20
	y := 24
	canvas.Roundrect(x, y, boxW, boxH, 10, 10, fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", css(colorLegendBG), css(colorStroke)))
	canvas.Text(x+12, y+18, "Legend", fmt.Sprintf("fill:%s;font-size:13px;font-family:monospace;font-weight:bold", css(colorText)))
	drawLegendRowSVG(canvas, x+12, y+36, colorLiteral, "Value")
	drawLegendRowSVG(canvas, x+12, y+52, colorOperator, "Operator")
	drawLegendRowSVG(canvas, x+12, y+68, colorAccent, "Next to reduce")
}

func drawLegendRowSVG(canvas *svg.SVG, x, y int, c color.RGBA, label string) {
	canvas.Roundrect(x, y-8, 14, 14, 3, 3, fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", css(c), css(colorStroke)))
	canvas.Text(x+20, y, label, fmt.Sprintf("fill:%s;font-size:12px;font-family:monospace", css(colorSubtle)))
}

// --- helpers ---------------------------------------------------------------

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

func css(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
