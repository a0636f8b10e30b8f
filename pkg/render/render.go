package render

import (
	"bytes"
	"embed"
	"fmt"
	"html"
	"strconv"
	"text/template"

	"github.com/bft-labs/d12pack/pkg/layout"
)

//go:embed templates/tile.svg.tmpl
var templatesFS embed.FS

var funcs = template.FuncMap{
	"num":    formatNum,
	"fixed2": func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) },
	"attr":   html.EscapeString,
}

var tileTemplate = template.Must(
	template.New("tile.svg.tmpl").Funcs(funcs).ParseFS(templatesFS, "templates/tile.svg.tmpl"),
)

// Tile geometry, in SVG user units.
const (
	Width     = 420.0
	Height    = 220.0
	pad       = 18.0
	bodyInset = 8.0
	radius    = 18.0
	pipRadius = 9.5
	gap       = 10.0
	gridInset = 18.0
)

// Renderer turns pip pairs into SVG documents.
type Renderer struct {
	theme Theme
}

// New returns a Renderer painting with theme.
func New(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

// Theme returns the theme the renderer paints with.
func (r *Renderer) Theme() Theme {
	return r.theme
}

type tileData struct {
	Theme       Theme
	Width       float64
	Height      float64
	Radius      float64
	InnerRadius float64
	PipRadius   float64
	Body        layout.Rect
	Inner       layout.Rect
	Divider     layout.Rect
	Rule        layout.Rect
	LeftLabel   layout.Point
	RightLabel  layout.Point
	LeftText    int
	RightText   int
	LeftPips    []layout.Point
	RightPips   []layout.Point
}

// Render returns the SVG document for a tile with a pips on the left half
// and b pips on the right. Counts are drawn as given; callers wanting the
// canonical orientation pass the canonical pair. Pip layouts clamp
// out-of-range counts into [0, 12].
func (r *Renderer) Render(a, b int) ([]byte, error) {
	var buf bytes.Buffer
	if err := tileTemplate.Execute(&buf, r.data(a, b)); err != nil {
		return nil, fmt.Errorf("render tile %d|%d: %w", a, b, err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) data(a, b int) tileData {
	inner := layout.Rect{X: pad, Y: pad, W: Width - pad*2, H: Height - pad*2}
	halfW := (inner.W - gap) / 2
	leftX := inner.X
	rightX := inner.X + halfW + gap

	grid := func(x float64) layout.Rect {
		return layout.Rect{
			X: x + gridInset,
			Y: inner.Y + gridInset,
			W: halfW - gridInset*2,
			H: inner.H - gridInset*2,
		}
	}

	return tileData{
		Theme:       r.theme,
		Width:       Width,
		Height:      Height,
		Radius:      radius,
		InnerRadius: radius - 6,
		PipRadius:   pipRadius,
		Body:        layout.Rect{X: bodyInset, Y: bodyInset, W: Width - bodyInset*2, H: Height - bodyInset*2},
		Inner:       inner,
		Divider:     layout.Rect{X: inner.X + halfW, Y: inner.Y + 10, W: gap, H: inner.H - 20},
		Rule:        layout.Rect{X: inner.X + halfW + gap/2 - 1, Y: inner.Y + 18, W: 2, H: inner.H - 36},
		LeftLabel:   layout.Point{X: inner.X + 14, Y: inner.Y + 26},
		RightLabel:  layout.Point{X: inner.X + inner.W - 22, Y: inner.Y + inner.H - 10},
		LeftText:    a,
		RightText:   b,
		LeftPips:    layout.Centers(a, grid(leftX)),
		RightPips:   layout.Centers(b, grid(rightX)),
	}
}

// formatNum prints v without trailing zeros: 205, 9.5, 0.92.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
