package render

import (
	"fmt"
	"strings"

	"github.com/bft-labs/d12pack/internal/domain"
)

// DefaultStyleTag names the built-in look in tile filenames and pack.json.
const DefaultStyleTag = "DEFAULT"

// Theme holds the paint used for a tile. Color values are emitted verbatim
// (after XML attribute escaping), so any CSS color syntax is accepted.
type Theme struct {
	GradientTop    string
	GradientBottom string
	Stroke         string
	ShadowColor    string
	ShadowOpacity  float64
	InnerFill      string
	InnerStroke    string
	DividerFill    string
	DividerRule    string
	Ink            string
	PipOpacity     float64
	LabelOpacity   float64
	FontFamily     string
}

// DefaultTheme returns the DEFAULT pack look: a pale slate gradient with
// near-black pips.
func DefaultTheme() Theme {
	return Theme{
		GradientTop:    "#f8fafc",
		GradientBottom: "#e7eef7",
		Stroke:         "#cbd5e1",
		ShadowColor:    "#000",
		ShadowOpacity:  0.25,
		InnerFill:      "rgba(255,255,255,0.65)",
		InnerStroke:    "rgba(15,23,42,0.10)",
		DividerFill:    "rgba(15,23,42,0.08)",
		DividerRule:    "rgba(15,23,42,0.10)",
		Ink:            "#0f172a",
		PipOpacity:     0.92,
		LabelOpacity:   0.35,
		FontFamily:     "ui-monospace, SFMono-Regular, Menlo, Monaco, Consolas, monospace",
	}
}

// Merge returns t with every non-zero field of o applied on top.
func (t Theme) Merge(o Theme) Theme {
	setStr := func(dst *string, v string) {
		if strings.TrimSpace(v) != "" {
			*dst = v
		}
	}
	setFloat := func(dst *float64, v float64) {
		if v > 0 {
			*dst = v
		}
	}
	setStr(&t.GradientTop, o.GradientTop)
	setStr(&t.GradientBottom, o.GradientBottom)
	setStr(&t.Stroke, o.Stroke)
	setStr(&t.ShadowColor, o.ShadowColor)
	setFloat(&t.ShadowOpacity, o.ShadowOpacity)
	setStr(&t.InnerFill, o.InnerFill)
	setStr(&t.InnerStroke, o.InnerStroke)
	setStr(&t.DividerFill, o.DividerFill)
	setStr(&t.DividerRule, o.DividerRule)
	setStr(&t.Ink, o.Ink)
	setFloat(&t.PipOpacity, o.PipOpacity)
	setFloat(&t.LabelOpacity, o.LabelOpacity)
	setStr(&t.FontFamily, o.FontFamily)
	return t
}

// Validate checks that opacities are within [0, 1].
func (t Theme) Validate() error {
	for name, v := range map[string]float64{
		"shadow opacity": t.ShadowOpacity,
		"pip opacity":    t.PipOpacity,
		"label opacity":  t.LabelOpacity,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %s %v out of [0,1]", domain.ErrInvalidConfig, name, v)
		}
	}
	return nil
}
