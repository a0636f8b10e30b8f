// Package render builds the SVG document for a single domino tile.
//
// Rendering is pure: the same pip counts and [Theme] always produce the
// same bytes, and nothing is written to disk here. Persisting the output
// is the job of package pack.
//
//	r := render.New(render.DefaultTheme())
//	svg, err := r.Render(6, 12)
package render
