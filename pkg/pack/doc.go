// Package pack assembles a domino tile pack on disk.
//
// A pack directory holds one SVG per unordered pip pair, a pack.json
// manifest and a preview.svg:
//
//	packs/default/
//	  pack.json
//	  preview.svg
//	  D12_00_00_DEFAULT.svg
//	  D12_00_01_DEFAULT.svg
//	  ...
//	  D12_12_12_DEFAULT.svg
//
// # Usage
//
//	g, err := pack.New(pack.DefaultConfig(), pack.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	res, err := g.Generate(ctx)
//
// Generation is sequential and aborts on the first I/O error. The manifest
// is created once and never overwritten; tiles and the preview are
// rewritten on every run.
//
// [Verify] checks an existing pack directory against its manifest.
package pack
