// Package textforge provides the text core for GPU-rendered typing and code
// display applications: a glyph atlas builder, a per-character colored text
// model, a viewport-bound layout surface, and a vertex geometry builder.
//
// # Overview
//
// textforge does no GPU work itself. It turns a font file and a colored text
// value into two artifacts an external renderer consumes directly:
//
//   - a single-channel coverage atlas texture with per-glyph UV metrics
//   - a flat list of textured/solid quads in pixel space
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/textforge"
//	    "github.com/gogpu/textforge/atlas"
//	    "github.com/gogpu/textforge/font"
//	    "github.com/gogpu/textforge/layout"
//	    "github.com/gogpu/textforge/render"
//	    "github.com/gogpu/textforge/richtext"
//	)
//
//	src, _ := font.NewSource(ttfBytes)
//	a, _ := atlas.NewBuilder(atlas.DefaultConfig()).Build(src)
//
//	text := richtext.FromString("fn main() {}\n", textforge.White)
//
//	geom := render.NewBuilder()
//	w := layout.NewTextWriter(a, layout.Viewport{Width: 800, Height: 600}, geom)
//	for _, line := range text.Lines {
//	    w.WriteLineWordwrap(line)
//	    w.WriteBreak()
//	}
//	// geom.Vertices() + a.Texture() go to the renderer.
//
// # Architecture
//
// The module is organized into:
//   - font: font parsing backends (x/image opentype by default, go-text optional)
//   - atlas: shelf-packed coverage atlas with per-glyph metrics
//   - richtext: flat colored-character value model
//   - layout: cursor-based surface with wrap and overflow detection
//   - render: GPU-agnostic vertex list assembly
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Layout pen positions are baseline-relative, matching font conventions
//
// # Overflow
//
// Layout overflow is ordinary control flow: surfaces report how many
// characters fit and never return errors for out-of-bounds content.
package textforge

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
