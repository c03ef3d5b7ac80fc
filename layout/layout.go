// Package layout places colored text against a pixel viewport using glyph
// metrics from a built atlas. A surface owns one pen cursor and fixed
// bounds; writes either fit, or report how many characters fit before space
// ran out. Overflow is ordinary control flow, a return value callers
// branch on, never an error.
//
// Surfaces are single-pass state: create one per layout pass (or Reset it)
// and discard the cursor state after geometry has been emitted. The glyph
// table backing a surface is read-only and may be shared across concurrent
// passes; the surface itself may not.
package layout

import (
	"github.com/gogpu/textforge/atlas"
	"github.com/gogpu/textforge/font"
	"github.com/gogpu/textforge/richtext"
)

// Result reports the outcome of a write operation.
type Result struct {
	// Overflowed is true when the content did not fully fit the bounds.
	Overflowed bool

	// Written is the number of characters successfully written before the
	// one that did not fit. Only meaningful when Overflowed is true.
	Written int
}

// Fits reports whether the write completed without overflow.
func (r Result) Fits() bool {
	return !r.Overflowed
}

// written is the successful outcome.
func written() Result {
	return Result{}
}

// overflow reports an overflow after n characters.
func overflow(n int) Result {
	return Result{Overflowed: true, Written: n}
}

// Viewport is the pixel box text is laid out against.
// Update it on window resize and run a fresh pass.
type Viewport struct {
	Width  float64
	Height float64
}

// Surface is the writing capability layout code depends on.
// Implementations hold a mutable pen cursor; all methods advance it except
// where documented otherwise.
type Surface interface {
	// WriteChar writes one character at the cursor.
	// On overflow the cursor is untouched and nothing is emitted.
	WriteChar(c richtext.ColoredChar) Result

	// WriteLine writes characters in order, stopping at the first that
	// does not fit. No line break is issued on overflow.
	WriteLine(line richtext.ColoredLine) Result

	// WriteLineWordwrap writes the line, breaking to the next row at the
	// character where horizontal space runs out, until the line is
	// consumed or the viewport bottom is reached.
	WriteLineWordwrap(line richtext.ColoredLine) Result

	// WriteBreak moves the cursor to the start of the next row. Unlike
	// WriteChar, the cursor moves even when the new row overflows the
	// bottom; callers must stop writing after an overflowed break.
	WriteBreak() Result
}

// GlyphSource provides the glyph table and metrics a surface lays out
// against. *atlas.Atlas implements it; tests substitute fixed-advance
// stubs.
//
// Sources that additionally expose the parsed font they were built from
// (ParsedFont() font.ParsedFont, as *atlas.Atlas does) seed the writer's
// fallback advance automatically.
type GlyphSource interface {
	Glyph(r rune) (atlas.Glyph, bool)
	FontSize() float64
	Metrics() font.Metrics
}
