package layout

import (
	"github.com/gogpu/textforge/font"
	"github.com/gogpu/textforge/render"
	"github.com/gogpu/textforge/richtext"
)

// TextWriter is the atlas-backed Surface implementation.
// It walks a pen cursor across a viewport, emitting glyph and highlight
// quads into a render.Builder as characters fit.
//
// TextWriter is not safe for concurrent use. The glyph source it reads is.
type TextWriter struct {
	glyphs   GlyphSource
	fallback font.ParsedFont // raw-advance fallback for runes without atlas entries
	geom     *render.Builder

	viewport   Viewport
	lineHeight float64
	ascent     float64

	originX float64
	originY float64

	// pen position; x at the left edge of the next character, y on the
	// current baseline
	x float64
	y float64
}

// Option configures a TextWriter.
type Option func(*TextWriter)

// WithOrigin sets the pen origin: the left margin and the first baseline.
// The default is x=0 with the first baseline one ascent below the top, so
// the first line's cap height touches the viewport top.
func WithOrigin(x, y float64) Option {
	return func(w *TextWriter) {
		w.originX = x
		w.originY = y
	}
}

// WithLineHeight overrides the font's natural line height.
func WithLineHeight(h float64) Option {
	return func(w *TextWriter) {
		w.lineHeight = h
	}
}

// WithFallback overrides the parsed font used to derive advances for runes
// the atlas has no entry for. By default the writer takes the font its
// glyph source was built from, so atlas-backed writers always have advances
// for whitespace and omitted runes; only sources without a font (test
// stubs) lay such runes out at zero width.
func WithFallback(parsed font.ParsedFont) Option {
	return func(w *TextWriter) {
		w.fallback = parsed
	}
}

// NewTextWriter creates a surface over the given glyph source, writing
// geometry into geom. Line metrics default to the glyph source's font
// metrics.
func NewTextWriter(glyphs GlyphSource, viewport Viewport, geom *render.Builder, opts ...Option) *TextWriter {
	m := glyphs.Metrics()
	w := &TextWriter{
		glyphs:     glyphs,
		geom:       geom,
		viewport:   viewport,
		lineHeight: m.Height(),
		ascent:     m.Ascent,
	}
	w.originY = w.ascent

	for _, opt := range opts {
		opt(w)
	}

	if w.fallback == nil {
		if p, ok := glyphs.(interface{ ParsedFont() font.ParsedFont }); ok {
			w.fallback = p.ParsedFont()
		}
	}

	w.Reset()
	return w
}

// Reset moves the cursor back to the origin for a fresh pass.
// The geometry builder is not cleared; callers reset it separately when
// reusing one across passes.
func (w *TextWriter) Reset() {
	w.x = w.originX
	w.y = w.originY
}

// SetViewport updates the layout bounds, e.g. on window resize.
// Call Reset afterwards; a pass that spans a resize is meaningless.
func (w *TextWriter) SetViewport(v Viewport) {
	w.viewport = v
}

// Pen returns the current cursor position (x at the next character's left
// edge, y on the baseline).
func (w *TextWriter) Pen() (x, y float64) {
	return w.x, w.y
}

// WriteChar implements Surface.
//
// '\r' is ignored. '\n' delegates to WriteBreak. Anything else is placed
// at the cursor if it fits both horizontally and vertically; the overflow
// check runs before any mutation, so an overflowed WriteChar leaves the
// cursor and geometry exactly as they were.
func (w *TextWriter) WriteChar(c richtext.ColoredChar) Result {
	if c.Ch == '\n' {
		return w.WriteBreak()
	}
	if c.Ch == '\r' {
		return written()
	}

	g, hasGlyph := w.glyphs.Glyph(c.Ch)

	advance := g.Advance
	if !hasGlyph {
		advance = w.fallbackAdvance(c.Ch)
	}

	lineBottom := w.y + w.lineHeight - w.ascent
	if w.x+advance > w.viewport.Width || lineBottom > w.viewport.Height {
		return overflow(0)
	}

	// Background first: no depth test downstream, so draw order is
	// composite order and the glyph must land on top. The highlight spans
	// the full advance and line height even when the rune has no glyph.
	if c.Background != nil {
		w.geom.AppendSolidQuad(w.x, w.y-w.ascent, advance, w.lineHeight, *c.Background)
	}

	if hasGlyph {
		w.geom.AppendGlyphQuad(
			w.x+g.Bearing[0], w.y+g.Bearing[1],
			g.Size[0], g.Size[1],
			g.UVMin, g.UVMax,
			c.Color)
	}

	w.x += advance
	return written()
}

// WriteLine implements Surface.
func (w *TextWriter) WriteLine(line richtext.ColoredLine) Result {
	return w.writeChars(line.Chars)
}

func (w *TextWriter) writeChars(chars []richtext.ColoredChar) Result {
	total := 0
	for i := range chars {
		res := w.WriteChar(chars[i])
		if res.Overflowed {
			return overflow(total + res.Written)
		}
		total++
	}
	return written()
}

// WriteLineWordwrap implements Surface.
//
// The line is re-sliced at the exact character where horizontal space ran
// out, not at a word boundary, and continued on the next row. Typing
// surfaces depend on this: every character keeps its position in the
// sequence, nothing is reordered or dropped. The loop ends when the
// remainder fits, or when the break to the next row overflows the bottom.
func (w *TextWriter) WriteLineWordwrap(line richtext.ColoredLine) Result {
	total := 0
	chars := line.Chars
	for {
		res := w.writeChars(chars)
		if !res.Overflowed {
			return written()
		}

		total += res.Written
		chars = chars[res.Written:]

		if br := w.WriteBreak(); br.Overflowed {
			return overflow(total)
		}
	}
}

// WriteBreak implements Surface.
//
// The cursor mutation is committed before the bounds check: after an
// overflowed break the pen really is below the viewport, and the overflow
// tells the caller to stop. This is the one write that is not
// all-or-nothing.
func (w *TextWriter) WriteBreak() Result {
	w.x = w.originX
	w.y += w.lineHeight

	if w.y+w.lineHeight-w.ascent > w.viewport.Height {
		return overflow(0)
	}
	return written()
}

// LineWidth measures the advance width of a line without writing it.
// '\r' contributes nothing, matching WriteChar.
func (w *TextWriter) LineWidth(line richtext.ColoredLine) float64 {
	width := 0.0
	for i := range line.Chars {
		ch := line.Chars[i].Ch
		if ch == '\r' || ch == '\n' {
			continue
		}
		if g, ok := w.glyphs.Glyph(ch); ok {
			width += g.Advance
		} else {
			width += w.fallbackAdvance(ch)
		}
	}
	return width
}

// fallbackAdvance derives an advance for a rune with no atlas entry from
// the raw font. Unmapped runes (glyph index 0) still return the font's
// .notdef advance, which keeps layout monotonic.
func (w *TextWriter) fallbackAdvance(r rune) float64 {
	if w.fallback == nil {
		return 0
	}
	return w.fallback.GlyphAdvance(w.fallback.GlyphIndex(r), w.glyphs.FontSize())
}

// compile-time interface check
var _ Surface = (*TextWriter)(nil)
