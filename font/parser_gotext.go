package font

import (
	"bytes"
	"fmt"

	gotext "github.com/go-text/typesetting/font"
)

// gotextParser implements Parser using go-text/typesetting.
// It is an opt-in alternative to the default ximage backend:
//
//	src, err := font.NewSource(data, font.WithParser("gotext"))
//
// The gotext backend parses a wider range of OpenType tables, but it does
// not support coverage rasterization; atlas builds on a gotext source emit
// advance-only glyphs. Use it where only metrics are needed.
type gotextParser struct{}

// Parse implements Parser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}
	return &gotextParsedFont{face: face}, nil
}

// gotextParsedFont implements ParsedFont using a go-text face.
//
// gotext.Face is documented as not safe for concurrent use because of its
// internal glyph caches, so all methods serialize through the Source that
// owns this value. Metrics lookups are cheap; this is not a contention point.
type gotextParsedFont struct {
	face *gotext.Face
}

// Name implements ParsedFont.Name.
func (f *gotextParsedFont) Name() string {
	return f.face.Describe().Family
}

// UnitsPerEm implements ParsedFont.UnitsPerEm.
func (f *gotextParsedFont) UnitsPerEm() int {
	return int(f.face.Upem())
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *gotextParsedFont) GlyphIndex(r rune) uint16 {
	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return 0
	}
	return uint16(gid)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *gotextParsedFont) GlyphAdvance(glyphIndex uint16, ppem float64) float64 {
	advance := f.face.HorizontalAdvance(gotext.GID(glyphIndex))
	return float64(advance) * f.scale(ppem)
}

// GlyphBounds implements ParsedFont.GlyphBounds.
// go-text extents are y-up in font units; the result is converted to the
// y-down pixel space the rest of the module uses.
func (f *gotextParsedFont) GlyphBounds(glyphIndex uint16, ppem float64) Rect {
	ext, ok := f.face.GlyphExtents(gotext.GID(glyphIndex))
	if !ok {
		return Rect{}
	}

	s := f.scale(ppem)
	minX := float64(ext.XBearing) * s
	minY := -float64(ext.YBearing) * s
	return Rect{
		MinX: minX,
		MinY: minY,
		MaxX: minX + float64(ext.Width)*s,
		MaxY: minY - float64(ext.Height)*s,
	}
}

// Metrics implements ParsedFont.Metrics.
func (f *gotextParsedFont) Metrics(ppem float64) Metrics {
	ext, ok := f.face.FontHExtents()
	if !ok {
		return Metrics{}
	}

	s := f.scale(ppem)
	return Metrics{
		Ascent:  float64(ext.Ascender) * s,
		Descent: float64(ext.Descender) * s,
		LineGap: float64(ext.LineGap) * s,
	}
}

// scale returns the font-unit to pixel conversion factor at the given size.
func (f *gotextParsedFont) scale(ppem float64) float64 {
	upem := f.face.Upem()
	if upem == 0 {
		return 0
	}
	return ppem / float64(upem)
}
