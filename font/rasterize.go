package font

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// GlyphImage represents a rasterized glyph.
// This contains the coverage mask and positioning information.
type GlyphImage struct {
	// Mask is the coverage mask (8-bit alpha image).
	// This represents the glyph's shape.
	Mask *image.Alpha

	// Bounds relative to the glyph origin.
	// The origin is on the baseline at the left edge, y-down: Min.Y is
	// negative for glyphs that extend above the baseline. Min is the
	// bearing used to place the mask relative to the pen.
	Bounds image.Rectangle

	// Advance width in pixels.
	// This is how far the pen moves after drawing this glyph.
	Advance float64
}

// Rasterizer renders glyphs of one font at one pixel size.
// An atlas build creates a single Rasterizer and feeds every charset rune
// through it, which amortizes face construction across the whole build.
//
// Rasterizer is not safe for concurrent use; the underlying face carries
// mutable rasterization buffers.
type Rasterizer struct {
	face font.Face
}

// NewRasterizer creates a Rasterizer for the given parsed font and pixel size.
// Returns nil if the parsed font does not use the ximage backend; callers
// treat a nil Rasterizer as "no visual glyphs available" and fall back to
// advance-only layout.
func NewRasterizer(parsed ParsedFont, ppem float64) *Rasterizer {
	xparsed, ok := parsed.(*ximageParsedFont)
	if !ok {
		return nil
	}

	opts := &opentype.FaceOptions{
		Size:    ppem,
		DPI:     72,
		Hinting: font.HintingFull,
	}

	otFace, err := opentype.NewFace(xparsed.font, opts)
	if err != nil {
		return nil
	}

	return &Rasterizer{face: otFace}
}

// Glyph renders the glyph for r to a coverage mask.
// Returns nil when the face has no outline for r (the rune still has an
// advance; it just draws nothing, like a space).
func (z *Rasterizer) Glyph(r rune) *GlyphImage {
	bounds, advance, ok := z.face.GlyphBounds(r)
	if !ok {
		return nil
	}

	// Convert fixed.Int26_6 bounds to whole pixels, expanding outward.
	minX := int(bounds.Min.X) >> 6
	minY := int(bounds.Min.Y) >> 6
	maxX := int(bounds.Max.X+63) >> 6
	maxY := int(bounds.Max.Y+63) >> 6

	rect := image.Rect(minX, minY, maxX, maxY)
	if rect.Empty() {
		// Whitespace and other blank glyphs: advance only, no mask.
		return &GlyphImage{Bounds: rect, Advance: fixedToFloat64(advance)}
	}

	// The mask is zero-origin; Bounds carries the bearing separately.
	mask := image.NewAlpha(image.Rect(0, 0, rect.Dx(), rect.Dy()))

	drawer := &font.Drawer{
		Dst:  mask,
		Src:  image.White,
		Face: z.face,
	}

	// Offset the dot so the outline's top-left lands at the mask origin.
	drawer.Dot = fixed.Point26_6{X: -bounds.Min.X, Y: -bounds.Min.Y}
	drawer.DrawString(string(r))

	return &GlyphImage{
		Mask:    mask,
		Bounds:  rect,
		Advance: fixedToFloat64(advance),
	}
}

// Close releases the underlying face resources.
func (z *Rasterizer) Close() error {
	return z.face.Close()
}

// RasterizeGlyph renders a single glyph to a coverage mask.
// It is a convenience wrapper for one-off rasterization; batch callers
// should create a Rasterizer instead.
func RasterizeGlyph(parsed ParsedFont, r rune, ppem float64) *GlyphImage {
	z := NewRasterizer(parsed, ppem)
	if z == nil {
		return nil
	}
	defer func() {
		_ = z.Close()
	}()

	return z.Glyph(r)
}
