package atlas

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/textforge/font"
)

// Glyph holds the atlas placement and metrics for one rasterized character.
// All pixel values are at the atlas build's font size.
type Glyph struct {
	// UVMin, UVMax are the glyph's rectangle in the atlas, normalized to [0, 1].
	UVMin [2]float64
	UVMax [2]float64

	// Size is the pixel size of the glyph's coverage rectangle.
	Size [2]float64

	// Bearing is the offset from the pen position (on the baseline) to the
	// glyph's visual top-left corner. Y is negative for glyphs that extend
	// above the baseline.
	Bearing [2]float64

	// Advance is the horizontal pen movement after drawing the glyph.
	Advance float64
}

// Texture is the atlas payload an external renderer uploads as-is:
// a tightly packed single-channel coverage bitmap.
type Texture struct {
	Pix    []byte
	Width  int
	Height int
	Format gputypes.TextureFormat
}

// Atlas is the immutable result of a build: the coverage bitmap plus the
// per-rune glyph table. It may be shared read-only across concurrent layout
// passes.
type Atlas struct {
	pix      []byte
	size     int
	fontSize float64

	glyphs  map[rune]Glyph
	parsed  font.ParsedFont
	metrics font.Metrics

	utilization float64
	truncated   bool
}

// Glyph returns the packed glyph for r.
// The second return is false for runes the build omitted: unmapped
// codepoints, whitespace, or glyphs truncated by an atlas overflow. Layout
// renders those as advance-only spacing.
func (a *Atlas) Glyph(r rune) (Glyph, bool) {
	g, ok := a.glyphs[r]
	return g, ok
}

// NumGlyphs returns the number of glyphs packed into the atlas.
func (a *Atlas) NumGlyphs() int {
	return len(a.glyphs)
}

// Size returns the atlas bitmap's width and height in pixels (square).
func (a *Atlas) Size() int {
	return a.size
}

// FontSize returns the pixel size the glyphs were rasterized at.
func (a *Atlas) FontSize() float64 {
	return a.fontSize
}

// ParsedFont returns the parsed font the atlas was built from.
// Layout surfaces use it to derive advances for runes the build omitted.
func (a *Atlas) ParsedFont() font.ParsedFont {
	return a.parsed
}

// Metrics returns the font's line metrics at the atlas font size.
// Layout surfaces derive their line height and ascent from this.
func (a *Atlas) Metrics() font.Metrics {
	return a.metrics
}

// Utilization returns the furthest-used row bottom as a fraction of the
// atlas height, in [0, 1].
func (a *Atlas) Utilization() float64 {
	return a.utilization
}

// Truncated reports whether the build ran out of atlas space and omitted
// the remainder of the charset. Rebuild with a larger Config.Size to fit
// the full charset.
func (a *Atlas) Truncated() bool {
	return a.truncated
}

// Pix returns the raw coverage bitmap, one byte per pixel, row-major.
// The slice is shared with the atlas and must not be modified.
func (a *Atlas) Pix() []byte {
	return a.pix
}

// Texture returns the renderer-facing payload for the atlas bitmap.
func (a *Atlas) Texture() Texture {
	return Texture{
		Pix:    a.pix,
		Width:  a.size,
		Height: a.size,
		Format: gputypes.TextureFormatR8Unorm,
	}
}

// Image returns the coverage bitmap as a grayscale image.
// The pixel data is copied; mutating the result does not affect the atlas.
func (a *Atlas) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, a.size, a.size))
	copy(img.Pix, a.pix)
	return img
}

// SavePNG writes the coverage bitmap to a PNG file.
// This is a debugging aid for inspecting packing and rasterization.
func (a *Atlas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("atlas: failed to create %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := png.Encode(f, a.Image()); err != nil {
		return fmt.Errorf("atlas: failed to encode PNG: %w", err)
	}
	return nil
}
