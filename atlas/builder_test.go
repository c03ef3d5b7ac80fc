package atlas

import (
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/textforge/font"
)

func testSource(t *testing.T) *font.Source {
	t.Helper()
	src, err := font.NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewSource failed: %v", err)
	}
	return src
}

func TestBuild_ASCII(t *testing.T) {
	a, err := NewBuilder(DefaultConfig()).Build(testSource(t))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if a.Truncated() {
		t.Error("512x512 at 16px must fit the full ASCII charset")
	}
	if u := a.Utilization(); u <= 0 || u >= 1 {
		t.Errorf("expected utilization in (0,1), got %f", u)
	}

	// Every visible printable gets an atlas entry. Space carries no
	// outline, so it stays advance-only.
	for r := rune('!'); r <= '~'; r++ {
		if _, ok := a.Glyph(r); !ok {
			t.Errorf("missing glyph for %q", r)
		}
	}
	if _, ok := a.Glyph(' '); ok {
		t.Error("space should not have an atlas entry")
	}
	if _, ok := a.Glyph('\n'); ok {
		t.Error("newline should not have an atlas entry")
	}
}

func TestBuild_GlyphMetrics(t *testing.T) {
	a, err := NewBuilder(DefaultConfig()).Build(testSource(t))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	g, ok := a.Glyph('A')
	if !ok {
		t.Fatal("missing glyph for 'A'")
	}

	if g.Advance <= 0 {
		t.Errorf("expected positive advance, got %f", g.Advance)
	}
	if g.Size[0] <= 0 || g.Size[1] <= 0 {
		t.Errorf("expected positive size, got %v", g.Size)
	}
	// Pen sits on the baseline; 'A' extends upward.
	if g.Bearing[1] >= 0 {
		t.Errorf("expected negative vertical bearing, got %f", g.Bearing[1])
	}
	for i := 0; i < 2; i++ {
		if g.UVMin[i] < 0 || g.UVMax[i] > 1 || g.UVMin[i] >= g.UVMax[i] {
			t.Errorf("invalid UV rect: min=%v max=%v", g.UVMin, g.UVMax)
		}
	}

	// An uppercase glyph must have written coverage at its UV rect.
	size := a.Size()
	x := int(g.UVMin[0] * float64(size))
	y := int(g.UVMin[1] * float64(size))
	w := int(g.Size[0])
	h := int(g.Size[1])
	covered := false
	for row := 0; row < h && !covered; row++ {
		for col := 0; col < w; col++ {
			if a.Pix()[(y+row)*size+x+col] > 0 {
				covered = true
				break
			}
		}
	}
	if !covered {
		t.Error("no coverage found inside the glyph's UV rect")
	}
}

func TestBuild_Deterministic(t *testing.T) {
	src := testSource(t)

	a1, err := NewBuilder(DefaultConfig()).Build(src)
	if err != nil {
		t.Fatalf("first build failed: %v", err)
	}
	a2, err := NewBuilder(DefaultConfig()).Build(src)
	if err != nil {
		t.Fatalf("second build failed: %v", err)
	}

	if !bytes.Equal(a1.Pix(), a2.Pix()) {
		t.Error("bitmaps differ between identical builds")
	}
	if !reflect.DeepEqual(collectGlyphs(a1), collectGlyphs(a2)) {
		t.Error("glyph tables differ between identical builds")
	}
	if a1.Utilization() != a2.Utilization() {
		t.Error("utilization differs between identical builds")
	}
}

func collectGlyphs(a *Atlas) map[rune]Glyph {
	out := make(map[rune]Glyph, a.NumGlyphs())
	for r := rune(' '); r <= '~'; r++ {
		if g, ok := a.Glyph(r); ok {
			out[r] = g
		}
	}
	return out
}

func TestBuild_NoUVOverlap(t *testing.T) {
	a, err := NewBuilder(DefaultConfig()).Build(testSource(t))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	type pxRect struct {
		r              rune
		x0, y0, x1, y1 float64
	}

	size := float64(a.Size())
	var rects []pxRect
	for r := rune(' '); r <= '~'; r++ {
		if g, ok := a.Glyph(r); ok {
			rects = append(rects, pxRect{
				r:  r,
				x0: g.UVMin[0] * size,
				y0: g.UVMin[1] * size,
				x1: g.UVMax[0] * size,
				y1: g.UVMax[1] * size,
			})
		}
	}

	for i := 0; i < len(rects); i++ {
		for j := i + 1; j < len(rects); j++ {
			a, b := rects[i], rects[j]
			if a.x0 < b.x1 && b.x0 < a.x1 && a.y0 < b.y1 && b.y0 < a.y1 {
				t.Fatalf("glyphs %q and %q overlap in the atlas", a.r, b.r)
			}
		}
	}
}

func TestBuild_Truncation(t *testing.T) {
	cfg := Config{Size: 64, FontSize: 32, Padding: 1, Charset: ASCII()}
	a, err := NewBuilder(cfg).Build(testSource(t))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if !a.Truncated() {
		t.Error("expected truncation for 32px glyphs in a 64x64 atlas")
	}
	if a.NumGlyphs() == 0 {
		t.Error("truncated build should still pack leading glyphs")
	}
	if a.NumGlyphs() >= 94 {
		t.Error("truncated build should omit trailing glyphs")
	}
}

func TestBuild_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"size too small", Config{Size: 16, FontSize: 8, Charset: ASCII()}},
		{"size too large", Config{Size: 16384, FontSize: 16, Charset: ASCII()}},
		{"negative font size", Config{Size: 512, FontSize: -1, Charset: ASCII()}},
		{"negative padding", Config{Size: 512, FontSize: 16, Padding: -1, Charset: ASCII()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Builder{config: tt.cfg}
			if _, err := b.Build(testSource(t)); err == nil {
				t.Error("expected config validation error")
			}
		})
	}
}

func TestBuild_NilSource(t *testing.T) {
	_, err := NewBuilder(DefaultConfig()).Build(nil)
	if !errors.Is(err, ErrNilSource) {
		t.Errorf("expected ErrNilSource, got %v", err)
	}
}

func TestBuild_GotextBackendIsEmpty(t *testing.T) {
	src, err := font.NewSource(goregular.TTF, font.WithParser("gotext"))
	if err != nil {
		t.Fatalf("NewSource failed: %v", err)
	}

	a, err := NewBuilder(DefaultConfig()).Build(src)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if a.NumGlyphs() != 0 {
		t.Errorf("metrics-only backend should produce an empty atlas, got %d glyphs", a.NumGlyphs())
	}
	if a.Metrics().Ascent <= 0 {
		t.Error("empty atlas must still carry line metrics")
	}
}

func TestAtlas_SavePNG(t *testing.T) {
	a, err := NewBuilder(DefaultConfig()).Build(testSource(t))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "atlas.png")
	if err := a.SavePNG(path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
}
