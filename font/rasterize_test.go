package font

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestRasterizer_Glyph(t *testing.T) {
	src, err := NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewSource failed: %v", err)
	}

	z := NewRasterizer(src.Parsed(), 16)
	if z == nil {
		t.Fatal("expected rasterizer for ximage-backed source")
	}
	defer func() {
		_ = z.Close()
	}()

	img := z.Glyph('A')
	if img == nil {
		t.Fatal("expected glyph image for 'A'")
	}
	if img.Mask == nil {
		t.Fatal("expected coverage mask for 'A'")
	}
	if img.Advance <= 0 {
		t.Errorf("expected positive advance, got %f", img.Advance)
	}
	if img.Bounds.Dx() <= 0 || img.Bounds.Dy() <= 0 {
		t.Errorf("expected non-empty bounds, got %v", img.Bounds)
	}
	// 'A' extends above the baseline.
	if img.Bounds.Min.Y >= 0 {
		t.Errorf("expected bounds above baseline, got %v", img.Bounds)
	}

	// The mask must contain actual coverage.
	covered := 0
	for _, v := range img.Mask.Pix {
		if v > 0 {
			covered++
		}
	}
	if covered == 0 {
		t.Error("mask contains no coverage")
	}
}

func TestRasterizer_Whitespace(t *testing.T) {
	src, err := NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewSource failed: %v", err)
	}

	z := NewRasterizer(src.Parsed(), 16)
	defer func() {
		_ = z.Close()
	}()

	img := z.Glyph(' ')
	if img == nil {
		t.Fatal("expected glyph image for space")
	}
	if img.Mask != nil {
		t.Error("space should have no coverage mask")
	}
	if img.Advance <= 0 {
		t.Errorf("space must keep its advance, got %f", img.Advance)
	}
}

func TestNewRasterizer_GotextBackend(t *testing.T) {
	src, err := NewSource(goregular.TTF, WithParser("gotext"))
	if err != nil {
		t.Fatalf("NewSource failed: %v", err)
	}

	// The gotext backend has no coverage rasterizer; callers get nil and
	// fall back to advance-only glyphs.
	if z := NewRasterizer(src.Parsed(), 16); z != nil {
		t.Error("expected nil rasterizer for gotext-backed source")
	}
}

func TestRasterizeGlyph(t *testing.T) {
	src, err := NewSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewSource failed: %v", err)
	}

	img := RasterizeGlyph(src.Parsed(), 'g', 16)
	if img == nil || img.Mask == nil {
		t.Fatal("expected rasterized glyph for 'g'")
	}
	// 'g' has a descender, so the bounds extend below the baseline.
	if img.Bounds.Max.Y <= 0 {
		t.Errorf("expected descender below baseline, got %v", img.Bounds)
	}
}
