package atlas

import (
	"github.com/gogpu/textforge"
	"github.com/gogpu/textforge/font"
)

// Config holds atlas build configuration.
type Config struct {
	// Size is the atlas texture size (width = height).
	// Default: 512
	Size int

	// FontSize is the rasterization size in pixels.
	// Default: 16
	FontSize float64

	// Padding between glyphs to prevent sampling bleed.
	// Default: 1
	Padding int

	// Charset is the set of runes to rasterize.
	// Default: printable ASCII (32–126).
	Charset Charset
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Size:     512,
		FontSize: 16,
		Padding:  1,
		Charset:  ASCII(),
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Size < 64 {
		return &ConfigError{Field: "Size", Reason: "must be at least 64"}
	}
	if c.Size > 8192 {
		return &ConfigError{Field: "Size", Reason: "must be at most 8192"}
	}
	if c.FontSize <= 0 {
		return &ConfigError{Field: "FontSize", Reason: "must be positive"}
	}
	if c.FontSize > float64(c.Size) {
		return &ConfigError{Field: "FontSize", Reason: "must be at most Size"}
	}
	if c.Padding < 0 {
		return &ConfigError{Field: "Padding", Reason: "must be non-negative"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "atlas: invalid config." + e.Field + ": " + e.Reason
}

// Builder rasterizes a charset into an Atlas.
// A Builder is cheap; create one per build.
type Builder struct {
	config Config
}

// NewBuilder creates a Builder with the given configuration.
// Zero-valued config fields are replaced by their defaults.
func NewBuilder(cfg Config) *Builder {
	def := DefaultConfig()
	if cfg.Size == 0 {
		cfg.Size = def.Size
	}
	if cfg.FontSize == 0 {
		cfg.FontSize = def.FontSize
	}
	if cfg.Charset.table == nil {
		cfg.Charset = def.Charset
	}
	return &Builder{config: cfg}
}

// Build rasterizes the configured charset from src into a new Atlas.
//
// Charset runes are processed in ascending codepoint order and packed
// row-major, so identical inputs always produce identical atlases. Runes
// without an outline (whitespace, unmapped codepoints) get no atlas entry.
// When the bitmap runs out of rows the rest of the charset is omitted and
// the atlas is marked truncated; this is not an error.
func (b *Builder) Build(src *font.Source) (*Atlas, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if err := b.config.Validate(); err != nil {
		return nil, err
	}

	size := b.config.Size
	parsed := src.Parsed()

	a := &Atlas{
		pix:      make([]byte, size*size),
		size:     size,
		fontSize: b.config.FontSize,
		glyphs:   make(map[rune]Glyph),
		parsed:   parsed,
		metrics:  parsed.Metrics(b.config.FontSize),
	}

	cursor := newShelfCursor(size, size, b.config.Padding)
	logger := textforge.Logger()

	z := font.NewRasterizer(parsed, b.config.FontSize)
	if z == nil {
		// Metrics-only backend: an empty glyph table is still a valid
		// atlas, layout just becomes advance-only.
		logger.Warn("atlas: font backend has no rasterizer, building empty atlas",
			"font", src.Name())
		return a, nil
	}
	defer func() {
		_ = z.Close()
	}()

	for _, r := range b.config.Charset.All() {
		img := z.Glyph(r)
		if img == nil || img.Mask == nil {
			continue
		}

		w := img.Bounds.Dx()
		h := img.Bounds.Dy()

		x, y, ok := cursor.place(w, h)
		if !ok {
			a.truncated = true
			logger.Warn("atlas: charset truncated, atlas is full",
				"rune", string(r), "size", size, "fontSize", b.config.FontSize)
			break
		}

		blit(a.pix, size, x, y, img.Mask.Pix, img.Mask.Stride, w, h)

		a.glyphs[r] = Glyph{
			UVMin:   [2]float64{float64(x) / float64(size), float64(y) / float64(size)},
			UVMax:   [2]float64{float64(x+w) / float64(size), float64(y+h) / float64(size)},
			Size:    [2]float64{float64(w), float64(h)},
			Bearing: [2]float64{float64(img.Bounds.Min.X), float64(img.Bounds.Min.Y)},
			Advance: img.Advance,
		}
	}

	a.utilization = cursor.utilization()

	logger.Info("atlas: build complete",
		"font", src.Name(),
		"glyphs", len(a.glyphs),
		"size", size,
		"fontSize", b.config.FontSize,
		"utilization", a.utilization,
		"truncated", a.truncated)

	return a, nil
}

// blit copies a h-row coverage mask into the atlas bitmap at (x, y).
func blit(dst []byte, dstStride, x, y int, src []byte, srcStride, w, h int) {
	for row := 0; row < h; row++ {
		di := (y+row)*dstStride + x
		si := row * srcStride
		copy(dst[di:di+w], src[si:si+w])
	}
}
