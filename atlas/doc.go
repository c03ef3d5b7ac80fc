// Package atlas builds a single-channel glyph coverage atlas from a parsed
// font. Glyphs are rasterized once at a fixed pixel size and packed into one
// square bitmap with shelf (row) packing; each packed glyph records its
// normalized UV rectangle, pixel size, bearing and advance.
//
// The atlas is built once at startup or on a font-size change and is
// immutable afterwards. Glyphs that do not fit the configured atlas size are
// omitted rather than failing the build: layout falls back to the raw font
// advance for them, so oversized charsets degrade to invisible spacing
// instead of errors.
//
// Packing order is ascending codepoint, row-major. Two builds from identical
// inputs produce byte-identical atlases and identical glyph tables.
package atlas
