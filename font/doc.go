// Package font loads TrueType/OpenType font files and exposes the glyph
// metrics and rasterization the atlas builder needs. Parsing is pluggable:
// the default backend is golang.org/x/image/font/opentype, with
// go-text/typesetting available as an alternative via WithParser.
//
// A Source is the heavyweight object. Load one per font file, share it
// across the application, and derive everything else from it.
package font
