// Package render assembles GPU-ready vertex lists from glyph and highlight
// placements. It is backend-agnostic: the output is a flat slice of
// position/uv/color vertices in pixel space plus a small per-draw parameter
// bundle, and an external renderer owns buffers, pipelines and draw calls.
package render

import "github.com/gogpu/textforge"

// Vertex is one corner of a textured or solid quad.
// Positions are in pixel space with the same origin as the layout pen.
type Vertex struct {
	Position [2]float32
	UV       [2]float32
	Color    [4]float32
}

// SolidUV is the sentinel texture coordinate for solid-fill quads.
// The shading stage treats vertices carrying it as untextured color fill
// instead of sampling the coverage atlas.
var SolidUV = [2]float32{0, 0}

// DrawParams is the per-draw parameter bundle bound alongside the vertex
// buffer: the viewport size the positions were laid out against and an
// optional whole-draw tint.
type DrawParams struct {
	ScreenSize [2]float32
	BaseTint   [4]float32
}

// NewDrawParams returns draw parameters for a viewport with a neutral tint.
func NewDrawParams(width, height float64) DrawParams {
	return DrawParams{
		ScreenSize: [2]float32{float32(width), float32(height)},
		BaseTint:   textforge.White.Vec4(),
	}
}

// Builder accumulates quads for one draw.
// Append order is draw order: there is no depth test downstream, so callers
// emit background quads before the glyph quads that must composite on top.
//
// Builder is not safe for concurrent use; each layout pass owns its own.
type Builder struct {
	vertices []Vertex
}

// NewBuilder creates an empty geometry builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AppendGlyphQuad appends a textured quad at (x, y) with the given pixel
// size, sampling the atlas rectangle [uvMin, uvMax].
func (b *Builder) AppendGlyphQuad(x, y, w, h float64, uvMin, uvMax [2]float64, color textforge.RGBA) {
	b.appendQuad(x, y, w, h,
		[2]float32{float32(uvMin[0]), float32(uvMin[1])},
		[2]float32{float32(uvMax[0]), float32(uvMax[1])},
		color.Vec4())
}

// AppendSolidQuad appends an untextured fill quad at (x, y) with the given
// pixel size, using the solid-fill UV sentinel.
func (b *Builder) AppendSolidQuad(x, y, w, h float64, color textforge.RGBA) {
	b.appendQuad(x, y, w, h, SolidUV, SolidUV, color.Vec4())
}

// appendQuad emits two triangles, six vertices:
// (TL, TR, BL) and (TR, BR, BL).
func (b *Builder) appendQuad(x, y, w, h float64, uvMin, uvMax [2]float32, color [4]float32) {
	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+w), float32(y+h)

	tl := Vertex{Position: [2]float32{x0, y0}, UV: uvMin, Color: color}
	tr := Vertex{Position: [2]float32{x1, y0}, UV: [2]float32{uvMax[0], uvMin[1]}, Color: color}
	bl := Vertex{Position: [2]float32{x0, y1}, UV: [2]float32{uvMin[0], uvMax[1]}, Color: color}
	br := Vertex{Position: [2]float32{x1, y1}, UV: uvMax, Color: color}

	b.vertices = append(b.vertices, tl, tr, bl, tr, br, bl)
}

// Vertices returns the accumulated vertex list.
// The slice is owned by the builder and valid until the next Reset.
func (b *Builder) Vertices() []Vertex {
	return b.vertices
}

// Len returns the number of accumulated vertices.
func (b *Builder) Len() int {
	return len(b.vertices)
}

// QuadCount returns the number of accumulated quads.
func (b *Builder) QuadCount() int {
	return len(b.vertices) / 6
}

// Reset clears the builder for the next layout pass, keeping capacity.
func (b *Builder) Reset() {
	b.vertices = b.vertices[:0]
}
