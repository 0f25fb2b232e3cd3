// Package render implements the Column Renderer: it turns a
// raycaster.HitRecord plus the world's textures and colors into pixels
// written to a Framebuffer, and fills the ceiling/floor background
// each frame.
package render

import "github.com/Ghazaleh-ans/cub3d/world"

// Framebuffer is a Ws x Hs array of RGB pixels, stored as tightly
// packed RGBA bytes (alpha always 0xff) so the Frame Driver can hand
// Pix straight to an ebiten.Image without a conversion pass.
type Framebuffer struct {
	Width, Height int
	Pix           []byte
}

// NewFramebuffer allocates a zeroed w x h buffer.
func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{Width: w, Height: h, Pix: make([]byte, w*h*4)}
}

// Set writes one pixel. Out-of-bounds writes are silently dropped: the
// renderer's own bounds arithmetic (drawStart/drawEnd clamps) should
// never produce one, but a column at the viewport edge is cheaper to
// guard here than to special-case at every call site.
func (fb *Framebuffer) Set(x, y int, rgb uint32) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	r, g, b := world.UnpackRGB(rgb)
	i := (y*fb.Width + x) * 4
	fb.Pix[i+0] = r
	fb.Pix[i+1] = g
	fb.Pix[i+2] = b
	fb.Pix[i+3] = 0xff
}

// At returns the pixel at (x, y) as separate components, mainly for
// tests; the Frame Driver reads Pix directly.
func (fb *Framebuffer) At(x, y int) (r, g, b, a uint8) {
	i := (y*fb.Width + x) * 4
	return fb.Pix[i+0], fb.Pix[i+1], fb.Pix[i+2], fb.Pix[i+3]
}

// FillBackground paints the upper half of the framebuffer with the
// ceiling color and the lower half with the floor color.
func FillBackground(fb *Framebuffer, colors world.ColorPair) {
	ceiling := world.PackRGB(colors.Ceiling.R, colors.Ceiling.G, colors.Ceiling.B)
	floor := world.PackRGB(colors.Floor.R, colors.Floor.G, colors.Floor.B)
	half := fb.Height / 2

	for y := 0; y < fb.Height; y++ {
		c := floor
		if y < half {
			c = ceiling
		}
		for x := 0; x < fb.Width; x++ {
			fb.Set(x, y, c)
		}
	}
}
