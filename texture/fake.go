package texture

import "github.com/Ghazaleh-ans/cub3d/world"

// FakeDecoder implements world.Decoder by synthesizing a uniform-color
// texture of the given Side, bypassing the filesystem. It lets
// packages that consume a world.World exercise realistic texel data
// without depending on XPM fixtures on disk.
type FakeDecoder struct {
	Side  int
	Color uint32
}

// Decode ignores path and returns a Side x Side grid filled with Color.
func (f FakeDecoder) Decode(path string) (world.TexelGrid, error) {
	texels := make([]uint32, f.Side*f.Side)
	for i := range texels {
		texels[i] = f.Color
	}
	return world.TexelGrid{Side: f.Side, Texels: texels}, nil
}
