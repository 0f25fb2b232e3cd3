package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Ghazaleh-ans/cub3d/raycaster"
	"github.com/Ghazaleh-ans/cub3d/world"
)

func TestFillBackgroundSplitsHalves(t *testing.T) {
	fb := NewFramebuffer(4, 10)
	colors := world.ColorPair{
		Ceiling: world.RGB{R: 10, G: 20, B: 30},
		Floor:   world.RGB{R: 40, G: 50, B: 60},
	}
	FillBackground(fb, colors)

	r, g, b, _ := fb.At(0, 0)
	if r != 10 || g != 20 || b != 30 {
		t.Errorf("top pixel = (%d,%d,%d), want ceiling color", r, g, b)
	}
	r, g, b, _ = fb.At(0, 9)
	if r != 40 || g != 50 || b != 60 {
		t.Errorf("bottom pixel = (%d,%d,%d), want floor color", r, g, b)
	}
}

func uniformWorld(side int, color uint32) *world.World {
	grid := world.NewGrid([][]byte{
		[]byte("111"),
		[]byte("101"),
		[]byte("111"),
	})
	texels := make([]uint32, side*side)
	for i := range texels {
		texels[i] = color
	}
	tg := world.TexelGrid{Side: side, Texels: texels}
	return &world.World{
		Grid: grid,
		Textures: world.TextureSet{
			North: tg, South: tg, East: tg, West: tg,
		},
		Player: world.PlayerState{
			Pos: mgl32.Vec2{1.5, 1.5},
		},
	}
}

func TestDrawColumnWritesWithinViewport(t *testing.T) {
	w := uniformWorld(8, world.PackRGB(9, 9, 9))
	fb := NewFramebuffer(1, 64)

	hit := raycaster.HitRecord{
		SX:       0,
		HitSide:  raycaster.SideY,
		RDir:     mgl32.Vec2{0, -1},
		PerpDist: 0.5,
	}
	DrawColumn(fb, w, hit)

	r, g, b, a := fb.At(0, 32)
	if r != 9 || g != 9 || b != 9 || a != 0xff {
		t.Errorf("center pixel = (%d,%d,%d,%d), want (9,9,9,255)", r, g, b, a)
	}
}

func TestSelectFaceMapping(t *testing.T) {
	cases := []struct {
		hit  raycaster.HitRecord
		want world.Face
	}{
		{raycaster.HitRecord{HitSide: raycaster.SideY, RDir: mgl32.Vec2{0, -1}}, world.FaceNorth},
		{raycaster.HitRecord{HitSide: raycaster.SideY, RDir: mgl32.Vec2{0, 1}}, world.FaceSouth},
		{raycaster.HitRecord{HitSide: raycaster.SideX, RDir: mgl32.Vec2{-1, 0}}, world.FaceWest},
		{raycaster.HitRecord{HitSide: raycaster.SideX, RDir: mgl32.Vec2{1, 0}}, world.FaceEast},
	}
	for _, c := range cases {
		if got := selectFace(c.hit); got != c.want {
			t.Errorf("selectFace(%+v) = %v, want %v", c.hit, got, c.want)
		}
	}
}
