package world

import (
	"testing"
)

type fakeDecoder struct{ side int }

func (f fakeDecoder) Decode(path string) (TexelGrid, error) {
	texels := make([]uint32, f.side*f.side)
	for i := range texels {
		texels[i] = PackRGB(10, 20, 30)
	}
	return TexelGrid{Side: f.side, Texels: texels}, nil
}

func TestWorldNewSpawnsAtCellCenter(t *testing.T) {
	grid := NewGrid([][]byte{
		[]byte("111"),
		[]byte("1N1"),
		[]byte("111"),
	})

	w, err := New(Descriptor{
		NorthPath: "n", SouthPath: "s", EastPath: "e", WestPath: "w",
		Colors: ColorPair{Ceiling: RGB{1, 2, 3}, Floor: RGB{4, 5, 6}},
		Grid:   grid,
	}, fakeDecoder{side: 64}, 0.66)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if w.Player.Pos.X() != 1.5 || w.Player.Pos.Y() != 1.5 {
		t.Errorf("pos = %v, want (1.5, 1.5)", w.Player.Pos)
	}
	if w.Player.Dir.X() != 0 || w.Player.Dir.Y() != -1 {
		t.Errorf("dir = %v, want (0, -1)", w.Player.Dir)
	}
	if w.Player.Plane.X() != 0.66 || w.Player.Plane.Y() != 0 {
		t.Errorf("plane = %v, want (0.66, 0)", w.Player.Plane)
	}
	if w.Grid.At(1, 1) != CellOpen {
		t.Errorf("spawn cell not rewritten to open, got %q", w.Grid.At(1, 1))
	}
	// Original grid passed in must not be mutated (New clones it).
	if grid.At(1, 1) != SpawnN {
		t.Errorf("input grid was mutated in place")
	}
}

func TestWorldNewRejectsMismatchedTextureSides(t *testing.T) {
	grid := NewGrid([][]byte{[]byte("111"), []byte("1N1"), []byte("111")})

	calls := 0
	dec := decoderFunc(func(path string) (TexelGrid, error) {
		calls++
		side := 64
		if calls == 2 { // south texture decodes to a different side
			side = 32
		}
		return TexelGrid{Side: side, Texels: make([]uint32, side*side)}, nil
	})

	_, err := New(Descriptor{
		NorthPath: "n", SouthPath: "s", EastPath: "e", WestPath: "w",
		Grid: grid,
	}, dec, 0.66)
	if err == nil {
		t.Fatal("expected an error for mismatched texture sides")
	}
}

type decoderFunc func(path string) (TexelGrid, error)

func (f decoderFunc) Decode(path string) (TexelGrid, error) { return f(path) }
