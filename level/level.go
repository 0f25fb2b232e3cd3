// Package level implements the Level Validator: it checks a Loader's
// Descriptor for directive completeness, grid character set, a unique
// spawn, and the enclosure invariant, and normalizes the grid to a
// rectangular world.Grid.
package level

import (
	"fmt"

	"github.com/Ghazaleh-ans/cub3d/descriptor"
	"github.com/Ghazaleh-ans/cub3d/world"
)

// Error kinds the Validator can report, per spec.
const (
	KindMissingDirective  = "MissingDirective"
	KindInvalidCharInGrid = "InvalidCharInGrid"
	KindNoSpawn           = "NoSpawn"
	KindMultipleSpawns    = "MultipleSpawns"
	KindGridNotEnclosed   = "GridNotEnclosed"
)

// ValidationError is returned for any check in this package that fails.
type ValidationError struct {
	Kind string
	Msg  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func newErr(kind, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

var directiveKeys = []string{"NO", "SO", "WE", "EA", "F", "C"}

var validCells = map[byte]bool{
	world.CellWall: true, world.CellOpen: true, world.CellVoid: true,
	world.SpawnN: true, world.SpawnS: true, world.SpawnE: true, world.SpawnW: true,
}

// Validate runs the completeness, normalization, character, spawn and
// enclosure checks in order and returns the assembled grid and colors,
// or the first error encountered.
func Validate(d *descriptor.Descriptor) (*world.Grid, world.ColorPair, error) {
	if err := checkCompleteness(d); err != nil {
		return nil, world.ColorPair{}, err
	}

	grid := normalizeGrid(d.Rows)

	if err := checkCharset(grid); err != nil {
		return nil, world.ColorPair{}, err
	}

	if err := checkSpawn(grid); err != nil {
		return nil, world.ColorPair{}, err
	}

	if err := checkEnclosure(grid); err != nil {
		return nil, world.ColorPair{}, err
	}

	colors := world.ColorPair{
		Ceiling: world.RGB{R: uint8(d.Ceiling.R), G: uint8(d.Ceiling.G), B: uint8(d.Ceiling.B)},
		Floor:   world.RGB{R: uint8(d.Floor.R), G: uint8(d.Floor.G), B: uint8(d.Floor.B)},
	}

	return grid, colors, nil
}

func checkCompleteness(d *descriptor.Descriptor) error {
	for _, k := range directiveKeys {
		if !d.Seen[k] {
			return newErr(KindMissingDirective, "missing %s directive", k)
		}
	}
	if len(d.Rows) == 0 {
		return newErr(KindMissingDirective, "no grid rows given")
	}
	for _, c := range []descriptor.RGB{d.Ceiling, d.Floor} {
		if !inByteRange(c.R) || !inByteRange(c.G) || !inByteRange(c.B) {
			return newErr(KindMissingDirective, "RGB component out of [0,255]: %+v", c)
		}
	}
	return nil
}

func inByteRange(n int) bool { return n >= 0 && n <= 255 }

// normalizeGrid right-pads every row to the width of the longest row.
func normalizeGrid(rows []string) *world.Grid {
	w := 0
	for _, r := range rows {
		if len(r) > w {
			w = len(r)
		}
	}

	cells := make([][]byte, len(rows))
	for i, r := range rows {
		row := make([]byte, w)
		copy(row, r)
		for j := len(r); j < w; j++ {
			row[j] = world.CellVoid
		}
		cells[i] = row
	}

	return world.NewGrid(cells)
}

func checkCharset(g *world.Grid) error {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := g.Cells[y][x]
			if !validCells[c] {
				return newErr(KindInvalidCharInGrid, "invalid character %q at (%d,%d)", c, x, y)
			}
		}
	}
	return nil
}

func checkSpawn(g *world.Grid) error {
	count := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if world.IsSpawn(g.Cells[y][x]) {
				count++
			}
		}
	}
	switch {
	case count == 0:
		return newErr(KindNoSpawn, "no spawn cell in grid")
	case count > 1:
		return newErr(KindMultipleSpawns, "found %d spawn cells, want 1", count)
	}
	return nil
}

// checkEnclosure enforces spec.md §4.B's local invariant: every
// OPEN/SPAWN cell's four orthogonal neighbors must be in-bounds and
// non-void. A sweep-then-verify pass suffices; no flood fill is
// required because the invariant is purely local.
func checkEnclosure(g *world.Grid) error {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := g.Cells[y][x]
			if c != world.CellOpen && !world.IsSpawn(c) {
				continue
			}
			for _, n := range [][2]int{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}} {
				nx, ny := n[0], n[1]
				if !g.InBounds(nx, ny) || g.Cells[ny][nx] == world.CellVoid {
					return newErr(KindGridNotEnclosed, "cell (%d,%d) has an escape neighbor at (%d,%d)", x, y, nx, ny)
				}
			}
		}
	}
	return nil
}
