// Command cub3d loads a .cub level descriptor and runs the raycasting
// renderer against it.
package main

import (
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Ghazaleh-ans/cub3d/config"
	"github.com/Ghazaleh-ans/cub3d/descriptor"
	"github.com/Ghazaleh-ans/cub3d/engine"
	"github.com/Ghazaleh-ans/cub3d/fatal"
	"github.com/Ghazaleh-ans/cub3d/level"
	"github.com/Ghazaleh-ans/cub3d/texture"
	"github.com/Ghazaleh-ans/cub3d/world"
)

func main() {
	if len(os.Args) != 2 {
		fatal.Usage("usage: cub3d <path.cub>")
	}
	path := os.Args[1]

	if filepath.Ext(path) != ".cub" {
		fatal.BadFile("level file must have a .cub extension, got " + path)
	}

	f, err := os.Open(path)
	if err != nil {
		fatal.BadFile(err.Error())
	}
	defer f.Close()

	d, err := descriptor.Load(f)
	if err != nil {
		fatal.Exit(err)
	}

	grid, colors, err := level.Validate(d)
	if err != nil {
		fatal.Exit(err)
	}

	wd := world.Descriptor{
		NorthPath: resolvePath(path, d.North),
		SouthPath: resolvePath(path, d.South),
		EastPath:  resolvePath(path, d.East),
		WestPath:  resolvePath(path, d.West),
		Colors:    colors,
		Grid:      grid,
	}

	w, err := world.New(wd, texture.XPMDecoder{}, config.CameraPlaneLength)
	if err != nil {
		fatal.Exit(err)
	}

	g := engine.New(w)

	ebiten.SetWindowSize(config.ViewportWidth, config.ViewportHeight)
	ebiten.SetWindowTitle("cub3d - " + filepath.Base(path))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		fatal.Exit(err)
	}
}

// resolvePath lets texture paths in the descriptor be given relative
// to the .cub file's own directory rather than the process's cwd.
func resolvePath(levelPath, texPath string) string {
	if filepath.IsAbs(texPath) {
		return texPath
	}
	return filepath.Join(filepath.Dir(levelPath), texPath)
}
