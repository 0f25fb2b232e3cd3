// Package config holds the fixed tunables of the renderer: viewport
// resolution, movement and rotation speeds, and minimap layout.
package config

// Viewport resolution in pixels, per spec.md's "e.g. 1024x768" example.
const (
	ViewportWidth  = 1024
	ViewportHeight = 768
)

// FOV plane length; |plane| = 0.66 gives FOV ~= 66 degrees.
const CameraPlaneLength = 0.66

// Movement and rotation speeds, expressed per second; the Frame Driver
// scales these by the tick's dt. MouseSensitivity is radians per pixel
// of horizontal pointer movement and is not scaled by dt.
const (
	MoveSpeed       = 3.0 // cells/sec
	RotateSpeed     = 2.0 // radians/sec
	MouseSensitivity = 0.0025
)

// Minimap layout: integer cell scale and top-left pixel offset.
const (
	MinimapCellScale = 6
	MinimapOffsetX   = 12
	MinimapOffsetY   = 12
)
