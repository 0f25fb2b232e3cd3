// Package texture implements the ImageDecoder service: it reads XPM
// (X PixMap) wall textures from disk and decodes them into
// world.TexelGrid values the World Model can use directly.
package texture

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Ghazaleh-ans/cub3d/world"
)

// DecodeError is returned for any failure while parsing XPM source.
type DecodeError struct {
	Path string
	Line int
	Msg  string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: line %d: %s", e.Path, e.Line, e.Msg)
}

func newErr(path string, line int, format string, args ...any) *DecodeError {
	return &DecodeError{Path: path, Line: line, Msg: fmt.Sprintf(format, args...)}
}

// XPMDecoder implements world.Decoder by reading XPM2/XPM3 files off
// disk. It holds no state between calls, so one instance can decode
// all four wall textures of a level.
type XPMDecoder struct{}

// Decode reads the file at path and returns its pixels as a square,
// power-of-two TexelGrid. Width and height must match; world.New is
// responsible for checking that all four textures of a level agree.
func (XPMDecoder) Decode(path string) (world.TexelGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return world.TexelGrid{}, fmt.Errorf("opening texture %q: %w", path, err)
	}
	defer f.Close()

	grid, err := decode(path, f)
	if err != nil {
		return world.TexelGrid{}, err
	}
	return grid, nil
}

// decode parses the quoted-string body of an XPM file: a header
// string "width height ncolors cpp", ncolors color-table strings, then
// height pixel-row strings, each cpp*width characters long.
func decode(path string, r *os.File) (world.TexelGrid, error) {
	strs, err := quotedStrings(path, r)
	if err != nil {
		return world.TexelGrid{}, err
	}
	if len(strs) == 0 {
		return world.TexelGrid{}, newErr(path, 0, "no quoted strings found")
	}

	width, height, nColors, cpp, err := parseHeader(path, strs[0].line, strs[0].text)
	if err != nil {
		return world.TexelGrid{}, err
	}
	if width != height {
		return world.TexelGrid{}, newErr(path, strs[0].line, "texture is %dx%d, want square", width, height)
	}
	if !world.IsPowerOfTwo(width) {
		return world.TexelGrid{}, newErr(path, strs[0].line, "texture side %d is not a power of two", width)
	}
	if len(strs) < 1+nColors+height {
		return world.TexelGrid{}, newErr(path, strs[len(strs)-1].line, "expected %d color and %d pixel strings, found %d total strings", nColors, height, len(strs)-1)
	}

	palette := make(map[string]uint32, nColors)
	for i := 0; i < nColors; i++ {
		s := strs[1+i]
		key, rgb, err := parseColorEntry(path, s.line, s.text, cpp)
		if err != nil {
			return world.TexelGrid{}, err
		}
		palette[key] = rgb
	}

	texels := make([]uint32, width*height)
	for row := 0; row < height; row++ {
		s := strs[1+nColors+row]
		if len(s.text) != width*cpp {
			return world.TexelGrid{}, newErr(path, s.line, "pixel row has %d characters, want %d", len(s.text), width*cpp)
		}
		for col := 0; col < width; col++ {
			key := s.text[col*cpp : col*cpp+cpp]
			rgb, ok := palette[key]
			if !ok {
				return world.TexelGrid{}, newErr(path, s.line, "pixel symbol %q not in color table", key)
			}
			texels[row*width+col] = rgb
		}
	}

	return world.TexelGrid{Side: width, Texels: texels}, nil
}

type quoted struct {
	line int
	text string
}

// quotedStrings extracts every "..." literal from the file, in order,
// skipping the C-style declaration lines (/* XPM */, static char *…)
// that wrap them.
func quotedStrings(path string, r *os.File) ([]quoted, error) {
	var out []quoted
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		for {
			start := strings.IndexByte(text, '"')
			if start < 0 {
				break
			}
			end := strings.IndexByte(text[start+1:], '"')
			if end < 0 {
				return nil, newErr(path, line, "unterminated quoted string")
			}
			end += start + 1
			out = append(out, quoted{line: line, text: text[start+1 : end]})
			text = text[end+1:]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading texture %q: %w", path, err)
	}
	return out, nil
}

func parseHeader(path string, line int, s string) (width, height, nColors, cpp int, err error) {
	fields := strings.Fields(s)
	if len(fields) < 4 {
		return 0, 0, 0, 0, newErr(path, line, "header %q must have 4 fields", s)
	}
	vals := make([]int, 4)
	for i := 0; i < 4; i++ {
		n, convErr := strconv.Atoi(fields[i])
		if convErr != nil {
			return 0, 0, 0, 0, newErr(path, line, "header field %d (%q) is not an integer", i, fields[i])
		}
		vals[i] = n
	}
	return vals[0], vals[1], vals[2], vals[3], nil
}

// parseColorEntry parses a color-table line of the form
// "<symbol> c #RRGGBB" or "<symbol> c <name>". Only the hex form is
// resolved to an actual color; every named color, "None" included, is
// rejected, since texels are always opaque RGB.
func parseColorEntry(path string, line int, s string, cpp int) (string, uint32, error) {
	if len(s) < cpp {
		return "", 0, newErr(path, line, "color entry %q shorter than chars-per-pixel %d", s, cpp)
	}
	key := s[:cpp]
	rest := strings.Fields(s[cpp:])

	// rest looks like ["c", "#RRGGBB"] for the one key type cub3d
	// textures use; other XPM key letters (g, m, s) are not supported.
	idx := -1
	for i, f := range rest {
		if f == "c" {
			idx = i
			break
		}
	}
	if idx < 0 || idx+1 >= len(rest) {
		return "", 0, newErr(path, line, "color entry %q has no color-key (c) value", s)
	}

	spec := rest[idx+1]
	if !strings.HasPrefix(spec, "#") || len(spec) != 7 {
		return "", 0, newErr(path, line, "unsupported color value %q, want #RRGGBB", spec)
	}
	v, err := strconv.ParseUint(spec[1:], 16, 32)
	if err != nil {
		return "", 0, newErr(path, line, "color value %q is not valid hex", spec)
	}
	return key, uint32(v), nil
}
