// Package descriptor implements the Level Descriptor Loader: it reads
// a .cub byte stream and tokenizes it into header directives and a
// rectangular grid of raw rows, without interpreting grid semantics
// (that is the level package's job).
package descriptor

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Error kinds the Loader can report, per spec.
const (
	KindMalformedDirective       = "MalformedDirective"
	KindDuplicateDirective       = "DuplicateDirective"
	KindUnknownDirective         = "UnknownDirective"
	KindMalformedRGB             = "MalformedRGB"
	KindUnexpectedContentAfterGrid = "UnexpectedContentAfterGrid"
)

// ParseError is returned for any failure while tokenizing a descriptor.
type ParseError struct {
	Kind string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at line %d: %s", e.Kind, e.Line, e.Msg)
}

func newErr(kind string, line int, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Line: line, Msg: fmt.Sprintf(format, args...)}
}

// RGB is a raw, range-unchecked triple parsed from an F or C directive;
// range validation ([0,255]) is the Level Validator's job.
type RGB struct {
	R, G, B int
}

// Descriptor is the Loader's output: the six header directives plus
// the raw, unpadded grid rows.
type Descriptor struct {
	North, South, West, East string
	Ceiling, Floor           RGB
	Rows                     []string

	// Seen records which of the six directive keywords actually
	// appeared, so the Validator's completeness check can tell a
	// directive that was never given from an RGB of (0,0,0).
	Seen map[string]bool
}

const (
	dirNorth   = "NO"
	dirSouth   = "SO"
	dirWest    = "WE"
	dirEast    = "EA"
	dirFloor   = "F"
	dirCeiling = "C"
)

// parser holds explicit, instance-local state (as opposed to the
// module-level "how many directives parsed so far" static the source
// used) so that loading is re-entrant and order-independent.
type parser struct {
	d Descriptor

	gridStarted bool
	gridDone    bool
}

func newParser() *parser {
	p := &parser{}
	p.d.Seen = make(map[string]bool, 6)
	return p
}

func (p *parser) allDirectivesSeen() bool {
	return len(p.d.Seen) == 6
}

// isGridRowStart reports whether line's first character marks it as a
// grid row, per spec: the first non-blank character must be '0', '1'
// or space. A row beginning with a spawn glyph in column zero does not
// qualify under this rule -- this narrowness is inherited verbatim
// from the spec, not a bug we're free to fix.
func isGridRowStart(line string) bool {
	if line == "" {
		return false
	}
	c := line[0]
	return c == '0' || c == '1' || c == ' '
}

// Load reads a descriptor from r and returns the tokenized directives
// and grid rows. It does not validate grid semantics.
func Load(r io.Reader) (*Descriptor, error) {
	p := newParser()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimRight(scanner.Text(), "\r")

		if p.gridDone {
			if strings.TrimSpace(raw) != "" {
				return nil, newErr(KindUnexpectedContentAfterGrid, line, "content after grid: %q", raw)
			}
			continue
		}

		if p.gridStarted {
			if raw == "" {
				p.gridDone = true
				continue
			}
			if !isGridRowStart(raw) {
				return nil, newErr(KindUnexpectedContentAfterGrid, line, "content after grid: %q", raw)
			}
			p.d.Rows = append(p.d.Rows, raw)
			continue
		}

		if raw == "" {
			continue // blank lines before the grid are ignored
		}

		if isGridRowStart(raw) && p.allDirectivesSeen() {
			p.gridStarted = true
			p.d.Rows = append(p.d.Rows, raw)
			continue
		}

		if err := p.directive(line, raw); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading descriptor: %w", err)
	}

	if len(p.d.Rows) == 0 && p.gridStarted {
		// Unreachable in practice (gridStarted only flips when a row
		// is appended), kept only as a guard against future edits.
		return nil, newErr(KindMalformedDirective, line, "grid started with no rows")
	}

	return &p.d, nil
}

func (p *parser) directive(line int, raw string) error {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return newErr(KindMalformedDirective, line, "empty directive line")
	}

	key := fields[0]
	args := fields[1:]

	switch key {
	case dirNorth, dirSouth, dirWest, dirEast:
		if p.d.Seen[key] {
			return newErr(KindDuplicateDirective, line, "duplicate %s directive", key)
		}
		if len(args) != 1 {
			return newErr(KindMalformedDirective, line, "%s expects exactly one path argument", key)
		}
		p.d.Seen[key] = true
		switch key {
		case dirNorth:
			p.d.North = args[0]
		case dirSouth:
			p.d.South = args[0]
		case dirWest:
			p.d.West = args[0]
		case dirEast:
			p.d.East = args[0]
		}
		return nil
	case dirFloor, dirCeiling:
		if p.d.Seen[key] {
			return newErr(KindDuplicateDirective, line, "duplicate %s directive", key)
		}
		if len(args) != 1 {
			return newErr(KindMalformedDirective, line, "%s expects exactly one R,G,B argument", key)
		}
		rgb, err := parseRGB(args[0])
		if err != nil {
			return newErr(KindMalformedRGB, line, "%s: %v", key, err)
		}
		p.d.Seen[key] = true
		if key == dirFloor {
			p.d.Floor = rgb
		} else {
			p.d.Ceiling = rgb
		}
		return nil
	default:
		return newErr(KindUnknownDirective, line, "unknown directive %q", key)
	}
}

func parseRGB(s string) (RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("expected 3 comma-separated components, got %d", len(parts))
	}

	vals := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return RGB{}, fmt.Errorf("component %d (%q) is not an integer", i, part)
		}
		vals[i] = n
	}

	return RGB{R: vals[0], G: vals[1], B: vals[2]}, nil
}
