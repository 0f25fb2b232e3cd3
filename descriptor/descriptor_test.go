package descriptor

import (
	"reflect"
	"strings"
	"testing"
)

const s1 = `NO ./n.xpm
SO ./s.xpm
WE ./w.xpm
EA ./e.xpm
F 220,100,0
C 225,30,0

111
1N1
111
`

func TestLoadMinimalMap(t *testing.T) {
	d, err := Load(strings.NewReader(s1))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	want := &Descriptor{
		North: "./n.xpm", South: "./s.xpm", West: "./w.xpm", East: "./e.xpm",
		Floor: RGB{220, 100, 0}, Ceiling: RGB{225, 30, 0},
		Rows: []string{"111", "1N1", "111"},
	}
	// Directive order in the descriptor isn't observable here, only
	// the data, so compare by field rather than raw struct.
	if d.North != want.North || d.South != want.South || d.West != want.West || d.East != want.East {
		t.Errorf("paths: got %+v, want %+v", d, want)
	}
	if d.Floor != want.Floor || d.Ceiling != want.Ceiling {
		t.Errorf("colors: floor=%v ceiling=%v, want floor=%v ceiling=%v", d.Floor, d.Ceiling, want.Floor, want.Ceiling)
	}
	if !reflect.DeepEqual(d.Rows, want.Rows) {
		t.Errorf("rows: got %v, want %v", d.Rows, want.Rows)
	}
}

func TestLoadDirectiveOrderFree(t *testing.T) {
	shuffled := `F 1,2,3
WE ./w.xpm
C 4,5,6
NO ./n.xpm
EA ./e.xpm
SO ./s.xpm

111
1N1
111
`
	d, err := Load(strings.NewReader(shuffled))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if d.Floor != (RGB{1, 2, 3}) || d.Ceiling != (RGB{4, 5, 6}) {
		t.Errorf("got floor=%v ceiling=%v", d.Floor, d.Ceiling)
	}
}

func TestDuplicateDirective(t *testing.T) {
	in := `NO ./n.xpm
NO ./other.xpm
SO ./s.xpm
WE ./w.xpm
EA ./e.xpm
F 1,2,3
C 4,5,6

111
1N1
111
`
	_, err := Load(strings.NewReader(in))
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != KindDuplicateDirective {
		t.Fatalf("got %v, want DuplicateDirective", err)
	}
}

func TestUnknownDirective(t *testing.T) {
	in := `XY foo
NO ./n.xpm
SO ./s.xpm
WE ./w.xpm
EA ./e.xpm
F 1,2,3
C 4,5,6
`
	_, err := Load(strings.NewReader(in))
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != KindUnknownDirective {
		t.Fatalf("got %v, want UnknownDirective", err)
	}
}

func TestMalformedRGB(t *testing.T) {
	in := `NO ./n.xpm
SO ./s.xpm
WE ./w.xpm
EA ./e.xpm
F 1,2
C 4,5,6
`
	_, err := Load(strings.NewReader(in))
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != KindMalformedRGB {
		t.Fatalf("got %v, want MalformedRGB", err)
	}
}

func TestUnexpectedContentAfterGrid(t *testing.T) {
	in := `NO ./n.xpm
SO ./s.xpm
WE ./w.xpm
EA ./e.xpm
F 1,2,3
C 4,5,6

111
1N1
111

not part of anything
`
	_, err := Load(strings.NewReader(in))
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != KindUnexpectedContentAfterGrid {
		t.Fatalf("got %v, want UnexpectedContentAfterGrid", err)
	}
}

func TestEOFTerminatesGrid(t *testing.T) {
	in := `NO ./n.xpm
SO ./s.xpm
WE ./w.xpm
EA ./e.xpm
F 1,2,3
C 4,5,6

111
1N1
111`
	d, err := Load(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(d.Rows, []string{"111", "1N1", "111"}) {
		t.Errorf("got rows %v", d.Rows)
	}
}
