package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/grindlemire/go-dimsync"
)

const tableDoc = `
width: 80
height: 24
root:
  name: table
  scope:
    child:
      column:
        gap: 0
        children:
          - row:
              - participant: {key_from: index, axis: width, child: {label: "a"}}
                name: r0c0
              - participant: {key_from: index, axis: width, child: {label: "bbbb"}}
                name: r0c1
          - row:
              - participant: {key_from: index, axis: width, child: {label: "ccc"}}
                name: r1c0
              - participant: {key_from: index, axis: width, child: {label: "d"}}
                name: r1c1
`

const linkedDoc = `
groups:
  names: {axis: horizontal}
root:
  column:
    - linked: {group: names, child: {label: "ab"}}
      name: short
    - linked: {group: names, child: {label: "abcdef"}}
      name: long
`

func TestParse(t *testing.T) {
	type tc struct {
		input string
		check func(t *testing.T, d *Document)
	}

	tests := map[string]tc{
		"stack as list": {
			input: "root:\n  row:\n    - label: a\n    - label: b\n",
			check: func(t *testing.T, d *Document) {
				if d.Root.Row == nil || len(d.Root.Row.Children) != 2 {
					t.Fatalf("row = %+v, want 2 children", d.Root.Row)
				}
				if d.Root.Row.Gap != 0 {
					t.Errorf("gap = %g, want 0", d.Root.Row.Gap)
				}
			},
		},
		"stack as mapping": {
			input: "root:\n  column:\n    gap: 2\n    children:\n      - label: a\n",
			check: func(t *testing.T, d *Document) {
				if d.Root.Column == nil || d.Root.Column.Gap != 2 || len(d.Root.Column.Children) != 1 {
					t.Fatalf("column = %+v, want gap 2 and 1 child", d.Root.Column)
				}
			},
		},
		"box dimensions": {
			input: "root:\n  box: {width: 10, height: 50%, padding: 1}\n",
			check: func(t *testing.T, d *Document) {
				got := []dimsync.Value{d.Root.Box.Width.Value, d.Root.Box.Height.Value}
				want := []dimsync.Value{dimsync.Fixed(10), dimsync.Percent(50)}
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("dimensions mismatch (-want +got):\n%s", diff)
				}
			},
		},
		"box auto": {
			input: "root:\n  box: {width: auto}\n",
			check: func(t *testing.T, d *Document) {
				if !d.Root.Box.Width.IsAuto() || !d.Root.Box.Height.IsAuto() {
					t.Errorf("box = %+v, want auto dimensions", d.Root.Box)
				}
			},
		},
		"axis aliases": {
			input: "groups:\n  a: {axis: height}\n  b: {axis: x}\nroot:\n  label: a\n",
			check: func(t *testing.T, d *Document) {
				if got := d.Groups["a"].Axis.Axis(); got != dimsync.Vertical {
					t.Errorf("group a axis = %v, want vertical", got)
				}
				if got := d.Groups["b"].Axis.Axis(); got != dimsync.Horizontal {
					t.Errorf("group b axis = %v, want horizontal", got)
				}
			},
		},
		"fixed key": {
			input: "root:\n  participant: {key: 7, axis: vertical, child: {label: a}}\n",
			check: func(t *testing.T, d *Document) {
				p := d.Root.Participant
				if p.Key == nil || *p.Key != 7 {
					t.Fatalf("key = %v, want 7", p.Key)
				}
				if p.Axis.Axis() != dimsync.Vertical {
					t.Errorf("axis = %v, want vertical", p.Axis.Axis())
				}
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			d, err := Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			tt.check(t, d)
		})
	}
}

func TestParseErrors(t *testing.T) {
	type tc struct {
		input   string
		wantErr error
	}

	tests := map[string]tc{
		"missing root": {
			input:   "width: 10\n",
			wantErr: ErrInvalidNode,
		},
		"two kinds": {
			input:   "root:\n  label: a\n  box: {}\n",
			wantErr: ErrInvalidNode,
		},
		"empty node": {
			input:   "root:\n  name: x\n",
			wantErr: ErrInvalidNode,
		},
		"nested empty child": {
			input:   "root:\n  row:\n    - label: a\n    - name: nothing\n",
			wantErr: ErrInvalidNode,
		},
		"participant without key": {
			input:   "root:\n  participant: {axis: width, child: {label: a}}\n",
			wantErr: ErrInvalidNode,
		},
		"participant with both keys": {
			input:   "root:\n  participant: {key: 1, key_from: index, child: {label: a}}\n",
			wantErr: ErrInvalidNode,
		},
		"unknown key_from": {
			input:   "root:\n  participant: {key_from: depth, child: {label: a}}\n",
			wantErr: ErrInvalidNode,
		},
		"scope without child": {
			input:   "root:\n  scope: {domain: 3}\n",
			wantErr: ErrInvalidNode,
		},
		"unknown group": {
			input:   "root:\n  linked: {group: nope, child: {label: a}}\n",
			wantErr: ErrUnknownGroup,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := map[string]string{
		"bad axis":      "groups:\n  a: {axis: diagonal}\nroot:\n  label: a\n",
		"bad dimension": "root:\n  box: {width: wide}\n",
		"bad percent":   "root:\n  box: {width: \"x%\"}\n",
		"not yaml":      "root: [\n",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(input)); err == nil {
				t.Error("Parse() error = nil, want error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	if err := os.WriteFile(path, []byte(tableDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if d.Root.Kind() != "scope" {
		t.Errorf("root kind = %q, want scope", d.Root.Kind())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing) error = nil, want error")
	}
}

func TestBuildDefaults(t *testing.T) {
	d, err := Parse([]byte("root:\n  label: hi\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	s, err := d.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := dimsync.Loose(dimsync.Size{Width: DefaultWidth, Height: DefaultHeight})
	if got := s.Constraints(); got != want {
		t.Errorf("Constraints() = %v, want %v", got, want)
	}
	if s.Frames != DefaultFrames {
		t.Errorf("Frames = %d, want %d", s.Frames, DefaultFrames)
	}
	if len(s.Probes) != 0 {
		t.Errorf("Probes = %d, want 0", len(s.Probes))
	}
}

func TestRunTable(t *testing.T) {
	d, err := Parse([]byte(tableDoc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	s, err := d.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	res := s.Run()

	if res.Frames != 1 || res.Pending != 0 {
		t.Errorf("frames = %d, pending = %d, want 1 and 0", res.Frames, res.Pending)
	}

	got := map[string]float64{}
	for _, p := range res.Probes {
		got[p.Name] = p.Size.Width
	}
	want := map[string]float64{
		"table": 7,
		"r0c0":  3,
		"r0c1":  4,
		"r1c0":  3,
		"r1c1":  4,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("widths mismatch (-want +got):\n%s", diff)
	}

	for _, p := range res.Probes {
		if p.Name == "table" && p.Passes != 2 {
			t.Errorf("table passes = %d, want 2", p.Passes)
		}
	}
	if res.Root != (dimsync.Size{Width: 7, Height: 2}) {
		t.Errorf("root = %v, want 7x2", res.Root)
	}
}

func TestRunLinked(t *testing.T) {
	type tc struct {
		frames      int
		wantFrames  int
		wantPending int
		wantShort   float64
	}

	tests := map[string]tc{
		"settles on the second frame": {
			frames:      4,
			wantFrames:  2,
			wantPending: 0,
			wantShort:   6,
		},
		"single frame leaves the early member pending": {
			frames:      1,
			wantFrames:  1,
			wantPending: 1,
			wantShort:   2,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			d, err := Parse([]byte(linkedDoc))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			d.Frames = tt.frames
			s, err := d.Build()
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if got := s.Groups["names"].Members(); got != 2 {
				t.Fatalf("members = %d, want 2", got)
			}

			res := s.Run()
			if res.Frames != tt.wantFrames || res.Pending != tt.wantPending {
				t.Errorf("frames = %d, pending = %d, want %d and %d",
					res.Frames, res.Pending, tt.wantFrames, tt.wantPending)
			}

			got := map[string]float64{}
			for _, p := range res.Probes {
				got[p.Name] = p.Size.Width
			}
			want := map[string]float64{"short": tt.wantShort, "long": 6}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("widths mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildFreshGroups(t *testing.T) {
	d, err := Parse([]byte(linkedDoc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	a, err := d.Build()
	if err != nil {
		t.Fatal(err)
	}
	b, err := d.Build()
	if err != nil {
		t.Fatal(err)
	}
	if a.Groups["names"] == b.Groups["names"] {
		t.Error("builds share a link group")
	}
	if a.Groups["names"].ID() == b.Groups["names"].ID() {
		t.Error("builds share a group id")
	}
}
