package life

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"lifegrid/pkg/core"
)

// Template is a named pattern of live cells given as [row, col] offsets from
// the pattern origin.
type Template struct {
	Name  string
	Descr string
	Cells [][2]uint32
}

// Bounds returns the number of rows and columns spanned by the template.
func (t Template) Bounds() (rows, cols uint32) {
	for _, rc := range t.Cells {
		if rc[0]+1 > rows {
			rows = rc[0] + 1
		}
		if rc[1]+1 > cols {
			cols = rc[1] + 1
		}
	}
	return rows, cols
}

// Builtins returns the bundled templates.
func Builtins() []Template {
	return []Template{
		{Name: "block", Descr: "2x2 still life", Cells: [][2]uint32{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
		{Name: "beehive", Descr: "six-cell still life", Cells: [][2]uint32{{0, 1}, {0, 2}, {1, 0}, {1, 3}, {2, 1}, {2, 2}}},
		{Name: "blinker", Descr: "period 2 oscillator", Cells: [][2]uint32{{0, 0}, {0, 1}, {0, 2}}},
		{Name: "glider", Descr: "diagonal spaceship", Cells: [][2]uint32{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}},
		{Name: "rpentomino", Descr: "methuselah, stabilises after 1103 generations", Cells: [][2]uint32{{0, 1}, {0, 2}, {1, 0}, {1, 1}, {2, 1}}},
	}
}

// RegisterTemplates makes each template available as a named seeder.
func RegisterTemplates(ts []Template) {
	for _, t := range ts {
		core.RegisterSeeder(t.Name, FromTemplate(t))
	}
}

// ErrBadTemplate is returned for template documents that cannot be used.
var ErrBadTemplate = errors.New("life: bad template")

type templateDoc struct {
	Name  string    `yaml:"name"`
	Descr string    `yaml:"descr"`
	Cells [][]int64 `yaml:"cells"`
	Rows  []string  `yaml:"rows"`
}

// LoadTemplates parses a YAML list of templates. Each entry names its live
// cells either as [row, col] pairs or as plaintext rows where 'O', '*' or '#'
// is alive and '.' or ' ' is dead.
//
//	- name: glider
//	  rows: [".O.", "..O", "OOO"]
func LoadTemplates(r io.Reader) ([]Template, error) {
	var docs []templateDoc
	if err := yaml.NewDecoder(r).Decode(&docs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode templates: %w", err)
	}

	out := make([]Template, 0, len(docs))
	seen := make(map[string]bool, len(docs))
	for i, d := range docs {
		t, err := d.template()
		if err != nil {
			return nil, fmt.Errorf("template %d: %w", i, err)
		}
		if seen[t.Name] {
			return nil, fmt.Errorf("template %d: %w: duplicate name %q", i, ErrBadTemplate, t.Name)
		}
		seen[t.Name] = true
		out = append(out, t)
	}
	return out, nil
}

func (d templateDoc) template() (Template, error) {
	t := Template{Name: d.Name, Descr: d.Descr}
	if d.Name == "" {
		return t, fmt.Errorf("%w: missing name", ErrBadTemplate)
	}
	for _, rc := range d.Cells {
		if len(rc) != 2 || rc[0] < 0 || rc[1] < 0 || rc[0] > 1<<31 || rc[1] > 1<<31 {
			return t, fmt.Errorf("%w: %q: bad coordinate %v", ErrBadTemplate, d.Name, rc)
		}
		t.Cells = append(t.Cells, [2]uint32{uint32(rc[0]), uint32(rc[1])})
	}
	for row, line := range d.Rows {
		for col, ch := range []rune(line) {
			switch ch {
			case 'O', '*', '#':
				t.Cells = append(t.Cells, [2]uint32{uint32(row), uint32(col)})
			case '.', ' ':
			default:
				return t, fmt.Errorf("%w: %q: unexpected %q at row %d", ErrBadTemplate, d.Name, ch, row)
			}
		}
	}
	if len(t.Cells) == 0 {
		return t, fmt.Errorf("%w: %q has no live cells", ErrBadTemplate, d.Name)
	}
	return t, nil
}
