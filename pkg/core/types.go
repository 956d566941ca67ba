package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a host needs to drive and draw a grid
// simulation.
type Sim interface {
	Name() string
	Size() Size
	Step()
	Cells() []uint8
	Generation() uint64
	Population() int
}

// Editor is implemented by simulations whose cells can be edited by a host.
type Editor interface {
	ToggleCell(row, col uint32)
	Clear()
	Seed(s Seeder)
}

// Seeder writes an initial pattern into a freshly cleared, row-major buffer of
// width*height cells. Seeders must be deterministic functions of their inputs.
type Seeder func(width, height uint32, cells []uint8)

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var (
	sims    = map[string]Factory{}
	seeders = map[string]Seeder{}
)

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// RegisterSeeder adds a named seeding pattern.
func RegisterSeeder(name string, s Seeder) {
	if name == "" || s == nil {
		return
	}
	seeders[name] = s
}

// Seeders exposes the registry of named seeding patterns.
func Seeders() map[string]Seeder {
	return seeders
}

// SeederNames returns the registered seeder names in sorted order.
func SeederNames() []string {
	names := make([]string, 0, len(seeders))
	for k := range seeders {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
