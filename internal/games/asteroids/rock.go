package asteroids

import "github.com/vkarpenko/tui-asteroids/internal/core"

// Rock is a drifting circular obstacle. Radius determines its size class:
// rocks at the minimum radius disappear outright when hit, larger ones split
// into fragments.
type Rock struct {
	Pos    Vec
	Vel    Vec
	Radius int        // Always within [min_radius, max_radius]
	Color  core.Color // Visual tag, opaque to the simulation; fragments inherit it
}

// Move applies velocity with toroidal wrap.
func (r *Rock) Move(w, h float64) {
	r.Pos = Wrap(r.Pos.Add(r.Vel), w, h)
}
