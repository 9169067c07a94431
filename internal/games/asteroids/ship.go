package asteroids

// Ship is the player craft: an asymmetric triangle pointing along its
// heading. Exactly one ship exists per round.
type Ship struct {
	Pos     Vec
	Vel     Vec
	Heading float64 // Degrees. Unbounded: callers normalize only when deriving a direction vector.

	SizeMajor float64 // Distance from center to the nose vertex
	SizeMinor float64 // Distance from center to the two tail vertices
}

// NewShip creates a ship at pos facing heading with unit forward speed.
func NewShip(pos Vec, heading, sizeMajor, sizeMinor float64) *Ship {
	return &Ship{
		Pos:       pos,
		Vel:       HeadingVec(heading),
		Heading:   heading,
		SizeMajor: sizeMajor,
		SizeMinor: sizeMinor,
	}
}

// Turn rotates the ship by delta degrees. The heading is deliberately not
// clamped to [0, 360).
func (s *Ship) Turn(delta float64) {
	s.Heading += delta
}

// Accelerate adds forward thrust of the given amount along the current
// heading. If the resulting speed exceeds maxSpeed the velocity is uniformly
// rescaled to exactly maxSpeed, preserving direction. The rescale only runs
// when speed strictly exceeds the cap, so a standing start has no
// divide-by-zero path.
func (s *Ship) Accelerate(amount, maxSpeed float64) {
	s.Vel = s.Vel.Add(HeadingVec(s.Heading).Scale(amount))
	speed := s.Vel.Len()
	if speed > maxSpeed {
		s.Vel = s.Vel.Scale(maxSpeed / speed)
	}
}

// Move applies velocity with toroidal wrap.
func (s *Ship) Move(w, h float64) {
	s.Pos = Wrap(s.Pos.Add(s.Vel), w, h)
}

// Vertices returns the three triangle corners: the nose at the heading and
// the two tail corners at +120 and +240 degrees, using the minor axis.
func (s *Ship) Vertices() [3]Vec {
	return [3]Vec{
		s.Pos.Add(Vec{X: s.SizeMajor}.Rotate(s.Heading)),
		s.Pos.Add(Vec{X: s.SizeMinor}.Rotate(s.Heading + 120)),
		s.Pos.Add(Vec{X: s.SizeMinor}.Rotate(s.Heading + 240)),
	}
}

// HitsRock reports whether any ship vertex lies inside the rock's circle.
func (s *Ship) HitsRock(r *Rock) bool {
	for _, v := range s.Vertices() {
		if PointInCircle(v, r.Pos, float64(r.Radius)) {
			return true
		}
	}
	return false
}
