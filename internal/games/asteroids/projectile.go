package asteroids

// Projectile is a short-lived shot. Its direction is fixed at creation; hit
// testing uses the tip (leading edge), not the base point.
type Projectile struct {
	Pos Vec
	Dir Vec // Unit vector, fixed at creation
	Vel Vec // Dir scaled by projectile speed
	Age int // Frames survived, starts at 0
}

// NewProjectile creates a projectile at pos moving along dir at the given
// speed. The direction must be non-zero; a zero vector is a caller bug and is
// rejected with ErrZeroVector.
func NewProjectile(pos, dir Vec, speed float64) (*Projectile, error) {
	unit, err := dir.Normalize()
	if err != nil {
		return nil, err
	}
	return &Projectile{
		Pos: pos,
		Dir: unit,
		Vel: unit.Scale(speed),
	}, nil
}

// GrowOlder advances the projectile's age by one frame.
func (p *Projectile) GrowOlder() {
	p.Age++
}

// Alive reports whether the projectile is still live. The bound is
// inclusive: a projectile at exactly maxAge survives one more frame.
func (p *Projectile) Alive(maxAge int) bool {
	return p.Age <= maxAge
}

// Move applies velocity with toroidal wrap.
func (p *Projectile) Move(w, h float64) {
	p.Pos = Wrap(p.Pos.Add(p.Vel), w, h)
}

// Tip returns the leading point used for hit testing: the position advanced
// along the direction by the projectile length.
func (p *Projectile) Tip(length float64) Vec {
	return p.Pos.Add(p.Dir.Scale(length))
}
