package asteroids

import "math"

// Snapshot captures the full round state for determinism testing. It is not
// persisted; mid-round save/load is deliberately unsupported.
type Snapshot struct {
	Tick  int
	Score int
	Over  bool

	ShipX, ShipY   float64
	ShipVX, ShipVY float64
	ShipHeading    float64

	// Projectiles flattened in insertion order, 5 floats each:
	// X, Y, DirX, DirY, Age.
	ProjectileCount int
	ProjectileData  []float64

	// Rocks flattened in insertion order, 5 floats each:
	// X, Y, VX, VY, Radius.
	RockCount int
	RockData  []float64
}

// Snapshot returns the current round snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.round == nil {
		return Snapshot{}
	}
	return g.round.snapshot(g.tick)
}

func (r *Round) snapshot(tick int) Snapshot {
	ship := *r.ship

	projData := make([]float64, 0, len(r.projectiles)*5)
	for _, p := range r.projectiles {
		projData = append(projData, p.Pos.X, p.Pos.Y, p.Dir.X, p.Dir.Y, float64(p.Age))
	}

	rockData := make([]float64, 0, len(r.rocks)*5)
	for _, rock := range r.rocks {
		rockData = append(rockData, rock.Pos.X, rock.Pos.Y, rock.Vel.X, rock.Vel.Y, float64(rock.Radius))
	}

	return Snapshot{
		Tick:            tick,
		Score:           r.score,
		Over:            r.over,
		ShipX:           ship.Pos.X,
		ShipY:           ship.Pos.Y,
		ShipVX:          ship.Vel.X,
		ShipVY:          ship.Vel.Y,
		ShipHeading:     ship.Heading,
		ProjectileCount: len(r.projectiles),
		ProjectileData:  projData,
		RockCount:       len(r.rocks),
		RockData:        rockData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)        //#nosec G115 -- tick count is always positive
	h = h*31 + uint64(snap.Score) //#nosec G115 -- score is non-negative
	if snap.Over {
		h = h*31 + 1
	} else {
		h = h * 31
	}
	h = h*31 + math.Float64bits(snap.ShipX)
	h = h*31 + math.Float64bits(snap.ShipY)
	h = h*31 + math.Float64bits(snap.ShipVX)
	h = h*31 + math.Float64bits(snap.ShipVY)
	h = h*31 + math.Float64bits(snap.ShipHeading)

	for _, v := range snap.ProjectileData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.RockData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
