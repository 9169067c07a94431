package asteroids

// Intents is the input state sampled once per frame: which controls are held
// this tick. It is decoupled from raw key events.
type Intents struct {
	TurnLeft  bool
	TurnRight bool
	Thrust    bool
	Fire      bool
}

// Round owns all live simulation state for one round: the ship, the live
// projectile and rock collections, and the score. Nothing outside the round
// holds a reference to these collections between frames.
//
// Both collections iterate in insertion order; collision tie-breaks are
// first-match-wins in that order.
type Round struct {
	cfg     *roundConfig
	rng     Rand
	spawner *Spawner

	ship        *Ship
	projectiles []*Projectile
	rocks       []*Rock

	score int
	over  bool
	frame int

	// minPopulation is the live rock floor restored at the start of every
	// frame. Starts at the configured value; the difficulty layer may raise
	// it mid-round.
	minPopulation int
}

// roundConfig is the slice of AsteroidsConfig the round reads every frame,
// flattened to avoid reaching through nested structs in the hot loop.
type roundConfig struct {
	arenaW, arenaH float64
	shipMaxSpeed   float64
	shipTurnStep   float64
	shipThrust     float64
	projSpeed      float64
	projLength     float64
	projMaxAge     int
	projMaxLive    int
	rockMinRadius  int
	rockMaxRadius  int
	minRockPop     int
}

// NewRound starts a round: the ship at arena center with a random heading
// and unit forward speed, no projectiles, and the initial rock population
// entering from off-arena.
func NewRound(spawner *Spawner, rng Rand) *Round {
	cfg := spawner.cfg
	rc := &roundConfig{
		arenaW:        cfg.Arena.Width,
		arenaH:        cfg.Arena.Height,
		shipMaxSpeed:  cfg.Ship.MaxSpeed,
		shipTurnStep:  cfg.Ship.TurnStep,
		shipThrust:    cfg.Ship.Thrust,
		projSpeed:     cfg.Projectiles.Speed,
		projLength:    cfg.Projectiles.Length,
		projMaxAge:    cfg.Projectiles.MaxAge,
		projMaxLive:   cfg.Projectiles.MaxLive,
		rockMinRadius: cfg.Rocks.MinRadius,
		rockMaxRadius: cfg.Rocks.MaxRadius,
		minRockPop:    cfg.Rocks.MinPopulation,
	}

	center := Vec{X: rc.arenaW / 2, Y: rc.arenaH / 2}
	r := &Round{
		cfg:           rc,
		rng:           rng,
		spawner:       spawner,
		ship:          NewShip(center, float64(rng.Intn(360)), cfg.Ship.SizeMajor, cfg.Ship.SizeMinor),
		minPopulation: rc.minRockPop,
	}
	r.rocks = spawner.SpawnOffscreen(r.minPopulation)
	return r
}

// Tune adjusts difficulty-scaled parameters before a frame. minPopulation
// below the configured floor is ignored; the round never gets easier than
// its config.
func (r *Round) Tune(speedScale float64, minPopulation int) {
	r.spawner.SetSpeedScale(speedScale)
	if minPopulation >= r.cfg.minRockPop {
		r.minPopulation = minPopulation
	}
}

// Advance runs one simulation frame. Frames on an ended round are no-ops.
//
// Order within a frame:
//  1. apply intents (turn, thrust, fire)
//  2. restore the rock population floor via off-arena spawn
//  3. projectile pass: age, expire, move, then hit-test the tip against
//     rocks in insertion order (at most one hit per projectile per frame,
//     first match wins); hits score, remove the rock, and stage fragments
//  4. merge staged fragments (they are not hit-testable this frame)
//  5. move every rock, then test ship collision; any hit ends the round
//  6. move the ship
func (r *Round) Advance(in Intents) {
	if r.over {
		return
	}
	r.frame++

	// 1. Intents
	if in.TurnLeft {
		r.ship.Turn(-r.cfg.shipTurnStep)
	}
	if in.TurnRight {
		r.ship.Turn(r.cfg.shipTurnStep)
	}
	if in.Thrust {
		r.ship.Accelerate(r.cfg.shipThrust, r.cfg.shipMaxSpeed)
	}
	if in.Fire {
		r.tryFire()
	}

	// 2. Population maintenance
	if missing := r.minPopulation - len(r.rocks); missing > 0 {
		r.rocks = append(r.rocks, r.spawner.SpawnOffscreen(missing)...)
	}

	// 3. Projectile pass
	var staged []*Rock
	for i := 0; i < len(r.projectiles); {
		p := r.projectiles[i]
		p.GrowOlder()
		if !p.Alive(r.cfg.projMaxAge) {
			// Expired projectiles neither move nor hit-test this frame.
			r.removeProjectileAt(i)
			continue
		}
		p.Move(r.cfg.arenaW, r.cfg.arenaH)

		hit := r.firstRockHit(p)
		if hit < 0 {
			i++
			continue
		}

		rock := r.rocks[hit]
		r.score += r.scoreForHit(rock.Radius)
		r.removeRockAt(hit)
		if rock.Radius > r.cfg.rockMinRadius {
			staged = append(staged, r.spawner.SpawnFragments(rock)...)
		}
		r.removeProjectileAt(i)
	}

	// 4. Merge fragments
	r.rocks = append(r.rocks, staged...)

	// 5. Move all rocks first, then check ship collisions. Moving and
	// colliding are fully decoupled so the outcome does not depend on rock
	// order.
	for _, rock := range r.rocks {
		rock.Move(r.cfg.arenaW, r.cfg.arenaH)
	}
	for _, rock := range r.rocks {
		if r.ship.HitsRock(rock) {
			r.over = true
			return
		}
	}

	// 6. Ship movement
	r.ship.Move(r.cfg.arenaW, r.cfg.arenaH)
}

// tryFire spawns a projectile at the ship's position along its heading,
// unless the live projectile count has reached the cap.
func (r *Round) tryFire() {
	if len(r.projectiles) >= r.cfg.projMaxLive {
		return
	}
	p, err := NewProjectile(r.ship.Pos, HeadingVec(r.ship.Heading), r.cfg.projSpeed)
	if err != nil {
		// HeadingVec always yields a unit vector; this path is unreachable.
		return
	}
	r.projectiles = append(r.projectiles, p)
}

// firstRockHit returns the index of the first rock, in insertion order,
// whose circle contains the projectile's tip, or -1.
func (r *Round) firstRockHit(p *Projectile) int {
	tip := p.Tip(r.cfg.projLength)
	for i, rock := range r.rocks {
		if PointInCircle(tip, rock.Pos, float64(rock.Radius)) {
			return i
		}
	}
	return -1
}

// scoreForHit maps a destroyed rock's radius to points: smaller rocks are
// worth strictly more.
func (r *Round) scoreForHit(radius int) int {
	return 2*r.cfg.rockMaxRadius - radius
}

// removeProjectileAt drops the projectile at index i, preserving insertion
// order. A removed projectile never re-enters the live set.
func (r *Round) removeProjectileAt(i int) {
	r.projectiles = append(r.projectiles[:i], r.projectiles[i+1:]...)
}

// removeRockAt drops the rock at index i, preserving insertion order.
func (r *Round) removeRockAt(i int) {
	r.rocks = append(r.rocks[:i], r.rocks[i+1:]...)
}

// Over reports whether the round has ended.
func (r *Round) Over() bool {
	return r.over
}

// Score returns the current score: non-negative and non-decreasing within a
// round, final once the round is over.
func (r *Round) Score() int {
	return r.score
}

// Frame returns the number of frames advanced so far.
func (r *Round) Frame() int {
	return r.frame
}

// ShipState returns a copy of the ship for rendering.
func (r *Round) ShipState() Ship {
	return *r.ship
}

// ProjectileStates returns copies of the live projectiles, in insertion
// order, for rendering.
func (r *Round) ProjectileStates() []Projectile {
	out := make([]Projectile, len(r.projectiles))
	for i, p := range r.projectiles {
		out[i] = *p
	}
	return out
}

// RockStates returns copies of the live rocks, in insertion order, for
// rendering.
func (r *Round) RockStates() []Rock {
	out := make([]Rock, len(r.rocks))
	for i, rock := range r.rocks {
		out[i] = *rock
	}
	return out
}

// LiveProjectiles returns the number of currently live projectiles.
func (r *Round) LiveProjectiles() int {
	return len(r.projectiles)
}

// LiveRocks returns the number of currently live rocks.
func (r *Round) LiveRocks() int {
	return len(r.rocks)
}
