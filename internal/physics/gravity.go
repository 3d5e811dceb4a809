package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/gravsim/internal/dynamo"
)

// Gravity is the pairwise Newtonian force pass. Pairs closer than
// MinDistance, or coincident, contribute nothing; there is no softening term.
type Gravity struct {
	G           float64
	MinDistance float64

	accel   []mgl64.Vec2
	skipped int
}

func NewGravity(p dynamo.Params) *Gravity {
	return &Gravity{
		G:           p.G,
		MinDistance: p.MinDistance,
	}
}

// SetParams replaces the constants with ones already checked by
// dynamo.New.
func (g *Gravity) SetParams(p dynamo.Params) {
	g.G = p.G
	g.MinDistance = p.MinDistance
}

// NetForce sums the force exerted on body i by every other body.
func (g *Gravity) NetForce(bodies []dynamo.Body, i int) mgl64.Vec2 {
	force, _ := g.netForce(bodies, i)
	return force
}

func (g *Gravity) netForce(bodies []dynamo.Body, i int) (mgl64.Vec2, int) {
	var force mgl64.Vec2
	skipped := 0
	bi := bodies[i]

	for j := range bodies {
		if j == i {
			continue
		}

		direction := bodies[j].Position.Sub(bi.Position)
		distance := direction.Len()
		if distance < g.MinDistance || distance == 0 {
			skipped++
			continue
		}

		magnitude := g.G * bi.Mass * bodies[j].Mass / (distance * distance)
		force = force.Add(direction.Mul(1 / distance).Mul(magnitude))
	}

	return force, skipped
}

// Accelerate updates every velocity from the pre-tick positions. All
// accelerations are computed before any velocity is written.
func (g *Gravity) Accelerate(bodies []dynamo.Body, dt float64) {
	n := len(bodies)
	if cap(g.accel) < n {
		g.accel = make([]mgl64.Vec2, n)
	}
	g.accel = g.accel[:n]

	g.skipped = 0
	for i := range bodies {
		force, skipped := g.netForce(bodies, i)
		g.accel[i] = force.Mul(1 / bodies[i].Mass)
		g.skipped += skipped
	}

	for i := range bodies {
		bodies[i].Velocity = bodies[i].Velocity.Add(g.accel[i].Mul(dt))
	}
}

// Skipped reports how many ordered pairs the last pass dropped because they
// were closer than MinDistance.
func (g *Gravity) Skipped() int { return g.skipped }

// Energy returns kinetic plus potential energy. Pairs below the cutoff
// exert no force and therefore contribute no potential.
func (g *Gravity) Energy(bodies []dynamo.Body) float64 {
	ke := 0.0
	pe := 0.0

	for i, bi := range bodies {
		v := bi.Velocity.Len()
		ke += 0.5 * bi.Mass * v * v

		for j := i + 1; j < len(bodies); j++ {
			r := bodies[j].Position.Sub(bi.Position).Len()
			if r < g.MinDistance || r == 0 {
				continue
			}
			pe -= g.G * bi.Mass * bodies[j].Mass / r
		}
	}

	return ke + pe
}

func (g *Gravity) Momentum(bodies []dynamo.Body) mgl64.Vec2 {
	var p mgl64.Vec2
	for _, b := range bodies {
		p = p.Add(b.Velocity.Mul(b.Mass))
	}
	return p
}

func (g *Gravity) AngularMomentum(bodies []dynamo.Body) float64 {
	L := 0.0
	for _, b := range bodies {
		L += b.Mass * (b.Position.X()*b.Velocity.Y() - b.Position.Y()*b.Velocity.X())
	}
	return L
}

// CircularSpeed is the speed of a circular orbit of radius r around a
// central mass, used to seed presets with orbital velocities.
func CircularSpeed(g, centralMass, r float64) float64 {
	if r <= 0 {
		return 0
	}
	return math.Sqrt(g * centralMass / r)
}
