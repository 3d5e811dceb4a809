package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/integrators"
)

func TestGravityEmptyAndSingle(t *testing.T) {
	g := NewGravity(dynamo.DefaultParams())

	g.Accelerate(nil, 0.1)
	if g.Skipped() != 0 {
		t.Errorf("expected no skipped pairs, got %d", g.Skipped())
	}

	bodies := []dynamo.Body{{Position: mgl64.Vec2{1, 1}, Mass: 1}}
	if f := g.NetForce(bodies, 0); f != (mgl64.Vec2{}) {
		t.Errorf("expected zero force on a lone body, got %v", f)
	}
}

func TestGravityUsesPreTickPositions(t *testing.T) {
	g := NewGravity(dynamo.DefaultParams())
	bodies := []dynamo.Body{
		{Position: mgl64.Vec2{0, 0}, Velocity: mgl64.Vec2{0, 1}, Mass: 4e10},
		{Position: mgl64.Vec2{30, 40}, Velocity: mgl64.Vec2{-1, 0}, Mass: 1e10},
		{Position: mgl64.Vec2{-60, 10}, Mass: 2e10},
	}

	want := make([]mgl64.Vec2, len(bodies))
	for i := range bodies {
		a := g.NetForce(bodies, i).Mul(1 / bodies[i].Mass)
		want[i] = bodies[i].Velocity.Add(a.Mul(0.1))
	}

	before := make([]mgl64.Vec2, len(bodies))
	for i, b := range bodies {
		before[i] = b.Position
	}

	g.Accelerate(bodies, 0.1)

	for i := range bodies {
		if bodies[i].Velocity != want[i] {
			t.Errorf("body %d: expected velocity %v, got %v", i, want[i], bodies[i].Velocity)
		}
		if bodies[i].Position != before[i] {
			t.Errorf("body %d: position changed during force pass", i)
		}
	}
}

func TestGravityNetForceMagnitude(t *testing.T) {
	p := dynamo.DefaultParams()
	g := NewGravity(p)
	bodies := []dynamo.Body{
		{Position: mgl64.Vec2{0, 0}, Mass: 2},
		{Position: mgl64.Vec2{3, 4}, Mass: 5},
	}

	f := g.NetForce(bodies, 0)
	expected := p.G * 2 * 5 / 25

	if math.Abs(f.Len()-expected)/expected > 1e-12 {
		t.Errorf("expected magnitude %g, got %g", expected, f.Len())
	}

	unit := f.Normalize()
	if !unit.ApproxEqualThreshold(mgl64.Vec2{0.6, 0.8}, 1e-12) {
		t.Errorf("expected direction (0.6, 0.8), got %v", unit)
	}
}

func TestGravityCustomCutoff(t *testing.T) {
	g := NewGravity(dynamo.Params{G: 1, TimeStep: 1, MinDistance: 0})
	bodies := []dynamo.Body{
		{Position: mgl64.Vec2{0, 0}, Mass: 1},
		{Position: mgl64.Vec2{0.5, 0}, Mass: 1},
	}

	f := g.NetForce(bodies, 0)
	if math.Abs(f.X()-4) > 1e-12 {
		t.Errorf("expected force 4 with no cutoff, got %v", f)
	}
}

func TestGravityCoincidentBodiesWithoutCutoff(t *testing.T) {
	g := NewGravity(dynamo.Params{G: 1, TimeStep: 0.1, MinDistance: 0})
	bodies := []dynamo.Body{
		{Position: mgl64.Vec2{10, 10}, Mass: 1},
		{Position: mgl64.Vec2{10, 10}, Mass: 1},
		{Position: mgl64.Vec2{20, 10}, Mass: 1},
	}

	g.Accelerate(bodies, 0.1)

	for i, b := range bodies {
		if math.IsNaN(b.Velocity.X()) || math.IsNaN(b.Velocity.Y()) {
			t.Fatalf("body %d: velocity %v", i, b.Velocity)
		}
	}
	if g.Skipped() != 2 {
		t.Errorf("expected the coincident pair skipped both ways, got %d", g.Skipped())
	}
	if bodies[2].Velocity.X() >= 0 {
		t.Errorf("far body should still be pulled toward the pair, got %v", bodies[2].Velocity)
	}
}

func TestGravityTakesSimulatorParams(t *testing.T) {
	g := NewGravity(dynamo.Params{G: 99, MinDistance: -1})
	params := dynamo.Params{G: 1, TimeStep: 0.1, MinDistance: 2}

	if _, err := dynamo.New(nil, params, g, integrators.NewSymplecticEuler()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.G != params.G || g.MinDistance != params.MinDistance {
		t.Errorf("expected G %g cutoff %g, got G %g cutoff %g", params.G, params.MinDistance, g.G, g.MinDistance)
	}
}

func TestGravityEnergy(t *testing.T) {
	g := NewGravity(dynamo.Params{G: 1, TimeStep: 0.1, MinDistance: 5})
	bodies := []dynamo.Body{
		{Position: mgl64.Vec2{0, 0}, Velocity: mgl64.Vec2{3, 4}, Mass: 2},
		{Position: mgl64.Vec2{10, 0}, Mass: 3},
		{Position: mgl64.Vec2{12, 0}, Mass: 1},
	}

	// kinetic 25, potential -(2*3/10) - (2*1/12); the 1-2 pair sits inside the cutoff
	expected := 25.0 - 0.6 - 2.0/12.0
	if got := g.Energy(bodies); math.Abs(got-expected) > 1e-12 {
		t.Errorf("expected energy %f, got %f", expected, got)
	}
}

func TestGravityMomentum(t *testing.T) {
	g := NewGravity(dynamo.DefaultParams())
	bodies := []dynamo.Body{
		{Position: mgl64.Vec2{1, 0}, Velocity: mgl64.Vec2{0, 2}, Mass: 3},
		{Position: mgl64.Vec2{-1, 0}, Velocity: mgl64.Vec2{0, -1}, Mass: 6},
	}

	if p := g.Momentum(bodies); !p.ApproxEqual(mgl64.Vec2{0, 0}) {
		t.Errorf("expected zero momentum, got %v", p)
	}

	if L := g.AngularMomentum(bodies); math.Abs(L-12) > 1e-12 {
		t.Errorf("expected angular momentum 12, got %f", L)
	}
}

func TestMomentumConservedOverTicks(t *testing.T) {
	p := dynamo.DefaultParams()
	g := NewGravity(p)
	bodies := []dynamo.Body{
		{Position: mgl64.Vec2{400, 300}, Mass: 5e10},
		{Position: mgl64.Vec2{300, 300}, Velocity: mgl64.Vec2{0, 0.02}, Mass: 1e10},
		{Position: mgl64.Vec2{200, 300}, Velocity: mgl64.Vec2{0, -0.01}, Mass: 1e10},
	}
	p0 := g.Momentum(bodies)

	for i := 0; i < 200; i++ {
		g.Accelerate(bodies, p.TimeStep)
		for j := range bodies {
			bodies[j].Position = bodies[j].Position.Add(bodies[j].Velocity.Mul(p.TimeStep))
		}
	}

	drift := g.Momentum(bodies).Sub(p0).Len()
	if drift > 1e-3 {
		t.Errorf("momentum drifted by %g", drift)
	}
}

func TestCircularSpeed(t *testing.T) {
	if v := CircularSpeed(1, 4, 1); v != 2 {
		t.Errorf("expected 2, got %f", v)
	}
	if v := CircularSpeed(1, 4, 0); v != 0 {
		t.Errorf("expected 0 for zero radius, got %f", v)
	}
}

func TestGravityAccelerateMatchesNetForce(t *testing.T) {
	const n = 150
	bodies := make([]dynamo.Body, n)
	for i := range bodies {
		angle := float64(i) * 0.37
		r := 20 + float64(i%17)*9
		bodies[i] = dynamo.Body{
			Position: mgl64.Vec2{400 + r*math.Cos(angle), 300 + r*math.Sin(angle)},
			Mass:     1e8 * float64(1+i%5),
		}
	}
	// two bodies inside the cutoff
	bodies[1].Position = bodies[0].Position.Add(mgl64.Vec2{1, 0})

	g := NewGravity(dynamo.DefaultParams())
	want := make([]mgl64.Vec2, n)
	for i := range bodies {
		want[i] = g.NetForce(bodies, i).Mul(1 / bodies[i].Mass)
	}

	g.Accelerate(bodies, 1)
	for i := range bodies {
		if !bodies[i].Velocity.ApproxEqualThreshold(want[i], 1e-18) {
			t.Fatalf("body %d: velocity %v, want %v", i, bodies[i].Velocity, want[i])
		}
	}
	if g.Skipped() < 2 {
		t.Errorf("expected the close pair to be skipped, got %d", g.Skipped())
	}
}
