package dynamo

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Default physical constants. Positions are in screen-like distance units.
const (
	DefaultG           = 6.67430e-11
	DefaultTimeStep    = 0.1
	DefaultMinDistance = 5.0
)

// Body is the physics record of a point mass. It carries no presentation data.
type Body struct {
	Position mgl64.Vec2
	Velocity mgl64.Vec2
	Mass     float64
}

// Descriptor describes a body at startup. Radius and Color are presentation
// only and are never read by the physics core.
type Descriptor struct {
	X      float64
	Y      float64
	VX     float64
	VY     float64
	Mass   float64
	Radius float64
	Color  string
}

// NewBody builds a body from a descriptor, rejecting non-positive or
// non-finite masses and non-finite positions or velocities.
func NewBody(d Descriptor) (Body, error) {
	if !(d.Mass > 0) || math.IsInf(d.Mass, 0) {
		return Body{}, fmt.Errorf("%w: got %v", ErrInvalidMass, d.Mass)
	}
	for _, v := range [...]float64{d.X, d.Y, d.VX, d.VY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Body{}, fmt.Errorf("%w: got position (%v, %v) velocity (%v, %v)",
				ErrInvalidState, d.X, d.Y, d.VX, d.VY)
		}
	}
	return Body{
		Position: mgl64.Vec2{d.X, d.Y},
		Velocity: mgl64.Vec2{d.VX, d.VY},
		Mass:     d.Mass,
	}, nil
}

// Params holds the integration constants.
type Params struct {
	G           float64
	TimeStep    float64
	MinDistance float64
}

func DefaultParams() Params {
	return Params{
		G:           DefaultG,
		TimeStep:    DefaultTimeStep,
		MinDistance: DefaultMinDistance,
	}
}

func (p Params) Validate() error {
	if math.IsNaN(p.G) || math.IsInf(p.G, 0) {
		return fmt.Errorf("%w: G must be finite, got %v", ErrInvalidParams, p.G)
	}
	if !(p.TimeStep > 0) || math.IsInf(p.TimeStep, 0) {
		return fmt.Errorf("%w: time step must be positive, got %v", ErrInvalidParams, p.TimeStep)
	}
	if !(p.MinDistance >= 0) || math.IsInf(p.MinDistance, 0) {
		return fmt.Errorf("%w: minimum distance must be non-negative, got %v", ErrInvalidParams, p.MinDistance)
	}
	return nil
}

// PositionSink receives the new position of a body after every position
// pass. Delivery is fire-and-forget.
type PositionSink interface {
	MoveTo(index int, pos mgl64.Vec2)
}

// ForceIntegrator updates velocities from pairwise forces. It must only read
// pre-tick positions and masses.
type ForceIntegrator interface {
	Accelerate(bodies []Body, dt float64)
}

// PositionIntegrator advances positions from already-updated velocities and
// notifies the sink of every new position.
type PositionIntegrator interface {
	Advance(bodies []Body, dt float64, sink PositionSink)
}

// ParamsSetter is implemented by passes that keep their own copy of the
// integration constants. New hands them the validated params.
type ParamsSetter interface {
	SetParams(p Params)
}

// Observer is notified once a tick has fully completed.
type Observer interface {
	OnTick(bodies []Body, tick int)
}

type Metric interface {
	Name() string
	Observe(bodies []Body, tick int)
	Value() float64
	Reset()
}

type Result struct {
	Ticks   int
	Elapsed float64
	Bodies  []Body
	Metrics map[string]float64
}
