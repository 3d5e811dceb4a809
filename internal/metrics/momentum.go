package metrics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/gravsim/internal/dynamo"
)

type MomentumSource interface {
	Momentum(bodies []dynamo.Body) mgl64.Vec2
}

// MomentumDrift reports the largest |p(t) - p(0)| seen during a run.
type MomentumDrift struct {
	name     string
	src      MomentumSource
	initial  mgl64.Vec2
	maxDrift float64
	samples  int
}

func NewMomentumDrift(src MomentumSource) *MomentumDrift {
	return &MomentumDrift{
		name: "momentum_drift",
		src:  src,
	}
}

func (m *MomentumDrift) Name() string {
	return m.name
}

func (m *MomentumDrift) Observe(bodies []dynamo.Body, tick int) {
	p := m.src.Momentum(bodies)
	if m.samples == 0 {
		m.initial = p
	}
	m.samples++
	m.maxDrift = math.Max(m.maxDrift, p.Sub(m.initial).Len())
}

func (m *MomentumDrift) Value() float64 {
	return m.maxDrift
}

func (m *MomentumDrift) Reset() {
	m.initial = mgl64.Vec2{}
	m.maxDrift = 0
	m.samples = 0
}
