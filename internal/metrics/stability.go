package metrics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/gravsim/internal/dynamo"
)

// Stability is the fraction of observed ticks in which every body stayed
// within radius of center.
type Stability struct {
	name       string
	center     mgl64.Vec2
	radius     float64
	violations int
	samples    int
}

func NewStability(center mgl64.Vec2, radius float64) *Stability {
	return &Stability{
		name:   "stability",
		center: center,
		radius: radius,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(bodies []dynamo.Body, tick int) {
	s.samples++
	for _, b := range bodies {
		if b.Position.Sub(s.center).Len() > s.radius {
			s.violations++
			break
		}
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
