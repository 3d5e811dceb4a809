package metrics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/gravsim/internal/dynamo"
)

// Diagnostics is what the default metric set needs from the force pass.
type Diagnostics interface {
	Hamiltonian
	MomentumSource
	CutoffCounter
}

// Defaults is the metric set for a headless run. Stability is measured
// against a circle of radius around center.
func Defaults(d Diagnostics, center mgl64.Vec2, radius float64) []dynamo.Metric {
	return []dynamo.Metric{
		NewEnergy(d),
		NewEnergyDrift(d),
		NewMomentumDrift(d),
		NewCutoffs(d),
		NewStability(center, radius),
	}
}
