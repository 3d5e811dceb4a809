package integrators

import "github.com/san-kum/gravsim/internal/dynamo"

// parallelChunk is the smallest slice of bodies handed to one worker.
const parallelChunk = 256

// SymplecticEuler advances positions with velocities that were already
// updated for this tick.
type SymplecticEuler struct{}

func NewSymplecticEuler() *SymplecticEuler {
	return &SymplecticEuler{}
}

// Advance moves every body independently, then delivers the new positions
// to sink in index order on the calling goroutine.
func (e *SymplecticEuler) Advance(bodies []dynamo.Body, dt float64, sink dynamo.PositionSink) {
	dynamo.ParallelFor(len(bodies), parallelChunk, func(start, end int) {
		for i := start; i < end; i++ {
			bodies[i].Position = bodies[i].Position.Add(bodies[i].Velocity.Mul(dt))
		}
	})

	if sink == nil {
		return
	}
	for i := range bodies {
		sink.MoveTo(i, bodies[i].Position)
	}
}
