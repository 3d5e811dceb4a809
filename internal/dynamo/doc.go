// Package dynamo provides the core primitives of the gravity simulation.
//
// The package defines the data model and the tick orchestration:
//
//   - [Body]: physics record (position, velocity, mass)
//   - [Descriptor]: startup description of a body, including presentation hints
//   - [Params]: gravitational constant, time step and minimum-distance cutoff
//   - [ForceIntegrator] and [PositionIntegrator]: the two passes of a tick
//   - [PositionSink]: the rendering collaborator fed after every position pass
//   - [Simulator]: owns the bodies and runs ticks
//
// # Example
//
//	params := dynamo.DefaultParams()
//	s, err := dynamo.New(descs, params, physics.NewGravity(params), integrators.NewSymplecticEuler())
//	if err != nil {
//	    return err // a body with mass <= 0 never starts a run
//	}
//	s.SetSink(scene)
//	s.Tick()
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe. A tick must complete before the
// next one starts and nothing else may mutate the bodies meanwhile.
package dynamo
