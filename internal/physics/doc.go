// Package physics provides the force pass for the simulator.
//
// [Gravity] implements [dynamo.ForceIntegrator] with pairwise Newtonian
// attraction and a hard minimum-distance cutoff: pairs closer than
// MinDistance exert no force at all.
//
// Gravity also exposes diagnostics used by the metrics package:
//
//   - [Gravity.Energy]: kinetic plus potential energy
//   - [Gravity.Momentum]: total linear momentum
//   - [Gravity.Skipped]: pairs dropped by the cutoff in the last pass
//
// # Energy Conservation
//
// The cutoff makes the force discontinuous, so energy is only conserved
// while every pair stays farther apart than MinDistance:
//
//	g := physics.NewGravity(dynamo.DefaultParams())
//	e0 := g.Energy(sim.Bodies())
//	sim.Tick()
//	drift := math.Abs(g.Energy(sim.Bodies()) - e0)
package physics
