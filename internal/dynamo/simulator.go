package dynamo

import (
	"context"
	"fmt"
)

// Simulator owns the body collection and runs ticks in a fixed order: the
// force pass over every body, then the position pass over every body.
type Simulator struct {
	params    Params
	force     ForceIntegrator
	motion    PositionIntegrator
	sink      PositionSink
	initial   []Body
	bodies    []Body
	tick      int
	metrics   []Metric
	observers []Observer
}

// New validates the parameters and every descriptor before any body enters
// the simulation. A single bad body rejects the whole collection. Passes
// implementing ParamsSetter are switched to the validated params.
func New(descs []Descriptor, params Params, force ForceIntegrator, motion PositionIntegrator) (*Simulator, error) {
	if force == nil || motion == nil {
		return nil, &ConfigError{Index: -1, Wrapped: ErrNoIntegrator}
	}
	if err := params.Validate(); err != nil {
		return nil, &ConfigError{Index: -1, Wrapped: err}
	}

	for _, pass := range []interface{}{force, motion} {
		if ps, ok := pass.(ParamsSetter); ok {
			ps.SetParams(params)
		}
	}

	bodies := make([]Body, len(descs))
	for i, d := range descs {
		b, err := NewBody(d)
		if err != nil {
			return nil, &ConfigError{Index: i, Wrapped: err}
		}
		bodies[i] = b
	}

	initial := make([]Body, len(bodies))
	copy(initial, bodies)

	return &Simulator{
		params:    params,
		force:     force,
		motion:    motion,
		initial:   initial,
		bodies:    bodies,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}, nil
}

func (s *Simulator) SetSink(sink PositionSink) { s.sink = sink }
func (s *Simulator) AddMetric(m Metric)        { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer)    { s.observers = append(s.observers, o) }

func (s *Simulator) Params() Params { return s.params }
func (s *Simulator) Len() int       { return len(s.bodies) }
func (s *Simulator) TickCount() int { return s.tick }
func (s *Simulator) Time() float64  { return float64(s.tick) * s.params.TimeStep }

// Bodies returns a snapshot of the current bodies.
func (s *Simulator) Bodies() []Body {
	out := make([]Body, len(s.bodies))
	copy(out, s.bodies)
	return out
}

// Tick advances the simulation by one time step. It performs no I/O itself;
// the sink and observers are the only outward calls.
func (s *Simulator) Tick() {
	dt := s.params.TimeStep
	s.force.Accelerate(s.bodies, dt)
	s.motion.Advance(s.bodies, dt, s.sink)
	s.tick++

	for _, o := range s.observers {
		o.OnTick(s.bodies, s.tick)
	}
}

// Reset restores the initial bodies and pushes their positions to the sink.
func (s *Simulator) Reset() {
	copy(s.bodies, s.initial)
	s.tick = 0
	if s.sink == nil {
		return
	}
	for i, b := range s.bodies {
		s.sink.MoveTo(i, b.Position)
	}
}

// Run executes ticks until the budget is spent or ctx is done. Cancellation
// is only checked between ticks.
func (s *Simulator) Run(ctx context.Context, ticks int) (*Result, error) {
	if ticks <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTicks, ticks)
	}

	for _, m := range s.metrics {
		m.Reset()
		m.Observe(s.bodies, s.tick)
	}
	for _, o := range s.observers {
		o.OnTick(s.bodies, s.tick)
	}

	var runErr error
	for i := 0; i < ticks; i++ {
		select {
		case <-ctx.Done():
			runErr = ctx.Err()
		default:
		}
		if runErr != nil {
			break
		}

		s.Tick()
		for _, m := range s.metrics {
			m.Observe(s.bodies, s.tick)
		}
	}

	result := &Result{
		Ticks:   s.tick,
		Elapsed: s.Time(),
		Bodies:  s.Bodies(),
		Metrics: make(map[string]float64, len(s.metrics)),
	}
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, runErr
}
