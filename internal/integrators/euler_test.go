package integrators

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/gravsim/internal/dynamo"
)

type recordingSink struct {
	order []int
	moves map[int]mgl64.Vec2
}

func (r *recordingSink) MoveTo(i int, pos mgl64.Vec2) {
	if r.moves == nil {
		r.moves = make(map[int]mgl64.Vec2)
	}
	r.order = append(r.order, i)
	r.moves[i] = pos
}

func TestSymplecticEulerAdvance(t *testing.T) {
	bodies := []dynamo.Body{
		{Position: mgl64.Vec2{0, 0}, Velocity: mgl64.Vec2{1, 2}, Mass: 1},
		{Position: mgl64.Vec2{10, -5}, Velocity: mgl64.Vec2{-3, 0}, Mass: 2},
	}
	sink := &recordingSink{}

	NewSymplecticEuler().Advance(bodies, 0.5, sink)

	want := []mgl64.Vec2{{0.5, 1}, {8.5, -5}}
	for i, w := range want {
		if !bodies[i].Position.ApproxEqual(w) {
			t.Errorf("body %d: expected position %v, got %v", i, w, bodies[i].Position)
		}
		if sink.moves[i] != bodies[i].Position {
			t.Errorf("body %d: sink got %v, body at %v", i, sink.moves[i], bodies[i].Position)
		}
	}

	if len(sink.order) != 2 {
		t.Errorf("expected 2 notifications, got %d", len(sink.order))
	}
}

func TestSymplecticEulerLeavesVelocity(t *testing.T) {
	bodies := []dynamo.Body{{Velocity: mgl64.Vec2{4, 4}, Mass: 1}}

	NewSymplecticEuler().Advance(bodies, 0.1, nil)

	if bodies[0].Velocity != (mgl64.Vec2{4, 4}) {
		t.Errorf("velocity changed: %v", bodies[0].Velocity)
	}
}

func TestSymplecticEulerEmpty(t *testing.T) {
	sink := &recordingSink{}
	NewSymplecticEuler().Advance(nil, 0.1, sink)

	if len(sink.order) != 0 {
		t.Errorf("expected no notifications, got %d", len(sink.order))
	}
}

func TestSymplecticEulerLargeCollectionInOrder(t *testing.T) {
	const n = 1000
	bodies := make([]dynamo.Body, n)
	for i := range bodies {
		bodies[i] = dynamo.Body{
			Position: mgl64.Vec2{float64(i), 0},
			Velocity: mgl64.Vec2{0, float64(i)},
			Mass:     1,
		}
	}
	sink := &recordingSink{}

	NewSymplecticEuler().Advance(bodies, 2, sink)

	if len(sink.order) != n {
		t.Fatalf("expected %d notifications, got %d", n, len(sink.order))
	}
	for i, idx := range sink.order {
		if idx != i {
			t.Fatalf("notification %d was for body %d", i, idx)
		}
		want := mgl64.Vec2{float64(i), 2 * float64(i)}
		if bodies[i].Position != want {
			t.Fatalf("body %d: expected %v, got %v", i, want, bodies[i].Position)
		}
	}
}
