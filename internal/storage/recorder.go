package storage

import "github.com/san-kum/gravsim/internal/dynamo"

// Recorder keeps body positions every Every ticks. It is a dynamo.Observer.
type Recorder struct {
	Every  int
	Times  []float64
	Frames [][]float64

	// Colors are saved with the run so exports can draw each body.
	Colors []string

	dt float64
}

func NewRecorder(dt float64, every int) *Recorder {
	if every < 1 {
		every = 1
	}
	return &Recorder{Every: every, dt: dt}
}

func (r *Recorder) OnTick(bodies []dynamo.Body, tick int) {
	if tick%r.Every != 0 {
		return
	}
	frame := make([]float64, 0, 2*len(bodies))
	for _, b := range bodies {
		frame = append(frame, b.Position[0], b.Position[1])
	}
	r.Times = append(r.Times, float64(tick)*r.dt)
	r.Frames = append(r.Frames, frame)
}

// Track returns the x and y series of one body.
func Track(frames [][]float64, body int) (xs, ys []float64) {
	for _, f := range frames {
		if 2*body+1 >= len(f) {
			continue
		}
		xs = append(xs, f[2*body])
		ys = append(ys, f[2*body+1])
	}
	return xs, ys
}
