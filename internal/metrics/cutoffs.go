package metrics

import "github.com/san-kum/gravsim/internal/dynamo"

type CutoffCounter interface {
	Skipped() int
}

// Cutoffs averages, per tick, the number of ordered pairs the force pass
// ignored because they were closer than the minimum distance.
type Cutoffs struct {
	name    string
	counter CutoffCounter
	total   int
	samples int
}

func NewCutoffs(counter CutoffCounter) *Cutoffs {
	return &Cutoffs{
		name:    "cutoff_pairs",
		counter: counter,
	}
}

func (c *Cutoffs) Name() string {
	return c.name
}

func (c *Cutoffs) Observe(bodies []dynamo.Body, tick int) {
	// no force pass has run before the first tick
	if tick == 0 {
		return
	}
	c.total += c.counter.Skipped()
	c.samples++
}

func (c *Cutoffs) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return float64(c.total) / float64(c.samples)
}

func (c *Cutoffs) Reset() {
	c.total = 0
	c.samples = 0
}
