// Package scene holds the presentation side of the simulation. Shapes are
// linked to physics bodies only by index.
package scene

import (
	"fmt"
	"image/color"
	"strings"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/gravsim/internal/dynamo"
)

type Shape struct {
	Radius   float64
	Color    color.RGBA
	Position mgl64.Vec2
}

// Scene is a PositionSink that keeps the drawable copy of every body.
// Renderers read it through Shapes while the simulation writes through MoveTo.
type Scene struct {
	mu     sync.RWMutex
	shapes []Shape
}

func New(descs []dynamo.Descriptor) (*Scene, error) {
	shapes := make([]Shape, len(descs))
	for i, d := range descs {
		c, err := ParseColor(d.Color)
		if err != nil {
			return nil, fmt.Errorf("body %d: %w", i, err)
		}
		shapes[i] = Shape{
			Radius:   d.Radius,
			Color:    c,
			Position: mgl64.Vec2{d.X, d.Y},
		}
	}
	return &Scene{shapes: shapes}, nil
}

func (s *Scene) MoveTo(index int, pos mgl64.Vec2) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.shapes) {
		return
	}
	s.shapes[index].Position = pos
}

// Shapes returns a copy safe to draw from.
func (s *Scene) Shapes() []Shape {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Shape, len(s.shapes))
	copy(out, s.shapes)
	return out
}

func (s *Scene) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.shapes)
}

// Fanout forwards every position to several sinks in order.
type Fanout []dynamo.PositionSink

func (f Fanout) MoveTo(index int, pos mgl64.Vec2) {
	for _, sink := range f {
		if sink != nil {
			sink.MoveTo(index, pos)
		}
	}
}

var namedColors = map[string]color.RGBA{
	"white":   {255, 255, 255, 255},
	"black":   {0, 0, 0, 255},
	"red":     {255, 0, 0, 255},
	"green":   {0, 255, 0, 255},
	"blue":    {0, 0, 255, 255},
	"yellow":  {255, 255, 0, 255},
	"magenta": {255, 0, 255, 255},
	"cyan":    {0, 255, 255, 255},
}

// DefaultColor is used for bodies without a color.
var DefaultColor = color.RGBA{200, 200, 255, 255}

// ParseColor accepts "#rrggbb" or a basic color name.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultColor, nil
	}
	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	var r, g, b uint8
	if len(s) == 7 && s[0] == '#' {
		if n, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err == nil && n == 3 {
			return color.RGBA{r, g, b, 255}, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("invalid color %q", s)
}

func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
