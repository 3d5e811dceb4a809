// Package export renders saved runs to formats meant for other tools.
package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/san-kum/gravsim/internal/storage"
)

const fallbackStroke = "#c8c8ff"

// OrbitsSVG draws the path of every body in frames (flattened x0,y0,x1,y1...)
// and a dot at its last position. Coordinates keep the world orientation, y
// grows downward as in the window view.
func OrbitsSVG(w io.Writer, frames [][]float64, colors []string, width, height int) error {
	if len(frames) == 0 || len(frames[0]) < 2 {
		return fmt.Errorf("no frames to draw")
	}
	bodies := len(frames[0]) / 2

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, f := range frames {
		for i := 0; i+1 < len(f); i += 2 {
			minX, maxX = math.Min(minX, f[i]), math.Max(maxX, f[i])
			minY, maxY = math.Min(minY, f[i+1]), math.Max(maxY, f[i+1])
		}
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	// one scale for both axes so orbits stay round
	scale := math.Min(float64(width)/rangeX, float64(height)/rangeY)
	project := func(x, y float64) (float64, float64) {
		return (x - minX) * scale, (y - minY) * scale
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#000000"/>
`, width, height, width, height))

	for b := 0; b < bodies; b++ {
		stroke := fallbackStroke
		if b < len(colors) && colors[b] != "" {
			stroke = colors[b]
		}

		xs, ys := storage.Track(frames, b)
		if len(xs) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-opacity="0.6" stroke-width="1" d="`, stroke))
		for i := range xs {
			x, y := project(xs[i], ys[i])
			if i == 0 {
				sb.WriteString(fmt.Sprintf("M%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")

		x, y := project(xs[len(xs)-1], ys[len(ys)-1])
		sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"3\" fill=\"%s\"/>\n", x, y, stroke))
	}

	sb.WriteString("</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
