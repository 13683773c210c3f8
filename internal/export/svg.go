package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/gravlab/internal/physics"
	"github.com/san-kum/gravlab/internal/sim"
)

// TrailsToSVG renders each body's trail as a polyline and its current
// position as a circle, bounds fit to the data with 10% padding. Marker
// radius scales with log10(mass) so the Sun does not swallow the frame.
func TrailsToSVG(bodies []sim.BodyState, trails [][]physics.Vec2, width, height int) string {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(p physics.Vec2) {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	for _, b := range bodies {
		grow(b.Pos)
	}
	for _, trail := range trails {
		for _, p := range trail {
			grow(p)
		}
	}
	if len(bodies) == 0 {
		minX, minY, maxX, maxY = -1, -1, 1, 1
	}

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

	toX := func(x float64) float64 { return (x - minX) / rangeX * float64(width) }
	toY := func(y float64) float64 { return float64(height) - (y-minY)/rangeY*float64(height) }

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for i, trail := range trails {
		if len(trail) < 2 {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-opacity="0.4" stroke-width="1" d="M`, strokeColor(bodies[i].Color)))
		for k, p := range trail {
			if k == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", toX(p.X), toY(p.Y)))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", toX(p.X), toY(p.Y)))
			}
		}
		sb.WriteString("\"/>\n")
	}

	for _, b := range bodies {
		r := math.Log10(b.Mass)/7 + 2
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="white" stroke-width="0.5"/>
`, toX(b.Pos.X), toY(b.Pos.Y), r, strokeColor(b.Color)))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func strokeColor(name string) string {
	if name == "" {
		return "white"
	}
	return name
}
