package viz

import (
	"math"

	"github.com/san-kum/gravlab/internal/physics"
)

// minWorldRange keeps the view from collapsing when all bodies sit at
// one point (1e6 m, about the scale of a small moon).
const minWorldRange = 1e6

// Projection maps world coordinates onto canvas sub-pixels. Bounds are
// fit to the body positions, centered, padded by a fixed margin, and
// kept square in world units so orbits stay round on screen.
type Projection struct {
	centerX, centerY float64
	halfRange        float64
	subW, subH       int
}

// FitProjection computes a projection covering every body position, with
// a 20% margin. Trail points outside the window simply clip.
func FitProjection(positions []physics.Vec2, canvas *Canvas) Projection {
	p := Projection{
		halfRange: minWorldRange / 2,
		subW:      canvas.Width * 2,
		subH:      canvas.Height * 4,
	}
	if len(positions) == 0 {
		return p
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pos := range positions {
		minX = math.Min(minX, pos.X)
		maxX = math.Max(maxX, pos.X)
		minY = math.Min(minY, pos.Y)
		maxY = math.Max(maxY, pos.Y)
	}

	p.centerX = (minX + maxX) / 2
	p.centerY = (minY + maxY) / 2
	extent := math.Max(math.Max(maxX-minX, maxY-minY), minWorldRange)
	p.halfRange = extent * 1.2 / 2
	return p
}

// ToCanvas maps a world point to sub-pixel coordinates. ok is false when
// the point falls outside the window.
func (p Projection) ToCanvas(pos physics.Vec2) (x, y int, ok bool) {
	fx := (pos.X - p.centerX + p.halfRange) / (2 * p.halfRange)
	fy := (pos.Y - p.centerY + p.halfRange) / (2 * p.halfRange)
	if fx < 0 || fx >= 1 || fy < 0 || fy >= 1 {
		return 0, 0, false
	}
	// Screen y grows downward.
	return int(fx * float64(p.subW)), int((1 - fy) * float64(p.subH)), true
}
