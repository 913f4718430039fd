package assets

import (
	"github.com/aquilax/go-perlin"
)

// Point is a world-space position produced by the scatter sampler.
type Point struct {
	X, Y float64
}

// ScatterPoints fills a region with prop positions by sampling Perlin noise
// on a cellSize grid and keeping cells whose noise value clears the
// threshold. Deterministic for a given noise source, so the same seed always
// grows the same kelp field.
func ScatterPoints(r Rect, noise *perlin.Perlin, cellSize, threshold float64, maxPoints int) []Point {
	if cellSize <= 0 || r.Width <= 0 || r.Height <= 0 || noise == nil {
		return nil
	}

	var points []Point
	for y := r.Y + cellSize/2; y < r.Y+r.Height; y += cellSize {
		for x := r.X + cellSize/2; x < r.X+r.Width; x += cellSize {
			v := noise.Noise2D(x/100, y/100)
			if v <= threshold {
				continue
			}
			// Push the point off the grid by the excess noise so rows do not
			// read as a lattice.
			jitter := (v - threshold) * cellSize
			points = append(points, Point{X: x + jitter, Y: y - jitter})
			if maxPoints > 0 && len(points) >= maxPoints {
				return points
			}
		}
	}
	return points
}
