package stack

import "image"

// Mask is a binary coverage grid derived from an image's alpha channel.
type Mask struct {
	W, H int
	bits []bool
}

// MaskFromAlpha marks every pixel with alpha > 0.
func MaskFromAlpha(img *image.NRGBA) *Mask {
	b := img.Bounds()
	m := &Mask{W: b.Dx(), H: b.Dy(), bits: make([]bool, b.Dx()*b.Dy())}
	for y := 0; y < m.H; y++ {
		row := img.Pix[(y+b.Min.Y-img.Rect.Min.Y)*img.Stride:]
		for x := 0; x < m.W; x++ {
			if row[(x+b.Min.X-img.Rect.Min.X)*4+3] > 0 {
				m.bits[y*m.W+x] = true
			}
		}
	}
	return m
}

// At reports whether (x, y) is set; out-of-range coordinates are unset.
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.bits[y*m.W+x]
}

// Set marks (x, y); out-of-range coordinates are ignored.
func (m *Mask) Set(x, y int) {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return
	}
	m.bits[y*m.W+x] = true
}

// Count returns the number of set pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

func (m *Mask) firstSet() (image.Point, bool) {
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if m.bits[y*m.W+x] {
				return image.Pt(x, y), true
			}
		}
	}
	return image.Point{}, false
}

// Neighbor offsets in clockwise order starting west, in screen coordinates
// (y grows downward).
var contourDirs = [8]image.Point{
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1},
}

func contourDirIndex(d image.Point) int {
	for i, cd := range contourDirs {
		if cd == d {
			return i
		}
	}
	return 0
}

// TraceContour walks the outer boundary of the mask's first connected shape
// (Moore neighbor tracing, 8-connected, clockwise) and returns the boundary
// pixels in order. An empty mask yields nil; an isolated pixel yields a
// single point.
func TraceContour(m *Mask) []image.Point {
	start, ok := m.firstSet()
	if !ok {
		return nil
	}

	contour := []image.Point{start}
	cur := start
	// firstSet scans row-major, so the pixel west of start is always empty
	// and serves as the initial backtrack position.
	back := image.Pt(start.X-1, start.Y)

	maxSteps := m.W*m.H*4 + 8
	for step := 0; step < maxSteps; step++ {
		bi := contourDirIndex(back.Sub(cur))
		var next, nextBack image.Point
		found := false
		for k := 1; k <= 8; k++ {
			d := (bi + k) % 8
			p := cur.Add(contourDirs[d])
			if m.At(p.X, p.Y) {
				next = p
				nextBack = cur.Add(contourDirs[(bi+k-1)%8])
				found = true
				break
			}
		}
		if !found {
			return contour // isolated pixel
		}
		if next == start && len(contour) > 1 {
			return contour
		}
		contour = append(contour, next)
		cur, back = next, nextBack
	}
	return contour
}
