package raster

import (
	"math"

	"github.com/srwiley/rasterx"
)

// rasterx works in 26.6 fixed point, which wraps past about 2^25 px, so
// geometry is pulled into a band around the surface before it is added.
const (
	clipMargin = 16
	maxExtent  = 1 << 20
)

type box struct{ x0, y0, x1, y1 float64 }

// clipBox is the surface grown by clipMargin plus the line width, so edges
// moved onto it stay out of sight.
func (s *Surface) clipBox(lineWidth float64) box {
	w, h := s.Size()
	m := clipMargin + math.Abs(lineWidth)
	return box{-m, -m, float64(w) + m, float64(h) + m}
}

func clamp(v, lo, hi float64) float64 { return math.Max(lo, math.Min(hi, v)) }

func (b box) clampRect(x, y, w, h float64) (x0, y0, x1, y1 float64) {
	return clamp(x, b.x0, b.x1), clamp(y, b.y0, b.y1), clamp(x+w, b.x0, b.x1), clamp(y+h, b.y0, b.y1)
}

// reach returns the distances from (cx, cy) to the nearest and farthest
// points of b.
func (b box) reach(cx, cy float64) (near, far float64) {
	dx := math.Max(math.Max(b.x0-cx, 0), cx-b.x1)
	dy := math.Max(math.Max(b.y0-cy, 0), cy-b.y1)
	fx := math.Max(math.Abs(cx-b.x0), math.Abs(cx-b.x1))
	fy := math.Max(math.Abs(cy-b.y0), math.Abs(cy-b.y1))
	return math.Hypot(dx, dy), math.Hypot(fx, fy)
}

func (b box) corners() [][2]float64 {
	return [][2]float64{{b.x0, b.y0}, {b.x1, b.y0}, {b.x1, b.y1}, {b.x0, b.y1}}
}

func hugeCircle(cx, cy, r float64) bool {
	return math.Abs(cx)+math.Abs(cy)+r > maxExtent
}

// band returns the part of b lying between distances lo and hi from
// (cx, cy), measured along the direction to the middle of b. For circles
// far larger than b this is the circle (lo = -Inf) or its ring to well
// under a pixel. Nil means nothing of the band is inside b.
func (b box) band(cx, cy, lo, hi float64) [][2]float64 {
	near, far := b.reach(cx, cy)
	if near > hi || far < lo {
		return nil
	}
	mx, my := (b.x0+b.x1)/2, (b.y0+b.y1)/2
	d := math.Hypot(mx-cx, my-cy)
	if d == 0 {
		if math.IsInf(lo, -1) {
			return b.corners()
		}
		return nil
	}
	ux, uy := (mx-cx)/d, (my-cy)/d
	dist := func(p [2]float64) float64 { return (p[0]-cx)*ux + (p[1]-cy)*uy }

	poly := clipPoly(b.corners(), func(p [2]float64) float64 { return hi - dist(p) })
	if !math.IsInf(lo, -1) {
		poly = clipPoly(poly, func(p [2]float64) float64 { return dist(p) - lo })
	}
	if len(poly) < 3 {
		return nil
	}
	return poly
}

// clipPoly keeps the part of the convex polygon poly where f >= 0.
func clipPoly(poly [][2]float64, f func([2]float64) float64) [][2]float64 {
	var out [][2]float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		fp, fq := f(p), f(q)
		if fp >= 0 {
			out = append(out, p)
		}
		if (fp >= 0) != (fq >= 0) {
			t := fp / (fp - fq)
			out = append(out, [2]float64{p[0] + t*(q[0]-p[0]), p[1] + t*(q[1]-p[1])})
		}
	}
	return out
}

func addPolygon(poly [][2]float64, p rasterx.Adder) {
	p.Start(rasterx.ToFixedP(poly[0][0], poly[0][1]))
	for _, v := range poly[1:] {
		p.Line(rasterx.ToFixedP(v[0], v[1]))
	}
	p.Stop(true)
}
