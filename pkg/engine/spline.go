package engine

import (
	"fmt"

	"github.com/ragbendra/AwwwardsREMS-sub000/internal/util"
)

// splineArcSamples is the resolution of the arc-length table built at
// construction. 200 segments keeps reparameterization error well below
// anything visible at camera speeds.
const splineArcSamples = 200

// Spline is a Catmull-Rom curve through a fixed set of control points,
// reparameterized by arc length so that equal steps in t cover equal
// distances along the curve.
type Spline struct {
	points []Vector3

	// Cumulative arc lengths at uniform parameter steps.
	arcLengths []float64
	totalLen   float64
}

// NewSpline builds a spline through the given control points.
// At least two points are required.
func NewSpline(points []Vector3) (*Spline, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("spline requires at least 2 control points, got %d", len(points))
	}

	s := &Spline{points: points}
	s.buildArcTable()
	return s, nil
}

// buildArcTable samples the raw curve uniformly and accumulates segment
// lengths for the arc-length reparameterization.
func (s *Spline) buildArcTable() {
	s.arcLengths = make([]float64, splineArcSamples+1)
	prev := s.sampleUniform(0)
	for i := 1; i <= splineArcSamples; i++ {
		t := float64(i) / splineArcSamples
		p := s.sampleUniform(t)
		s.arcLengths[i] = s.arcLengths[i-1] + p.DistanceTo(prev)
		prev = p
	}
	s.totalLen = s.arcLengths[splineArcSamples]
}

// Sample returns the point at normalized arc length t in [0, 1].
// Values outside the range are clamped.
func (s *Spline) Sample(t float64) Vector3 {
	t = util.Clamp01(t)
	if s.totalLen == 0 {
		return s.points[0]
	}

	target := t * s.totalLen

	// Binary search the arc table for the surrounding samples.
	lo, hi := 0, splineArcSamples
	for lo < hi {
		mid := (lo + hi) / 2
		if s.arcLengths[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	if lo == 0 {
		return s.sampleUniform(0)
	}

	segLen := s.arcLengths[lo] - s.arcLengths[lo-1]
	frac := 0.0
	if segLen > 0 {
		frac = (target - s.arcLengths[lo-1]) / segLen
	}
	u := (float64(lo-1) + frac) / splineArcSamples
	return s.sampleUniform(u)
}

// sampleUniform evaluates the raw Catmull-Rom curve at parameter t in
// [0, 1] spread uniformly across the segments.
func (s *Spline) sampleUniform(t float64) Vector3 {
	t = util.Clamp01(t)
	segments := len(s.points) - 1

	scaled := t * float64(segments)
	seg := int(scaled)
	if seg >= segments {
		seg = segments - 1
	}
	local := scaled - float64(seg)

	p0 := s.point(seg - 1)
	p1 := s.point(seg)
	p2 := s.point(seg + 1)
	p3 := s.point(seg + 2)

	return catmullRom(p0, p1, p2, p3, local)
}

// point returns the control point at i, clamping the endpoints so the
// curve passes through the first and last points.
func (s *Spline) point(i int) Vector3 {
	if i < 0 {
		i = 0
	}
	if i >= len(s.points) {
		i = len(s.points) - 1
	}
	return s.points[i]
}

// catmullRom evaluates the standard Catmull-Rom basis at t in [0, 1].
func catmullRom(p0, p1, p2, p3 Vector3, t float64) Vector3 {
	t2 := t * t
	t3 := t2 * t

	a := p1.Mul(2)
	b := p2.Sub(p0).Mul(t)
	c := p0.Mul(2).Sub(p1.Mul(5)).Add(p2.Mul(4)).Sub(p3).Mul(t2)
	d := p1.Mul(3).Sub(p2.Mul(3)).Add(p3).Sub(p0).Mul(t3)

	return a.Add(b).Add(c).Add(d).Mul(0.5)
}
