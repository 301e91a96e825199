// Package form2 builds 2D signed distance fields from gear outlines.
// The SDF2 interface matches the convention of SDF CAD kernels: negative
// inside, positive outside, zero on the boundary.
package form2

import (
	"fmt"
	"math"

	"github.com/soypat/gears"
	"github.com/soypat/gears/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// SDF2 is a 2D signed distance field.
type SDF2 interface {
	// Evaluate returns the minimum distance from p to the surface,
	// negative when p is inside.
	Evaluate(p r2.Vec) float64
	// Bounds returns a box that completely contains the SDF2.
	Bounds() r2.Box
}

// circle is the signed distance field of a disc.
type circle struct {
	radius float64
	bb     r2.Box
}

// Circle returns the SDF2 of a disc centered at the origin.
func Circle(radius float64) (SDF2, error) {
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("%w: circle radius must be positive and finite, got %g", gears.ErrInvalidInput, radius)
	}
	e := d2.Elem(radius)
	return &circle{radius: radius, bb: r2.Box{Min: r2.Scale(-1, e), Max: e}}, nil
}

func (s *circle) Evaluate(p r2.Vec) float64 { return r2.Norm(p) - s.radius }
func (s *circle) Bounds() r2.Box            { return s.bb }

// polygon is the signed distance field of a closed polygon, evaluated
// by winding number. Either vertex orientation works.
type polygon struct {
	vertex []r2.Vec  // closed: vertex[0] == vertex[len-1]
	vector []r2.Vec  // unit vectors along each segment
	length []float64 // segment lengths
	bb     r2.Box
}

// Polygon returns the SDF2 of a closed polygon. The vertex loop is
// closed automatically when the last vertex differs from the first.
func Polygon(vertex []r2.Vec) (SDF2, error) {
	if len(vertex) < 3 {
		return nil, fmt.Errorf("%w: polygon needs at least 3 vertices, got %d", gears.ErrInvalidInput, len(vertex))
	}
	v := make([]r2.Vec, len(vertex), len(vertex)+1)
	copy(v, vertex)
	if !d2.EqualWithin(v[0], v[len(v)-1], 1e-12) {
		v = append(v, v[0])
	}
	s := polygon{
		vertex: v,
		vector: make([]r2.Vec, len(v)-1),
		length: make([]float64, len(v)-1),
	}
	for i := range s.vector {
		seg := r2.Sub(v[i+1], v[i])
		l := r2.Norm(seg)
		if l < 1e-12 {
			return nil, fmt.Errorf("%w: polygon has a zero-length segment at vertex %d", gears.ErrInvalidInput, i)
		}
		s.vector[i] = r2.Scale(1/l, seg)
		s.length[i] = l
	}
	set := d2.Set(v)
	s.bb = r2.Box{Min: set.Min(), Max: set.Max()}
	return &s, nil
}

// Evaluate returns the minimum distance from p to the polygon boundary,
// negative inside. Inclusion test per the crossing-number rules of
// geomalgorithms.com/a03-_inclusion.html.
func (s *polygon) Evaluate(p r2.Vec) float64 {
	dd := math.MaxFloat64
	wn := 0
	pb := r2.Sub(p, s.vertex[0])
	for i := range s.vector {
		a := s.vertex[i]
		b := s.vertex[i+1]
		pa := pb
		pb = r2.Sub(p, b)

		t := r2.Dot(pa, s.vector[i])
		dn := r2.Dot(pa, r2.Vec{X: s.vector[i].Y, Y: -s.vector[i].X})
		switch {
		case t < 0:
			dd = math.Min(dd, r2.Norm2(pa))
		case t > s.length[i]:
			dd = math.Min(dd, r2.Norm2(pb))
		default:
			dd = math.Min(dd, dn*dn)
		}

		if a.Y <= p.Y {
			if b.Y > p.Y && dn < 0 {
				wn++ // upward crossing, p left of segment
			}
		} else {
			if b.Y <= p.Y && dn > 0 {
				wn-- // downward crossing, p right of segment
			}
		}
	}
	d := math.Sqrt(dd)
	if wn != 0 {
		return -d
	}
	return d
}

func (s *polygon) Bounds() r2.Box { return s.bb }

// union2 is the boolean union of SDF2s.
type union2 struct {
	sdf []SDF2
	bb  r2.Box
}

// Union2D returns the union of the given SDF2s.
func Union2D(sdf ...SDF2) (SDF2, error) {
	if len(sdf) == 0 {
		return nil, fmt.Errorf("%w: union of nothing", gears.ErrInvalidInput)
	}
	if len(sdf) == 1 {
		return sdf[0], nil
	}
	s := union2{sdf: sdf, bb: sdf[0].Bounds()}
	for _, x := range sdf[1:] {
		b := x.Bounds()
		s.bb = r2.Box{Min: d2.MinElem(s.bb.Min, b.Min), Max: d2.MaxElem(s.bb.Max, b.Max)}
	}
	return &s, nil
}

func (s *union2) Evaluate(p r2.Vec) float64 {
	d := s.sdf[0].Evaluate(p)
	for _, x := range s.sdf[1:] {
		d = math.Min(d, x.Evaluate(p))
	}
	return d
}

func (s *union2) Bounds() r2.Box { return s.bb }

// diff2 is the boolean difference a minus b.
type diff2 struct {
	a, b SDF2
}

// Difference2D returns the SDF2 of a with b removed.
func Difference2D(a, b SDF2) (SDF2, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: difference of nil", gears.ErrInvalidInput)
	}
	return &diff2{a: a, b: b}, nil
}

func (s *diff2) Evaluate(p r2.Vec) float64 {
	return math.Max(s.a.Evaluate(p), -s.b.Evaluate(p))
}

func (s *diff2) Bounds() r2.Box { return s.a.Bounds() }

// xform2 applies a rotation then translation to an SDF2.
type xform2 struct {
	sdf      SDF2
	sin, cos float64
	offset   r2.Vec
	bb       r2.Box
}

// RotateTranslate2D rotates the SDF2 by theta [radians] about the origin
// and then translates it by offset.
func RotateTranslate2D(sdf SDF2, theta float64, offset r2.Vec) SDF2 {
	sn, cs := math.Sincos(theta)
	s := xform2{sdf: sdf, sin: sn, cos: cs, offset: offset}
	// bounds from the transformed corners of the original box
	b := sdf.Bounds()
	corners := []r2.Vec{b.Min, {X: b.Min.X, Y: b.Max.Y}, b.Max, {X: b.Max.X, Y: b.Min.Y}}
	for i, c := range corners {
		q := r2.Add(r2.Vec{X: cs*c.X - sn*c.Y, Y: sn*c.X + cs*c.Y}, offset)
		if i == 0 {
			s.bb = r2.Box{Min: q, Max: q}
			continue
		}
		s.bb = r2.Box{Min: d2.MinElem(s.bb.Min, q), Max: d2.MaxElem(s.bb.Max, q)}
	}
	return &s
}

func (s *xform2) Evaluate(p r2.Vec) float64 {
	// inverse transform of the query point
	q := r2.Sub(p, s.offset)
	q = r2.Vec{X: s.cos*q.X + s.sin*q.Y, Y: -s.sin*q.X + s.cos*q.Y}
	return s.sdf.Evaluate(q)
}

func (s *xform2) Bounds() r2.Box { return s.bb }
