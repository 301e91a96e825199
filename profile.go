package gears

import (
	"fmt"
	"math"

	"github.com/soypat/gears/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// ToothDiagnostic reports degraded-geometry events encountered while
// generating a tooth profile. The profile is still returned; callers
// decide whether the degradation is acceptable.
type ToothDiagnostic struct {
	// Clipped is set when part of the profile crossed the half-pitch
	// boundary shared with the neighbouring tooth and was cut back,
	// or when a negative clearance inverted the root land.
	Clipped bool
	// ClearanceHint, meaningful when Clipped, is a clearance value for
	// which the profile would not have needed clipping. Best effort.
	ClearanceHint float64
	// UndercutPoints counts flank samples governed by the rack-cutter
	// trochoid rather than the involute. Nonzero means the flank is
	// undercut.
	UndercutPoints int
	// StrippedPoints counts samples removed by the radius-regression
	// safety pass.
	StrippedPoints int
}

const (
	flankSamples   = 40
	tipFacetDeg    = 5.0
	simplifyTolDeg = 0.5
)

type polPt struct{ r, ang float64 }

// ToothProfile generates the closed boundary of a single tooth in the XY
// plane as a counterclockwise polygon. The tooth points along +Y and
// spans one angular pitch centered on the +Y axis, so consecutive teeth
// tile by rotation about the origin. With centerOnPitch the profile is
// instead translated down by the pitch radius, placing the pitch point
// at the origin, which is the convenient frame for meshing diagrams.
//
// The diagnostic is non-nil whenever err is nil.
func (g Gear) ToothProfile(centerOnPitch bool) ([]r2.Vec, *ToothDiagnostic, error) {
	if err := g.Validate(); err != nil {
		return nil, nil, err
	}
	var diag ToothDiagnostic
	m := g.Module()
	clear := g.clearance()
	x := g.shift()
	pa := g.pressureAngle()
	cosb := math.Cos(d2r(g.Helical))
	paT := transversePressureAngle(pa, g.Helical)
	prad := g.PitchRadius()
	brad := g.BaseRadius()
	arad := g.OuterRadius()
	rrad := g.rootRadiusNominal()
	if rrad <= 0 {
		return nil, nil, fmt.Errorf("%w: root radius %.4g is not positive", ErrInfeasibleGeometry, rrad)
	}

	// Half angular thickness of the tooth at the pitch circle [deg].
	// Backlash thins external teeth and widens internal tooth spaces.
	tthick := g.CircPitch / math.Pi / cosb * (math.Pi/2 + 2*x*math.Tan(d2r(pa)))
	if g.Internal {
		tthick += g.Backlash
	} else {
		tthick -= g.Backlash
	}
	tang := r2d(tthick / (2 * prad))

	fwd, invT, err := involuteTables(brad, arad)
	if err != nil {
		return nil, nil, err
	}
	// The flank of the reference tooth is the involute rotated so that
	// its pitch-circle crossing sits tang degrees past the +Y axis.
	soff := tang + (90 - fwd.at(prad))
	limit := 90 + 180/float64(g.Teeth)

	// Stop the flank where it would meet its own mirror image, when
	// that happens below the outer circle (pointed tooth).
	maRad := arad
	if hi := invT.at(90 - soff + 0.1); hi < maRad {
		maRad = hi
	}

	// External flanks start above the clearance band; the band belongs
	// to the root land. Internal teeth carry the clearance at their tip
	// (inside arad) instead.
	flankLo := rrad
	if !g.Internal {
		flankLo = rrad + clear
	}
	if flankLo >= maRad {
		return nil, nil, fmt.Errorf("%w: tooth has no radial extent (flank start %.4g >= tip %.4g)", ErrInfeasibleGeometry, flankLo, maRad)
	}

	var uc lut
	haveUC := false
	if !g.Internal {
		uc, haveUC = rackUndercutTable(prad, rrad, clear, arad, paT, g.CircPitch/cosb, m/cosb, g.Teeth)
	}

	// Sample the working flank bottom-up. Each sample takes the
	// involute angle unless the rack trochoid cuts deeper.
	flank := make([]polPt, 0, flankSamples+1)
	for i := 0; i <= flankSamples; i++ {
		r := flankLo + (maRad-flankLo)*float64(i)/flankSamples
		a := fwd.at(r) + soff
		if haveUC && uc.covers(r) {
			if a2 := uc.at(r); a2 < a {
				// Count only material undercut; at the exact
				// undercut-avoidance shift the trochoid grazes the
				// involute and interpolation noise straddles zero.
				if a-a2 > 0.01 {
					diag.UndercutPoints++
				}
				a = a2
			}
		}
		flank = append(flank, polPt{r: r, ang: a})
	}

	flank, clipped := clipToBoundary(flank, limit)
	if len(flank) < 2 {
		return nil, nil, fmt.Errorf("%w: tooth flank lies entirely beyond the half-pitch boundary", ErrInfeasibleGeometry)
	}
	if clipped {
		diag.Clipped = true
		diag.ClearanceHint = clear
	}

	half := make([]r2.Vec, 0, len(flank)+16)
	switch {
	case diag.Clipped:
		// No root land; the profile begins on the boundary ray.
	case rrad > flank[0].r+tolerance:
		// Negative clearance inverted the root land; drop it.
		diag.Clipped = true
		diag.ClearanceHint = 0
	default:
		rootPt := d2.PolarToXY(rrad, d2r(limit))
		corner := d2.PolarToXY(rrad, d2r(flank[0].ang))
		f0 := d2.PolarToXY(flank[0].r, d2r(flank[0].ang))
		half = append(half, rootPt)
		half = append(half, filletCorner(rootPt, corner, f0, clear)...)
	}
	flankStart := len(half)
	for _, p := range flank {
		half = append(half, d2.PolarToXY(p.r, d2r(p.ang)))
	}

	// Tip land: cap the flank with a circular arc to the centerline.
	if aTip := flank[len(flank)-1].ang; aTip > 90 {
		n := int(math.Ceil((aTip - 90) / tipFacetDeg))
		for j := 1; j <= n; j++ {
			ang := aTip - (aTip-90)*float64(j)/float64(n)
			half = append(half, d2.PolarToXY(maRad, d2r(ang)))
		}
	} else {
		half = append(half, d2.PolarToXY(maRad, d2r(90)))
	}

	// Safety pass: radii along the working curve must not regress.
	half, stripped := stripRegressions(half, flankStart, 1e-3*m)
	diag.StrippedPoints = stripped

	// Simplify before mirroring so both halves stay exactly symmetric.
	half = simplifyPath(half, d2r(simplifyTolDeg))
	full := make([]r2.Vec, 0, 2*len(half))
	for _, p := range half {
		full = append(full, r2.Vec{X: -p.X, Y: p.Y})
	}
	for i := len(half) - 1; i >= 0; i-- {
		full = append(full, half[i])
	}
	full = dedupeConsecutive(full, tolerance)

	if centerOnPitch {
		for i := range full {
			full[i].Y -= prad
		}
	}
	return full, &diag, nil
}

// RootRadius returns the smallest radius present on the generated tooth
// profile. It can exceed the nominal root circle when undercut trimming
// or clipping removed the deepest material, and sits marginally inside
// it where the root land chord and fillet cut below the circle.
func (g Gear) RootRadius() (float64, error) {
	pts, _, err := g.ToothProfile(false)
	if err != nil {
		return 0, err
	}
	min := math.Inf(1)
	for _, p := range pts {
		if r := r2.Norm(p); r < min {
			min = r
		}
	}
	return min, nil
}

// clipToBoundary removes leading samples whose angle reaches past the
// half-pitch limit and replaces them with the interpolated crossing.
func clipToBoundary(flank []polPt, limit float64) ([]polPt, bool) {
	i := 0
	for i < len(flank) && flank[i].ang >= limit {
		i++
	}
	if i == 0 {
		return flank, false
	}
	if i == len(flank) {
		return nil, true
	}
	prev, cur := flank[i-1], flank[i]
	t := (limit - prev.ang) / (cur.ang - prev.ang)
	cross := polPt{r: prev.r + t*(cur.r-prev.r), ang: limit}
	out := append([]polPt{cross}, flank[i:]...)
	return out, true
}

// stripRegressions drops points from pts[from:] whose radius falls more
// than tol below the running maximum, returning the cleaned slice and
// the number of points removed.
func stripRegressions(pts []r2.Vec, from int, tol float64) ([]r2.Vec, int) {
	if from >= len(pts) {
		return pts, 0
	}
	out := pts[:from+1]
	stripped := 0
	for _, p := range pts[from+1:] {
		if r2.Norm(p) < r2.Norm(out[len(out)-1])-tol {
			stripped++
			continue
		}
		out = append(out, p)
	}
	return out, stripped
}

// filletCorner replaces corner vertex v between segments a→v and v→b
// with a tangent circular arc of at most the given radius. The radius
// shrinks as needed to keep the tangent points on the segments. Returns
// just v when no rounding is possible.
func filletCorner(a, v, b r2.Vec, radius float64) []r2.Vec {
	const facets = 5
	v0 := r2.Sub(a, v)
	v1 := r2.Sub(b, v)
	n0, n1 := r2.Norm(v0), r2.Norm(v1)
	if n0 < tolerance || n1 < tolerance || radius <= tolerance {
		return []r2.Vec{v}
	}
	theta := math.Acos(clamp(r2.Dot(v0, v1)/(n0*n1), -1, 1))
	if theta < d2r(1) || theta > pi-d2r(1) {
		// Near-degenerate or near-straight corner.
		return []r2.Vec{v}
	}
	if rmax := 0.9 * math.Min(n0, n1) * math.Tan(theta/2); rmax < radius {
		radius = rmax
	}
	d1 := radius / math.Tan(theta/2)
	t0 := r2.Add(v, r2.Scale(d1/n0, v0))
	t1 := r2.Add(v, r2.Scale(d1/n1, v1))
	bis := r2.Unit(r2.Add(r2.Scale(1/n0, v0), r2.Scale(1/n1, v1)))
	c := r2.Add(v, r2.Scale(radius/math.Sin(theta/2), bis))
	a0 := math.Atan2(t0.Y-c.Y, t0.X-c.X)
	a1 := math.Atan2(t1.Y-c.Y, t1.X-c.X)
	da := a1 - a0
	if da > pi {
		da -= 2 * pi
	} else if da < -pi {
		da += 2 * pi
	}
	pts := make([]r2.Vec, 0, facets+1)
	for j := 0; j <= facets; j++ {
		pts = append(pts, r2.Add(c, d2.PolarToXY(radius, a0+da*float64(j)/facets)))
	}
	return pts
}

// simplifyPath removes interior vertices where the direction change is
// below tol [radians].
func simplifyPath(pts []r2.Vec, tol float64) []r2.Vec {
	if len(pts) < 3 {
		return pts
	}
	out := make([]r2.Vec, 1, len(pts))
	out[0] = pts[0]
	for i := 1; i < len(pts)-1; i++ {
		u := r2.Sub(pts[i], out[len(out)-1])
		w := r2.Sub(pts[i+1], pts[i])
		if r2.Norm(u) < tolerance {
			continue
		}
		turn := math.Abs(math.Atan2(r2.Cross(u, w), r2.Dot(u, w)))
		if turn > tol {
			out = append(out, pts[i])
		}
	}
	return append(out, pts[len(pts)-1])
}

func dedupeConsecutive(pts []r2.Vec, tol float64) []r2.Vec {
	if len(pts) < 2 {
		return pts
	}
	out := pts[:1]
	for _, p := range pts[1:] {
		if !d2.EqualWithin(p, out[len(out)-1], tol) {
			out = append(out, p)
		}
	}
	return out
}

func clamp(x, lo, hi float64) float64 {
	return math.Min(hi, math.Max(x, lo))
}
