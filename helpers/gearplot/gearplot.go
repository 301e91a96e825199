// Package gearplot renders gear outlines and meshing diagrams to image
// files with gonum/plot. Useful for eyeballing a parameter set before
// committing to a print.
package gearplot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/soypat/gears"
	"github.com/soypat/gears/form2"
	"gonum.org/v1/gonum/spatial/r2"
)

// SaveTooth writes a plot of a single tooth profile to path (format by
// extension: .png, .svg, .pdf).
func SaveTooth(g gears.Gear, path string) error {
	pts, _, err := g.ToothProfile(false)
	if err != nil {
		return err
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("tooth profile (z=%d, m=%.3g)", g.Teeth, g.Module())
	p.X.Label.Text = "x [mm]"
	p.Y.Label.Text = "y [mm]"
	if err := addOutline(p, pts, true); err != nil {
		return err
	}
	return p.Save(15*vg.Centimeter, 15*vg.Centimeter, path)
}

// SaveGear writes a plot of the whole gear outline to path, with the
// pitch, base and outer reference circles drawn in grey.
func SaveGear(g gears.Gear, path string) error {
	outline, _, err := form2.GearPolygon(g)
	if err != nil {
		return err
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("gear outline (z=%d, m=%.3g)", g.Teeth, g.Module())
	p.X.Label.Text = "x [mm]"
	p.Y.Label.Text = "y [mm]"
	if err := addOutline(p, outline, true); err != nil {
		return err
	}
	for _, r := range []float64{g.PitchRadius(), g.BaseRadius(), g.OuterRadius()} {
		if err := addCircle(p, r); err != nil {
			return err
		}
	}
	return p.Save(15*vg.Centimeter, 15*vg.Centimeter, path)
}

// SaveMesh writes a meshing diagram of two external gears mounted at
// their working center distance along the Y axis.
func SaveMesh(g1, g2 gears.Gear, path string) error {
	mesh := gears.MeshParams{
		CircPitch:     g1.CircPitch,
		Teeth1:        g1.Teeth,
		Teeth2:        g2.Teeth,
		Helical:       g1.Helical,
		Shift1:        g1.Shift(),
		Shift2:        g2.Shift(),
		PressureAngle: g1.PressureAngle,
	}
	d, err := mesh.GearDistance()
	if err != nil {
		return err
	}
	o1, _, err := form2.GearPolygon(g1)
	if err != nil {
		return err
	}
	o2, _, err := form2.GearPolygon(g2)
	if err != nil {
		return err
	}
	// Turn the mate to face g1 plus half a pitch so a tooth lands in a
	// gap, then shift it up to the working center distance.
	sn, cs := math.Sincos(math.Pi + math.Pi/float64(g2.Teeth))
	for i := range o2 {
		v := o2[i]
		o2[i] = r2.Add(r2.Vec{X: cs*v.X - sn*v.Y, Y: sn*v.X + cs*v.Y}, r2.Vec{X: 0, Y: d})
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("mesh z=%d/%d, a=%.3f mm", g1.Teeth, g2.Teeth, d)
	p.X.Label.Text = "x [mm]"
	p.Y.Label.Text = "y [mm]"
	if err := addOutline(p, o1, true); err != nil {
		return err
	}
	if err := addOutline(p, o2, true); err != nil {
		return err
	}
	return p.Save(15*vg.Centimeter, 20*vg.Centimeter, path)
}

func addCircle(p *plot.Plot, radius float64) error {
	const n = 128
	xys := make(plotter.XYs, n+1)
	for i := 0; i <= n; i++ {
		a := 2 * math.Pi * float64(i) / n
		xys[i] = plotter.XY{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.LineStyle.Color = color.Gray{Y: 170}
	p.Add(line)
	return nil
}

func addOutline(p *plot.Plot, pts []r2.Vec, closed bool) error {
	xys := make(plotter.XYs, 0, len(pts)+1)
	for _, v := range pts {
		xys = append(xys, plotter.XY{X: v.X, Y: v.Y})
	}
	if closed && len(pts) > 0 {
		xys = append(xys, plotter.XY{X: pts[0].X, Y: pts[0].Y})
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	p.Add(line)
	return nil
}
