package wind

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/a-bouts/angle-server/angle"
)

func uniform(u, v float64) *Wind {
	w := &Wind{File: "test", Lat0: 10, Lon0: 0, ΔLat: 1, ΔLon: 1, NLat: 3, NLon: 3}
	us := make([]float64, 9)
	vs := make([]float64, 9)
	for i := range us {
		us[i] = u
		vs[i] = v
	}
	w.U = w.buildGrid(us)
	w.V = w.buildGrid(vs)
	return w
}

func TestBuildGrid(t *testing.T) {
	w := Wind{NLat: 2, NLon: 3, ΔLon: 1}
	g := w.buildGrid([]float64{1, 2, 3, 4, 5, 6})
	if len(g) != 2 || len(g[0]) != 3 || g[1][0] != 4 {
		t.Errorf("buildGrid = %v; want [[1 2 3] [4 5 6]]", g)
	}

	w = Wind{NLat: 1, NLon: 4, ΔLon: 90}
	g = w.buildGrid([]float64{1, 2, 3, 4})
	if len(g[0]) != 5 || g[0][4] != 1 {
		t.Errorf("buildGrid = %v; want [[1 2 3 4 1]]", g)
	}
}

func TestInterpolateNorth(t *testing.T) {
	w := uniform(0, -5)
	d, s := w.Interpolate(11, 1)
	if !scalar.EqualWithinAbs(d, angle.North, 1e-12) {
		t.Errorf("Interpolate direction = %f; want NORTH", d)
	}
	if s != 5 {
		t.Errorf("Interpolate speed = %f; want 5", s)
	}
	if e := angle.Explain2(d); e != "NORTH" {
		t.Errorf("Explain2(direction) = %s; want NORTH", e)
	}
}

func TestInterpolateWest(t *testing.T) {
	w := uniform(3, 0)
	d, s := w.Interpolate(10.5, 0.5)
	if !scalar.EqualWithinAbs(d, angle.West, 1e-12) {
		t.Errorf("Interpolate direction = %f; want WEST", d)
	}
	if s != 3 {
		t.Errorf("Interpolate speed = %f; want 3", s)
	}
}

func TestInterpolateBilinear(t *testing.T) {
	w := &Wind{Lat0: 10, Lon0: 0, ΔLat: 1, ΔLon: 1, NLat: 3, NLon: 3}
	w.U = w.buildGrid([]float64{0, 1, 2, 0, 1, 2, 0, 1, 2})
	w.V = w.buildGrid(make([]float64, 9))

	d, s := w.Interpolate(10.5, 0.5)
	if !scalar.EqualWithinAbs(s, 0.5, 1e-12) {
		t.Errorf("Interpolate speed = %f; want 0.5", s)
	}
	if !scalar.EqualWithinAbs(d, angle.West, 1e-12) {
		t.Errorf("Interpolate direction = %f; want WEST", d)
	}

	// last row and column stay inside the grid
	_, s = w.Interpolate(12, 2)
	if !scalar.EqualWithinAbs(s, 2, 1e-12) {
		t.Errorf("Interpolate speed on the edge = %f; want 2", s)
	}
}

func TestTwa(t *testing.T) {
	twa := Twa(angle.North, angle.West)
	if !scalar.EqualWithinAbs(twa, angle.PiHalf, 1e-12) {
		t.Errorf("Twa(NORTH, WEST) = %f; want π/2", twa)
	}
	twa = Twa(angle.North, angle.East)
	if !scalar.EqualWithinAbs(twa, -angle.PiHalf, 1e-12) {
		t.Errorf("Twa(NORTH, EAST) = %f; want -π/2", twa)
	}
	twa = Twa(0.1, angle.Pi2-0.1)
	if !scalar.EqualWithinAbs(twa, -0.2, 1e-9) {
		t.Errorf("Twa(0.1, 2π-0.1) = %f; want -0.2", twa)
	}
}

func TestHeading(t *testing.T) {
	h := Heading(angle.PiHalf, angle.West)
	if !scalar.EqualWithinAbs(h, angle.North, 1e-12) {
		t.Errorf("Heading(π/2, WEST) = %f; want NORTH", h)
	}

	for _, heading := range []float64{0, 0.3, 1, 2, 3, 4, 5, 6} {
		for _, wind := range []float64{0, 0.5, 1.5, 3, 4.5, 6} {
			h := Heading(Twa(heading, wind), wind)
			if angle.Difference(h, heading) > 1e-9 {
				t.Errorf("Heading(Twa(%f, %f)) = %f", heading, wind, h)
			}
		}
	}
}

func TestCompass(t *testing.T) {
	c := Compass(angle.North)
	if c != 0 {
		t.Errorf("Compass(NORTH) = %f; want 0", c)
	}
	c = Compass(angle.East)
	if math.Round(c) != 90 {
		t.Errorf("Compass(EAST) = %f; want 90", c)
	}
	c = Compass(angle.West)
	if math.Round(c) != 270 {
		t.Errorf("Compass(WEST) = %f; want 270", c)
	}
	c = Compass(angle.NorthEast)
	if math.Round(c) != 45 {
		t.Errorf("Compass(NORTH_EAST) = %f; want 45", c)
	}
}
