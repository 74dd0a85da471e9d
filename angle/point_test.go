package angle

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestAngleTwoPoints(t *testing.T) {
	p1 := Point{X: 0, Y: 0}
	p2 := Point{X: 1, Y: 0}
	a := AngleTwoPoints(p1, p2)
	if a != Right {
		t.Errorf("{%f,%f}.angleTo({%f,%f}) = %f; want 0", p1.X, p1.Y, p2.X, p2.Y, a)
	}

	p2 = Point{X: 0, Y: 1}
	a = AngleTwoPoints(p1, p2)
	if a != Up {
		t.Errorf("{%f,%f}.angleTo({%f,%f}) = %f; want π/2", p1.X, p1.Y, p2.X, p2.Y, a)
	}

	p2 = Point{X: -1, Y: 0}
	a = AngleTwoPoints(p1, p2)
	if a != Left {
		t.Errorf("{%f,%f}.angleTo({%f,%f}) = %f; want π", p1.X, p1.Y, p2.X, p2.Y, a)
	}

	p1 = Point{X: 1, Y: 1}
	p2 = Point{X: 0, Y: 0}
	a = AngleTwoPoints(p1, p2)
	if !scalar.EqualWithinAbs(a, -3*PiQuarter, tolerance) {
		t.Errorf("{%f,%f}.angleTo({%f,%f}) = %f; want -3π/4", p1.X, p1.Y, p2.X, p2.Y, a)
	}
	if !Equals(Normalize(a), Normalize(p1.AngleTo(p2))) {
		t.Errorf("AngleTo and AngleTwoPoints disagree")
	}
}

func TestAngleTwoPointsXY(t *testing.T) {
	a := AngleTwoPointsXY(0, 0, 0, 1)
	if a != Up {
		t.Errorf("AngleTwoPointsXY(0, 0, 0, 1) = %f; want π/2", a)
	}
	a = AngleTwoPointsXY(2, 3, 2, -3)
	if a != -PiHalf {
		t.Errorf("AngleTwoPointsXY(2, 3, 2, -3) = %f; want -π/2", a)
	}
	if b := AngleTwoPoints(Point{X: 2, Y: 3}, Point{X: 2, Y: -3}); b != a {
		t.Errorf("AngleTwoPoints = %f; AngleTwoPointsXY = %f", b, a)
	}
}

func TestDistanceTwoPoints(t *testing.T) {
	p1 := Point{X: 0, Y: 0}
	p2 := Point{X: 3, Y: 4}
	d := DistanceTwoPoints(p1, p2)
	if d != 5 {
		t.Errorf("{%f,%f}.distanceTo({%f,%f}) = %f; want 5", p1.X, p1.Y, p2.X, p2.Y, d)
	}
	if d := p2.DistanceTo(p1); d != 5 {
		t.Errorf("{%f,%f}.distanceTo({%f,%f}) = %f; want 5", p2.X, p2.Y, p1.X, p1.Y, d)
	}
	if d := DistanceTwoPointsXY(-1, -1, 2, 3); d != 5 {
		t.Errorf("DistanceTwoPointsXY(-1, -1, 2, 3) = %f; want 5", d)
	}
	if d := DistanceTwoPoints(p2, p2); d != 0 {
		t.Errorf("{%f,%f}.distanceTo itself = %f; want 0", p2.X, p2.Y, d)
	}
}

func TestDistanceTwoPointsSquared(t *testing.T) {
	p1 := Point{X: 0, Y: 0}
	p2 := Point{X: 3, Y: 4}
	d := DistanceTwoPointsSquared(p1, p2)
	if d != 25 {
		t.Errorf("{%f,%f}.distanceSquaredTo({%f,%f}) = %f; want 25", p1.X, p1.Y, p2.X, p2.Y, d)
	}
	if d := p1.DistanceSquaredTo(p2); d != 25 {
		t.Errorf("{%f,%f}.distanceSquaredTo({%f,%f}) = %f; want 25", p1.X, p1.Y, p2.X, p2.Y, d)
	}
	if d := DistanceTwoPointsSquaredXY(1, 1, 1, -1); d != 4 {
		t.Errorf("DistanceTwoPointsSquaredXY(1, 1, 1, -1) = %f; want 4", d)
	}
}

func TestPointsNaN(t *testing.T) {
	p := Point{X: math.NaN(), Y: 0}
	if d := DistanceTwoPoints(p, Point{}); !math.IsNaN(d) {
		t.Errorf("distance from NaN point = %f; want NaN", d)
	}
	if a := AngleTwoPoints(Point{}, p); !math.IsNaN(a) {
		t.Errorf("angle to NaN point = %f; want NaN", a)
	}
}
