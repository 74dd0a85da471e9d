// Package angle provides helpers for angles in radians and points on a flat
// plane. RIGHT (east) is the reference axis at 0 and angles grow
// counter-clockwise, so UP (north) is π/2.
package angle

import "math"

const π = math.Pi

const (
	Right = 0.0
	Up    = π / 2
	Left  = π
	Down  = 3 * π / 2

	East  = Right
	North = Up
	West  = Left
	South = Down

	NorthWest = (North + West) / 2
	NorthEast = (North + East) / 2
	SouthWest = (South + West) / 2
	SouthEast = (South + East) / 2

	Pi2       = π * 2
	PiHalf    = π / 2
	PiQuarter = π / 4
)

const (
	toDegreeConversion = 180 / π
	toRadianConversion = π / 180
)

// ToDegrees converts radians to degrees. Every other function expects radians.
func ToDegrees(radians float64) float64 {
	return radians * toDegreeConversion
}

// ToRadians converts degrees to radians.
func ToRadians(degrees float64) float64 {
	return degrees * toRadianConversion
}

// floorMod returns a mod n with the sign of n.
func floorMod(a, n float64) float64 {
	return math.Mod(math.Mod(a, n)+n, n)
}

// Normalize wraps an angle into [0, 2π).
func Normalize(radians float64) float64 {
	r := radians - Pi2*math.Floor(radians/Pi2)
	if r >= 0 && r < Pi2 {
		return r
	}

	// a/2π rounds near a multiple of 2π, and 2π·floor(a/2π) loses every
	// fractional digit for huge angles. math.Mod is exact.
	r = math.Mod(radians, Pi2)
	if r < 0 {
		r += Pi2
	}
	if r >= Pi2 {
		return 0
	}
	return r
}

// Difference returns the unsigned shortest distance between two angles, in [0, π].
func Difference(a, b float64) float64 {
	c := math.Mod(math.Abs(a-b), Pi2)
	if c > π {
		return Pi2 - c
	}
	return c
}

// DifferenceSign returns 1 when the shortest rotation from source to target is
// counter-clockwise and -1 otherwise. A half turn or no turn at all gives -1.
func DifferenceSign(target, source float64) int {
	a := target - source
	if floorMod(a+π, Pi2)-π > 0 {
		return 1
	}
	return -1
}

// ShortestAngle returns the target angle reached from start by the shortest
// rotation towards to. The result may be negative or above 2π.
func ShortestAngle(start, to float64) float64 {
	difference := Difference(to, start)
	sign := DifferenceSign(to, start)
	return start + difference*float64(sign)
}

// IsBetween reports whether target lies on the arc, at most a half turn wide,
// joining angle1 and angle2. When both arcs are half turns the arc running
// counter-clockwise from angle1 is used, in both orientations: IsBetween(π/2,
// 0, π) and IsBetween(3π/2, π, 0) are both true.
func IsBetween(target, angle1, angle2 float64) bool {
	rAngle := floorMod(angle2-angle1, Pi2)
	if rAngle > π {
		angle1, angle2 = angle2, angle1
	}

	// the arc passes through zero
	if angle1 > angle2 {
		return target >= angle1 || target <= angle2
	}
	return target >= angle1 && target <= angle2
}

// Equals reports whether a1 and a2 are the same angle once normalized. The
// comparison is exact, use EqualsWithin to absorb rounding errors.
func Equals(a1, a2 float64) bool {
	return Normalize(a1) == Normalize(a2)
}

// EqualsWithin reports whether a1 and a2 are strictly closer than wiggle. A
// zero or NaN wiggle means no tolerance and falls back to Equals.
func EqualsWithin(a1, a2, wiggle float64) bool {
	if wiggle == 0 || math.IsNaN(wiggle) {
		return Equals(a1, a2)
	}
	return Difference(a1, a2) < wiggle
}
