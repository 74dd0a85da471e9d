package wind

import "github.com/a-bouts/angle-server/angle"

// MsToKts converts m/s to knots.
const MsToKts = 1.9438444924406

// Twa returns the true wind angle, the signed shortest rotation from heading
// to the direction the wind comes from. Positive is counter-clockwise.
func Twa(heading, wind float64) float64 {
	return angle.Difference(wind, heading) * float64(angle.DifferenceSign(wind, heading))
}

// Heading returns the heading holding the given true wind angle.
func Heading(twa, wind float64) float64 {
	return angle.Normalize(wind - twa)
}

// Compass converts an angle with east at 0 growing counter-clockwise to
// compass degrees, north at 0 growing clockwise.
func Compass(direction float64) float64 {
	return angle.ToDegrees(angle.Normalize(angle.North - direction))
}
