package angle

import "math"

// Point is a position on a flat plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// AngleTwoPoints returns the bearing from p1 to p2.
func AngleTwoPoints(p1, p2 Point) float64 {
	return AngleTwoPointsXY(p1.X, p1.Y, p2.X, p2.Y)
}

// AngleTwoPointsXY is AngleTwoPoints for (x1, y1) and (x2, y2).
func AngleTwoPointsXY(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1)
}

// DistanceTwoPoints returns the euclidean distance between p1 and p2.
func DistanceTwoPoints(p1, p2 Point) float64 {
	return DistanceTwoPointsXY(p1.X, p1.Y, p2.X, p2.Y)
}

// DistanceTwoPointsXY is DistanceTwoPoints for (x1, y1) and (x2, y2).
func DistanceTwoPointsXY(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(DistanceTwoPointsSquaredXY(x1, y1, x2, y2))
}

// DistanceTwoPointsSquared skips the square root, enough to compare distances.
func DistanceTwoPointsSquared(p1, p2 Point) float64 {
	return DistanceTwoPointsSquaredXY(p1.X, p1.Y, p2.X, p2.Y)
}

// DistanceTwoPointsSquaredXY is DistanceTwoPointsSquared for (x1, y1) and (x2, y2).
func DistanceTwoPointsSquaredXY(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// AngleTo returns the bearing from p to to.
func (p Point) AngleTo(to Point) float64 {
	return AngleTwoPoints(p, to)
}

// DistanceTo returns the euclidean distance from p to to.
func (p Point) DistanceTo(to Point) float64 {
	return DistanceTwoPoints(p, to)
}

// DistanceSquaredTo returns the squared distance from p to to.
func (p Point) DistanceSquaredTo(to Point) float64 {
	return DistanceTwoPointsSquared(p, to)
}
