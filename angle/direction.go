package angle

import "math"

// Direction is a named compass angle.
type Direction struct {
	Name  string  `json:"name"`
	Angle float64 `json:"angle"`
}

// search order decides ties
var directions = [...]Direction{
	{Name: "NORTH", Angle: North},
	{Name: "WEST", Angle: West},
	{Name: "EAST", Angle: East},
	{Name: "SOUTH", Angle: South},
	{Name: "NORTH_EAST", Angle: NorthEast},
	{Name: "NORTH_WEST", Angle: NorthWest},
	{Name: "SOUTH_EAST", Angle: SouthEast},
	{Name: "SOUTH_WEST", Angle: SouthWest},
}

// Directions returns the cardinal and diagonal directions in search order.
func Directions() []Direction {
	d := directions
	return d[:]
}

// ClosestAngle returns the cardinal (Up, Down, Left or Right) closest to the
// angle. Ties go to Left, then Right, then Up.
func ClosestAngle(angle float64) float64 {
	left := Difference(angle, Left)
	right := Difference(angle, Right)
	up := Difference(angle, Up)
	down := Difference(angle, Down)

	if left <= right && left <= up && left <= down {
		return Left
	} else if right <= up && right <= down {
		return Right
	} else if up <= down {
		return Up
	}
	return Down
}

// Closest returns the cardinal or diagonal direction closest to the angle.
// The first direction found in search order wins a tie. A NaN angle matches
// nothing and gives the zero Direction.
func Closest(angle float64) Direction {
	var closest Direction
	smallest := math.Inf(1)
	for _, d := range directions {
		if difference := Difference(angle, d.Angle); difference < smallest {
			smallest = difference
			closest = d
		}
	}
	return closest
}

// ClosestAngle2 is ClosestAngle with the diagonals included.
func ClosestAngle2(angle float64) float64 {
	return Closest(angle).Angle
}

// Explain names an exact cardinal angle. The angle is not normalized, so 2π is
// not RIGHT.
func Explain(angle float64) string {
	switch angle {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return "NOT CARDINAL"
	}
}

// Explain2 names the closest cardinal or diagonal direction.
func Explain2(angle float64) string {
	return Closest(angle).Name
}
