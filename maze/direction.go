package maze

// Direction is one of the four cardinal headings of a 4-connected grid.
// The zero value is North and the values follow clockwise order.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West

	directionCount = 4
)

// Directions lists every heading in clockwise order starting at North.
var Directions = [directionCount]Direction{North, East, South, West}

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid reports whether d is one of the four cardinal headings.
func (d Direction) IsValid() bool {
	return d < directionCount
}

// TurnRight returns the clockwise successor of d.
func (d Direction) TurnRight() Direction {
	return (d + 1) % directionCount
}

// TurnLeft returns the counter-clockwise predecessor of d.
func (d Direction) TurnLeft() Direction {
	return (d + directionCount - 1) % directionCount
}

// Opposite returns the heading pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % directionCount
}

// Delta returns the row and column offsets of a single step in direction d.
// North decrements the row, South increments it, East increments the
// column and West decrements it.
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}
