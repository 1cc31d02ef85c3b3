package maze

// Direction is one of the four sides of a cell.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every direction in the order connections are reported.
var Directions = [...]Direction{North, South, East, West}

var (
	opposites      = [...]Direction{North: South, South: North, East: West, West: East}
	directionNames = [...]string{North: "North", South: "South", East: "East", West: "West"}

	// row and column deltas per direction
	deltas = [...]CellPosition{
		North: {Row: -1, Col: 0},
		South: {Row: 1, Col: 0},
		East:  {Row: 0, Col: 1},
		West:  {Row: 0, Col: -1},
	}
)

// Opposite returns the direction facing back across the same wall.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// String returns the capitalised direction name.
func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return "Unknown"
	}
	return directionNames[d]
}
