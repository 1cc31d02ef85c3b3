package maze

// NoNeighbor is returned by neighbour lookups that fall outside the grid.
const NoNeighbor = -1

// WallState describes one side of a cell.
type WallState uint8

const (
	// Boundary marks a side with no neighbouring cell. It is never carved.
	Boundary WallState = iota
	// Closed marks a standing wall between two cells.
	Closed
	// Open marks a removed wall; a passage exists.
	Open
)

// String returns a lower case name for the wall state.
func (w WallState) String() string {
	switch w {
	case Closed:
		return "closed"
	case Open:
		return "open"
	default:
		return "boundary"
	}
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int `json:"row"` // Row index of the cell
	Col int `json:"col"` // Column index of the cell
}

// Cell is a single unit of the grid.
// Position and neighbours are fixed once the grid is built; only the
// visited flag and the open walls change during generation.
type Cell struct {
	pos       CellPosition
	visited   bool
	neighbors [len(Directions)]int
	open      [len(Directions)]bool
}

// Row returns the row index of the cell.
func (c *Cell) Row() int {
	return c.pos.Row
}

// Col returns the column index of the cell.
func (c *Cell) Col() int {
	return c.pos.Col
}

// Position returns the (row, col) identity of the cell.
func (c *Cell) Position() CellPosition {
	return c.pos
}

// Visited reports whether a generator has reached the cell.
func (c *Cell) Visited() bool {
	return c.visited
}

// Neighbor returns the arena index of the neighbour in direction d, or NoNeighbor.
func (c *Cell) Neighbor(d Direction) int {
	return c.neighbors[d]
}

// Wall returns the state of the wall on side d.
func (c *Cell) Wall(d Direction) WallState {
	switch {
	case c.neighbors[d] == NoNeighbor:
		return Boundary
	case c.open[d]:
		return Open
	default:
		return Closed
	}
}

// HasWall reports whether side d blocks passage. Boundary sides always do.
func (c *Cell) HasWall(d Direction) bool {
	return c.Wall(d) != Open
}

// markVisited sets the visited flag. It never clears it.
func (c *Cell) markVisited() {
	c.visited = true
}
