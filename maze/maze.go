/*
Package maze builds rectangular mazes.

A Grid is an arena of Cells stored row-major. Each cell knows its four
neighbours by arena index, resolved once when the grid is built, and keeps
one wall flag per direction. Opening a wall always opens both sides.

Generators carve a built grid in place. DepthFirst is a randomized
depth-first carve that retreats to a random earlier cell and injects loops
after long runs. Frontier is a randomized Prim-like growth. Wilson builds a
uniform spanning tree from loop-erased random walks. Every generator takes
an explicit random source so a seed reproduces the same maze.
*/
package maze

import (
	"errors"
	"fmt"
	"iter"
)

var (
	ErrInvalidDimension = errors.New("invalid maze dimension")
	ErrOutOfBounds      = errors.New("position is out of the maze")
	ErrUnknownAlgorithm = errors.New("unknown maze algorithm")
)

// Connection is a standing wall between a cell and its neighbour.
type Connection struct {
	Direction Direction // Side of the cell the wall is on
	Neighbor  int       // Arena index of the cell behind the wall
}

// Grid is a rectangular arena of cells.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// NewGrid builds a rows x cols grid with every inner wall closed.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cell := &g.cells[row*cols+col]
			cell.pos = CellPosition{Row: row, Col: col}
			for _, d := range Directions {
				delta := deltas[d]
				cell.neighbors[d] = g.Lookup(row+delta.Row, col+delta.Col)
			}
		}
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// InBound checks whether (row, col) lies inside the grid.
func (g *Grid) InBound(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Lookup returns the arena index of (row, col), or NoNeighbor when it lies outside the grid.
func (g *Grid) Lookup(row, col int) int {
	if !g.InBound(row, col) {
		return NoNeighbor
	}
	return row*g.cols + col
}

// At returns the cell stored at index.
func (g *Grid) At(index int) *Cell {
	return &g.cells[index]
}

// CellAt returns the cell at (row, col).
func (g *Grid) CellAt(row, col int) (*Cell, error) {
	index := g.Lookup(row, col)
	if index == NoNeighbor {
		return nil, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, row, col)
	}
	return &g.cells[index], nil
}

// Neighbor returns the neighbour of the cell at index in direction d, or NoNeighbor.
func (g *Grid) Neighbor(index int, d Direction) int {
	return g.cells[index].neighbors[d]
}

// Connections lists the walls of the cell at index that still stand between
// it and a neighbour, in North, South, East, West order.
func (g *Grid) Connections(index int) []Connection {
	cell := &g.cells[index]
	conns := make([]Connection, 0, len(Directions))
	for _, d := range Directions {
		if cell.Wall(d) == Closed {
			conns = append(conns, Connection{Direction: d, Neighbor: cell.neighbors[d]})
		}
	}
	return conns
}

// OpenWall removes the wall on side d of the cell at index together with the
// matching wall of the neighbour. Opening an open wall or a boundary does nothing.
func (g *Grid) OpenWall(index int, d Direction) {
	neighbor := g.cells[index].neighbors[d]
	if neighbor == NoNeighbor {
		return
	}
	g.cells[index].open[d] = true
	g.cells[neighbor].open[d.Opposite()] = true
}

// Cells yields every cell in row-major order.
func (g *Grid) Cells() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for i := range g.cells {
			if !yield(&g.cells[i]) {
				return
			}
		}
	}
}

// VisitedCount returns how many cells have been reached.
func (g *Grid) VisitedCount() int {
	count := 0
	for i := range g.cells {
		if g.cells[i].visited {
			count++
		}
	}
	return count
}

// Unvisited returns the positions of cells no generator reached, row-major.
func (g *Grid) Unvisited() []CellPosition {
	var result []CellPosition
	for i := range g.cells {
		if !g.cells[i].visited {
			result = append(result, g.cells[i].pos)
		}
	}
	return result
}

// OpenWalls counts open passages. Each passage is counted once.
func (g *Grid) OpenWalls() int {
	count := 0
	for i := range g.cells {
		// South and East cover every inner wall exactly once.
		if g.cells[i].Wall(South) == Open {
			count++
		}
		if g.cells[i].Wall(East) == Open {
			count++
		}
	}
	return count
}

// markVisited flags the cell at index as reached.
func (g *Grid) markVisited(index int) {
	g.cells[index].markVisited()
}

