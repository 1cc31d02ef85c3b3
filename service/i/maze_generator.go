package i

import (
	"context"

	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/google/uuid"
)

// MazeRequest describes a maze to generate.
type MazeRequest struct {
	Rows      int
	Cols      int
	Algorithm string             // Empty selects the configured default
	Seed      *int64             // Nil draws a fresh seed
	Start     *maze.CellPosition // Nil lets the start policy choose
}

// Maze is a finished maze together with everything needed to rebuild it.
type Maze struct {
	ID       uuid.UUID
	Seed     int64
	Grid     *maze.Grid
	Stats    maze.Stats
	Openings maze.Openings
}

// MazeGenerator produces mazes on request.
type MazeGenerator interface {
	// Generate builds and carves a maze. It is synchronous; the returned grid is read-only.
	Generate(ctx context.Context, req MazeRequest) (*Maze, error)

	// Algorithms lists the algorithm names Generate accepts.
	Algorithms() []string
}
