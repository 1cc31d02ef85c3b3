// Package mazeapi exposes maze generation over HTTP.
package mazeapi

import (
	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/beka-birhanu/vinom-mazegen/render"
	"github.com/beka-birhanu/vinom-mazegen/service/i"
)

// Output formats accepted in the "format" query parameter.
const (
	formatJSON     = "json"
	formatASCII    = "ascii"
	formatSegments = "segments"
)

// PositionDTO is a (row, col) pair.
type PositionDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// GenerateRequest is the JSON body of a generation request.
type GenerateRequest struct {
	Rows      int          `json:"rows"`
	Cols      int          `json:"cols"`
	Algorithm string       `json:"algorithm"`
	Seed      *int64       `json:"seed"`
	Start     *PositionDTO `json:"start"`
}

// GenerateQuery carries the same request as query parameters.
type GenerateQuery struct {
	Rows      int    `form:"rows"`
	Cols      int    `form:"cols"`
	Algorithm string `form:"algorithm"`
	Seed      *int64 `form:"seed"`
	StartRow  *int   `form:"start_row"`
	StartCol  *int   `form:"start_col"`
}

// OutputQuery selects how a maze is returned.
type OutputQuery struct {
	Format   string `form:"format"`
	CellSize int    `form:"cell_size"`
}

// WallsDTO is the state of each side of a cell: "open", "closed" or "boundary".
type WallsDTO struct {
	North string `json:"north"`
	South string `json:"south"`
	East  string `json:"east"`
	West  string `json:"west"`
}

// CellDTO is one cell of a generated maze.
type CellDTO struct {
	Row     int      `json:"row"`
	Col     int      `json:"col"`
	Visited bool     `json:"visited"`
	Walls   WallsDTO `json:"walls"`
}

// MazeResponse is a generated maze in row-major order.
type MazeResponse struct {
	ID       string        `json:"id"`
	Seed     int64         `json:"seed"`
	Rows     int           `json:"rows"`
	Cols     int           `json:"cols"`
	Stats    maze.Stats    `json:"stats"`
	Openings maze.Openings `json:"openings"`
	Cells    []CellDTO     `json:"cells"`
}

// SegmentsResponse is a generated maze as drawable lines.
type SegmentsResponse struct {
	ID       string           `json:"id"`
	Seed     int64            `json:"seed"`
	CellSize int              `json:"cell_size"`
	Width    int              `json:"width"`
	Height   int              `json:"height"`
	Segments []render.Segment `json:"segments"`
}

// AlgorithmsResponse lists the supported algorithms.
type AlgorithmsResponse struct {
	Algorithms []string `json:"algorithms"`
}

func (r *GenerateRequest) toMazeRequest() i.MazeRequest {
	req := i.MazeRequest{
		Rows:      r.Rows,
		Cols:      r.Cols,
		Algorithm: r.Algorithm,
		Seed:      r.Seed,
	}
	if r.Start != nil {
		req.Start = &maze.CellPosition{Row: r.Start.Row, Col: r.Start.Col}
	}
	return req
}

func (q *GenerateQuery) toGenerateRequest() (GenerateRequest, bool) {
	req := GenerateRequest{
		Rows:      q.Rows,
		Cols:      q.Cols,
		Algorithm: q.Algorithm,
		Seed:      q.Seed,
	}
	switch {
	case q.StartRow != nil && q.StartCol != nil:
		req.Start = &PositionDTO{Row: *q.StartRow, Col: *q.StartCol}
	case q.StartRow != nil || q.StartCol != nil:
		return req, false
	}
	return req, true
}

func mazeResponse(m *i.Maze) *MazeResponse {
	cells := make([]CellDTO, 0, m.Grid.Len())
	for cell := range m.Grid.Cells() {
		cells = append(cells, CellDTO{
			Row:     cell.Row(),
			Col:     cell.Col(),
			Visited: cell.Visited(),
			Walls: WallsDTO{
				North: cell.Wall(maze.North).String(),
				South: cell.Wall(maze.South).String(),
				East:  cell.Wall(maze.East).String(),
				West:  cell.Wall(maze.West).String(),
			},
		})
	}

	return &MazeResponse{
		ID:       m.ID.String(),
		Seed:     m.Seed,
		Rows:     m.Grid.Rows(),
		Cols:     m.Grid.Cols(),
		Stats:    m.Stats,
		Openings: m.Openings,
		Cells:    cells,
	}
}

func segmentsResponse(m *i.Maze, cellSize int) *SegmentsResponse {
	return &SegmentsResponse{
		ID:       m.ID.String(),
		Seed:     m.Seed,
		CellSize: cellSize,
		Width:    cellSize * (m.Grid.Cols() + 2),
		Height:   cellSize * (m.Grid.Rows() + 2),
		Segments: render.Segments(m.Grid, cellSize, &m.Openings),
	}
}
