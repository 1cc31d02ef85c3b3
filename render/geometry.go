package render

import (
	"github.com/beka-birhanu/vinom-mazegen/maze"
)

const (
	wallWidth     = 1
	boundaryWidth = 5
)

// Point is a pixel coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Segment is a straight line to draw.
type Segment struct {
	From  Point `json:"from"`
	To    Point `json:"to"`
	Width int   `json:"width"`
}

// Segments computes the lines that draw the maze with square cells of size
// pixels. The maze is offset by one cell from the origin. Every standing wall
// is one thin segment per cell side that carries it; the outer border is drawn
// again as thick segments with the entrance and exit cut out.
func Segments(g *maze.Grid, size int, openings *maze.Openings) []Segment {
	var segments []Segment

	for cell := range g.Cells() {
		x := size*cell.Col() + size
		y := size*cell.Row() + size

		if cell.HasWall(maze.North) && !isEntrance(cell, openings) {
			segments = append(segments, line(x, y, x+size, y, wallWidth))
		}
		if cell.HasWall(maze.South) && !isExit(g, cell, openings) {
			segments = append(segments, line(x, y+size, x+size, y+size, wallWidth))
		}
		if cell.HasWall(maze.East) {
			segments = append(segments, line(x+size, y, x+size, y+size, wallWidth))
		}
		if cell.HasWall(maze.West) {
			segments = append(segments, line(x, y, x, y+size, wallWidth))
		}
	}

	left, top := size, size
	right := size + size*g.Cols()
	bottom := size + size*g.Rows()

	if openings == nil {
		segments = append(segments, line(left, top, right, top, boundaryWidth))
		segments = append(segments, line(left, bottom, right, bottom, boundaryWidth))
	} else {
		gapTop := size + size*openings.Entrance.Col
		gapBottom := size + size*openings.Exit.Col
		segments = append(segments, horizontalWithGap(left, right, top, gapTop, size)...)
		segments = append(segments, horizontalWithGap(left, right, bottom, gapBottom, size)...)
	}
	segments = append(segments, line(left, top, left, bottom, boundaryWidth))
	segments = append(segments, line(right, top, right, bottom, boundaryWidth))

	return segments
}

// horizontalWithGap draws a thick line from left to right at y, skipping
// [gap, gap+size).
func horizontalWithGap(left, right, y, gap, size int) []Segment {
	var segments []Segment
	if gap > left {
		segments = append(segments, line(left, y, gap, y, boundaryWidth))
	}
	if gap+size < right {
		segments = append(segments, line(gap+size, y, right, y, boundaryWidth))
	}
	return segments
}

func isEntrance(cell *maze.Cell, openings *maze.Openings) bool {
	return openings != nil && cell.Position() == openings.Entrance
}

func isExit(g *maze.Grid, cell *maze.Cell, openings *maze.Openings) bool {
	return openings != nil && cell.Row() == g.Rows()-1 && cell.Col() == openings.Exit.Col
}

func line(x1, y1, x2, y2, width int) Segment {
	return Segment{From: Point{X: x1, Y: y1}, To: Point{X: x2, Y: y2}, Width: width}
}
