// Package render turns a generated grid into pictures. It only reads the grid.
package render

import (
	"strings"

	"github.com/beka-birhanu/vinom-mazegen/maze"
)

// ASCII provides a textual representation of the maze.
// The entrance and exit, when given, are drawn as gaps in the outer border.
func ASCII(g *maze.Grid, openings *maze.Openings) string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+")
	for col := 0; col < g.Cols(); col++ {
		if openings != nil && openings.Entrance.Col == col {
			output.WriteString("   +")
		} else {
			output.WriteString("---+")
		}
	}
	output.WriteString("\n")

	for row := 0; row < g.Rows(); row++ {
		// Cell rows
		cellRow := "|"
		// Wall rows
		wallRow := "+"
		for col := 0; col < g.Cols(); col++ {
			cell, _ := g.CellAt(row, col)

			if cell.HasWall(maze.East) {
				cellRow += "   |"
			} else {
				cellRow += "    "
			}

			exit := openings != nil && row == g.Rows()-1 && openings.Exit.Col == col
			if cell.HasWall(maze.South) && !exit {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output.WriteString(cellRow + "\n")
		output.WriteString(wallRow + "\n")
	}

	return output.String()
}
