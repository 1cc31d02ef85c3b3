package maze

// Openings marks where the outer border is cut for the way in and the way out.
// They are drawing hints only and never change wall state.
type Openings struct {
	Entrance CellPosition `json:"entrance"` // Cell on the top row whose north border is open
	Exit     CellPosition `json:"exit"`     // Cell on the bottom row whose south border is open
}

// exitSpread is how many columns right of the middle the exit may drift.
const exitSpread = 3

// NewOpenings picks an entrance above a random top-row column and an exit
// below one of the columns just right of the middle of the bottom row.
func NewOpenings(g *Grid, rng Rand) Openings {
	entranceCol := rng.Intn(g.Cols())
	exitCol := min(g.Cols()/2+rng.Intn(exitSpread), g.Cols()-1)
	return Openings{
		Entrance: CellPosition{Row: 0, Col: entranceCol},
		Exit:     CellPosition{Row: g.Rows() - 1, Col: exitCol},
	}
}
