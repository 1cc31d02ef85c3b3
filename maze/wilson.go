package maze

// Wilson carves a uniform spanning tree with loop-erased random walks.
//
// A walk starts at a random cell outside the tree and wanders, remembering
// only the last exit taken from each cell, until it reaches the tree. The
// remembered exits from the walk's first cell then form a loop-free path
// that is carved and joined to the tree.
type Wilson struct {
	startPolicy StartPolicy
}

// NewWilson creates a Wilson generator.
func NewWilson(opts Options) *Wilson {
	return &Wilson{startPolicy: opts.StartPolicy}
}

// Generate implements Generator.
func (w *Wilson) Generate(g *Grid, rng Rand, start *CellPosition) (Stats, error) {
	startIdx, err := startIndex(g, rng, start, w.startPolicy)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Algorithm: AlgorithmWilson,
		Start:     g.At(startIdx).Position(),
		Cells:     g.Len(),
	}

	g.markVisited(startIdx)
	outside := newCellSet(g.Len())
	for idx := 0; idx < g.Len(); idx++ {
		if idx != startIdx {
			outside.add(idx)
		}
	}

	exits := make(map[int]Direction)
	moves := make([]Direction, 0, len(Directions))
	for outside.len() > 0 {
		walkStart := outside.at(rng.Intn(outside.len()))
		clear(exits)

		for cell := walkStart; !g.At(cell).Visited(); {
			stats.Steps++
			moves = moves[:0]
			for _, d := range Directions {
				if g.Neighbor(cell, d) != NoNeighbor {
					moves = append(moves, d)
				}
			}
			d := moves[rng.Intn(len(moves))]
			exits[cell] = d
			cell = g.Neighbor(cell, d)
		}

		for cell := walkStart; !g.At(cell).Visited(); {
			d := exits[cell]
			g.OpenWall(cell, d)
			g.markVisited(cell)
			outside.remove(cell)
			cell = g.Neighbor(cell, d)
		}
	}

	stats.Visited = g.VisitedCount()
	stats.OpenWalls = g.OpenWalls()
	return stats, nil
}
