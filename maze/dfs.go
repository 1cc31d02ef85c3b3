package maze

type carveState int

const (
	advancing carveState = iota
	backtracking
	terminal
)

// DepthFirst carves a maze with a randomized depth-first walk.
//
// When the walk reaches a dead end it drops that cell from the path and,
// instead of stepping back to the previous cell, resumes from a random
// earlier one, which gives a bushier layout than plain backtracking. A dead end reached after at least LoopThreshold consecutive
// advances also gets one extra passage to an already visited neighbour, so
// the result is a spanning tree plus one cycle per injected loop.
type DepthFirst struct {
	loopThreshold int
	startPolicy   StartPolicy
}

// NewDepthFirst creates a depth-first generator.
func NewDepthFirst(opts Options) *DepthFirst {
	threshold := opts.LoopThreshold
	if threshold <= 0 {
		threshold = DefaultLoopThreshold
	}
	return &DepthFirst{
		loopThreshold: threshold,
		startPolicy:   opts.StartPolicy,
	}
}

// LoopThreshold returns the run length that triggers loop injection.
func (d *DepthFirst) LoopThreshold() int {
	return d.loopThreshold
}

// Generate implements Generator.
func (d *DepthFirst) Generate(g *Grid, rng Rand, start *CellPosition) (Stats, error) {
	startIdx, err := startIndex(g, rng, start, d.startPolicy)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Algorithm: AlgorithmDepthFirst,
		Start:     g.At(startIdx).Position(),
		Cells:     g.Len(),
	}

	g.markVisited(startIdx)
	path := []int{startIdx}
	current := startIdx
	runLength := 0
	state := advancing

	for state != terminal {
		stats.Steps++

		switch state {
		case advancing:
			state = backtracking
			for _, conn := range shuffled(g, rng, current) {
				if g.At(conn.Neighbor).Visited() {
					continue
				}
				g.OpenWall(current, conn.Direction)
				g.markVisited(conn.Neighbor)
				path = append(path, conn.Neighbor)
				current = conn.Neighbor
				runLength++
				state = advancing
				break
			}

		case backtracking:
			// Every standing wall here leads to a visited cell, so opening one closes a loop.
			if conns := g.Connections(current); len(conns) > 0 && runLength >= d.loopThreshold {
				conn := conns[rng.Intn(len(conns))]
				g.OpenWall(current, conn.Direction)
				stats.LoopsInjected++
			}
			runLength = 0

			path = retreat(path, rng)
			if len(path) == 0 {
				state = terminal
				continue
			}
			current = path[len(path)-1]
			state = advancing
		}
	}

	stats.Visited = g.VisitedCount()
	stats.OpenWalls = g.OpenWalls()
	return stats, nil
}

// retreat drops the dead end on top of path and swaps a random remaining
// entry into its place, so the walk resumes from that entry.
func retreat(path []int, rng Rand) []int {
	path = path[:len(path)-1]
	if len(path) == 0 {
		return path
	}
	last := len(path) - 1
	i := rng.Intn(len(path))
	path[i], path[last] = path[last], path[i]
	return path
}
