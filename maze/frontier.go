package maze

// Frontier grows a maze outward from one cell, Prim style.
//
// Each step picks a random frontier cell and joins it to a random visited
// neighbour. The picked cell leaves the frontier whether or not it found a
// visited neighbour that round. Such a cell is only re-added if a later
// cell next to it gets visited, so coverage is reported in Stats.Visited
// and Grid.Unvisited rather than assumed to be complete.
type Frontier struct {
	startPolicy StartPolicy
}

// NewFrontier creates a frontier-growth generator.
func NewFrontier(opts Options) *Frontier {
	return &Frontier{startPolicy: opts.StartPolicy}
}

// Generate implements Generator.
func (f *Frontier) Generate(g *Grid, rng Rand, start *CellPosition) (Stats, error) {
	startIdx, err := startIndex(g, rng, start, f.startPolicy)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Algorithm: AlgorithmFrontier,
		Start:     g.At(startIdx).Position(),
		Cells:     g.Len(),
	}

	g.markVisited(startIdx)
	frontier := newCellSet(g.Len())
	for _, conn := range g.Connections(startIdx) {
		frontier.add(conn.Neighbor)
	}

	for frontier.len() > 0 {
		stats.Steps++
		current := frontier.at(rng.Intn(frontier.len()))

		conns := shuffled(g, rng, current)
		for i, conn := range conns {
			if !g.At(conn.Neighbor).Visited() {
				continue
			}
			g.OpenWall(current, conn.Direction)
			g.markVisited(current)
			for j, other := range conns {
				if j != i && !g.At(other.Neighbor).Visited() {
					frontier.add(other.Neighbor)
				}
			}
			break
		}

		frontier.remove(current)
	}

	stats.Visited = g.VisitedCount()
	stats.OpenWalls = g.OpenWalls()
	return stats, nil
}

// cellSet is a set of arena indexes with O(1) add, remove and random pick.
// Members keep insertion order except where a removal swaps the last member in.
type cellSet struct {
	members []int
	pos     map[int]int
}

func newCellSet(capacity int) *cellSet {
	return &cellSet{
		members: make([]int, 0, capacity),
		pos:     make(map[int]int, capacity),
	}
}

func (s *cellSet) len() int {
	return len(s.members)
}

func (s *cellSet) at(i int) int {
	return s.members[i]
}

func (s *cellSet) contains(index int) bool {
	_, ok := s.pos[index]
	return ok
}

func (s *cellSet) add(index int) {
	if s.contains(index) {
		return
	}
	s.pos[index] = len(s.members)
	s.members = append(s.members, index)
}

func (s *cellSet) remove(index int) {
	i, ok := s.pos[index]
	if !ok {
		return
	}
	last := len(s.members) - 1
	moved := s.members[last]
	s.members[i] = moved
	s.pos[moved] = i
	s.members = s.members[:last]
	delete(s.pos, index)
}
