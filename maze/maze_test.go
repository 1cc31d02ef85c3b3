package maze

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRand replays fixed Intn results and never reorders on Shuffle.
type scriptedRand struct {
	values []int
	calls  int
}

func (s *scriptedRand) Intn(n int) int {
	s.calls++
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v % n
}

func (s *scriptedRand) Shuffle(int, func(i, j int)) {}

// passages lists open walls row-major, each once, as "row,col S|E".
func passages(g *Grid) []string {
	var result []string
	for cell := range g.Cells() {
		if cell.Wall(South) == Open {
			result = append(result, fmt.Sprintf("%d,%d S", cell.Row(), cell.Col()))
		}
		if cell.Wall(East) == Open {
			result = append(result, fmt.Sprintf("%d,%d E", cell.Row(), cell.Col()))
		}
	}
	return result
}

func assertSymmetric(t *testing.T, g *Grid) {
	t.Helper()
	for cell := range g.Cells() {
		for _, d := range Directions {
			n := cell.Neighbor(d)
			if n == NoNeighbor {
				assert.Equal(t, Boundary, cell.Wall(d))
				continue
			}
			assert.Equal(t, cell.Wall(d), g.At(n).Wall(d.Opposite()),
				"wall %s of (%d, %d) is not mirrored", d, cell.Row(), cell.Col())
		}
	}
}

func TestDirection(t *testing.T) {
	assert.Equal(t, South, North.Opposite())
	assert.Equal(t, North, South.Opposite())
	assert.Equal(t, West, East.Opposite())
	assert.Equal(t, East, West.Opposite())
	for _, d := range Directions {
		assert.Equal(t, d, d.Opposite().Opposite())
	}
	assert.Equal(t, "North", North.String())
	assert.Equal(t, "Unknown", Direction(9).String())
}

func TestNewGrid(t *testing.T) {
	t.Run("Invalid dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}, {0, 0}} {
			g, err := NewGrid(dims[0], dims[1])
			assert.ErrorIs(t, err, ErrInvalidDimension)
			assert.Nil(t, g)
		}
	})

	t.Run("Neighbours resolved by coordinates", func(t *testing.T) {
		g, err := NewGrid(3, 4)
		require.NoError(t, err)
		assert.Equal(t, 3, g.Rows())
		assert.Equal(t, 4, g.Cols())
		assert.Equal(t, 12, g.Len())

		idx := g.Lookup(1, 2)
		assert.Equal(t, 6, idx)
		assert.Equal(t, g.Lookup(0, 2), g.Neighbor(idx, North))
		assert.Equal(t, g.Lookup(2, 2), g.Neighbor(idx, South))
		assert.Equal(t, g.Lookup(1, 3), g.Neighbor(idx, East))
		assert.Equal(t, g.Lookup(1, 1), g.Neighbor(idx, West))
	})

	t.Run("Boundary sentinel", func(t *testing.T) {
		g, err := NewGrid(3, 4)
		require.NoError(t, err)
		for cell := range g.Cells() {
			assert.Equal(t, cell.Row() == 0, cell.Neighbor(North) == NoNeighbor)
			assert.Equal(t, cell.Row() == 2, cell.Neighbor(South) == NoNeighbor)
			assert.Equal(t, cell.Col() == 0, cell.Neighbor(West) == NoNeighbor)
			assert.Equal(t, cell.Col() == 3, cell.Neighbor(East) == NoNeighbor)
			assert.False(t, cell.Visited())
		}
		assert.Equal(t, NoNeighbor, g.Lookup(-1, 0))
		assert.Equal(t, NoNeighbor, g.Lookup(0, 4))
		assert.Equal(t, NoNeighbor, g.Lookup(3, 0))
	})

	t.Run("Cell lookup out of bounds", func(t *testing.T) {
		g, err := NewGrid(2, 2)
		require.NoError(t, err)
		_, err = g.CellAt(2, 0)
		assert.ErrorIs(t, err, ErrOutOfBounds)
		cell, err := g.CellAt(1, 0)
		require.NoError(t, err)
		assert.Equal(t, CellPosition{Row: 1, Col: 0}, cell.Position())
	})
}

func TestCellsRowMajor(t *testing.T) {
	g, err := NewGrid(2, 3)
	require.NoError(t, err)

	var got []CellPosition
	for cell := range g.Cells() {
		got = append(got, cell.Position())
	}
	want := []CellPosition{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	assert.Equal(t, want, got)

	// the sequence can be walked again
	count := 0
	for range g.Cells() {
		count++
	}
	assert.Equal(t, 6, count)
}

func TestConnections(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)

	center := g.Lookup(1, 1)
	conns := g.Connections(center)
	require.Len(t, conns, 4)
	for i, d := range Directions {
		assert.Equal(t, d, conns[i].Direction)
	}

	corner := g.Lookup(0, 0)
	assert.Equal(t, []Connection{
		{Direction: South, Neighbor: g.Lookup(1, 0)},
		{Direction: East, Neighbor: g.Lookup(0, 1)},
	}, g.Connections(corner))

	g.OpenWall(center, East)
	conns = g.Connections(center)
	assert.Len(t, conns, 3)
	for _, conn := range conns {
		assert.NotEqual(t, East, conn.Direction)
	}
	assert.Len(t, g.Connections(g.Lookup(1, 2)), 2)
}

func TestOpenWall(t *testing.T) {
	t.Run("Opens both sides", func(t *testing.T) {
		g, err := NewGrid(2, 2)
		require.NoError(t, err)

		g.OpenWall(g.Lookup(0, 0), South)
		assert.Equal(t, Open, g.At(g.Lookup(0, 0)).Wall(South))
		assert.Equal(t, Open, g.At(g.Lookup(1, 0)).Wall(North))
		assert.Equal(t, Closed, g.At(g.Lookup(0, 0)).Wall(East))
		assert.Equal(t, 1, g.OpenWalls())
		assertSymmetric(t, g)
	})

	t.Run("Idempotent", func(t *testing.T) {
		once, err := NewGrid(3, 3)
		require.NoError(t, err)
		twice, err := NewGrid(3, 3)
		require.NoError(t, err)

		once.OpenWall(4, West)
		twice.OpenWall(4, West)
		twice.OpenWall(4, West)
		twice.OpenWall(3, East)
		assert.Equal(t, once, twice)
	})

	t.Run("Boundary is a no-op", func(t *testing.T) {
		g, err := NewGrid(2, 2)
		require.NoError(t, err)
		g.OpenWall(0, North)
		g.OpenWall(0, West)
		assert.Equal(t, Boundary, g.At(0).Wall(North))
		assert.True(t, g.At(0).HasWall(North))
		assert.Equal(t, 0, g.OpenWalls())
	})
}

func TestNewGenerator(t *testing.T) {
	gen, err := NewGenerator(AlgorithmDepthFirst, Options{})
	require.NoError(t, err)
	dfs, ok := gen.(*DepthFirst)
	require.True(t, ok)
	assert.Equal(t, DefaultLoopThreshold, dfs.LoopThreshold())

	gen, err = NewGenerator(AlgorithmDepthFirst, Options{LoopThreshold: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, gen.(*DepthFirst).LoopThreshold())

	gen, err = NewGenerator(AlgorithmFrontier, Options{})
	require.NoError(t, err)
	assert.IsType(t, &Frontier{}, gen)

	gen, err = NewGenerator(AlgorithmWilson, Options{})
	require.NoError(t, err)
	assert.IsType(t, &Wilson{}, gen)

	_, err = NewGenerator("kruskal", Options{})
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)

	alg, err := ParseAlgorithm("frontier")
	require.NoError(t, err)
	assert.Equal(t, AlgorithmFrontier, alg)
	_, err = ParseAlgorithm("")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestStartPolicy(t *testing.T) {
	g, err := NewGrid(4, 5)
	require.NoError(t, err)

	idx, err := startIndex(g, &scriptedRand{values: []int{3}}, nil, StartTopRow)
	require.NoError(t, err)
	assert.Equal(t, g.Lookup(0, 3), idx)

	idx, err = startIndex(g, &scriptedRand{values: []int{13}}, nil, StartAnywhere)
	require.NoError(t, err)
	assert.Equal(t, CellPosition{Row: 2, Col: 3}, g.At(idx).Position())

	rng := &scriptedRand{}
	idx, err = startIndex(g, rng, &CellPosition{Row: 3, Col: 4}, StartTopRow)
	require.NoError(t, err)
	assert.Equal(t, g.Lookup(3, 4), idx)
	assert.Zero(t, rng.calls)

	_, err = startIndex(g, rng, &CellPosition{Row: 4, Col: 0}, StartTopRow)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestNewOpenings(t *testing.T) {
	g, err := NewGrid(4, 6)
	require.NoError(t, err)

	o := NewOpenings(g, &scriptedRand{values: []int{5, 2}})
	assert.Equal(t, CellPosition{Row: 0, Col: 5}, o.Entrance)
	assert.Equal(t, CellPosition{Row: 3, Col: 5}, o.Exit)

	narrow, err := NewGrid(2, 1)
	require.NoError(t, err)
	o = NewOpenings(narrow, &scriptedRand{values: []int{0, 2}})
	assert.Equal(t, CellPosition{Row: 0, Col: 0}, o.Entrance)
	assert.Equal(t, CellPosition{Row: 1, Col: 0}, o.Exit)
	assert.Equal(t, 0, narrow.OpenWalls())
}

func TestCellSet(t *testing.T) {
	s := newCellSet(4)
	s.add(7)
	s.add(3)
	s.add(7)
	s.add(9)
	assert.Equal(t, 3, s.len())
	assert.Equal(t, []int{7, 3, 9}, s.members)

	s.remove(7)
	assert.Equal(t, []int{9, 3}, s.members)
	assert.False(t, s.contains(7))
	assert.True(t, s.contains(9))

	s.remove(3)
	s.remove(42)
	assert.Equal(t, []int{9}, s.members)
	assert.Equal(t, 9, s.at(0))

	s.remove(9)
	assert.Zero(t, s.len())
}
