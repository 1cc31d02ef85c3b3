package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/beka-birhanu/vinom-mazegen/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxDimension = 100
)

var (
	ErrDimensionTooLarge    = errors.New("maze dimension is too large")
	ErrInvalidLoopThreshold = errors.New("loop threshold must be positive")
)

// MazeServiceConfig holds the settings for a MazeService.
type MazeServiceConfig struct {
	MaxDimension     int    // Largest accepted row or column count
	LoopThreshold    int    // Passed to the depth-first generator; 0 selects maze.DefaultLoopThreshold
	DefaultAlgorithm string // Used when a request names none
	Logger           i.Logger
	SeedSource       func() int64 // Draws seeds for requests without one; defaults to the clock
}

// MazeService builds grids and runs the requested generator on them.
type MazeService struct {
	maxDimension     int
	loopThreshold    int
	defaultAlgorithm maze.Algorithm
	logger           i.Logger
	seedSource       func() int64
}

// NewMazeService validates the configuration and returns a ready service.
func NewMazeService(c *MazeServiceConfig) (*MazeService, error) {
	if c.Logger == nil {
		return nil, errors.New("maze service requires a logger")
	}

	if c.LoopThreshold < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLoopThreshold, c.LoopThreshold)
	}

	alg := maze.AlgorithmDepthFirst
	if c.DefaultAlgorithm != "" {
		var err error
		if alg, err = maze.ParseAlgorithm(c.DefaultAlgorithm); err != nil {
			return nil, err
		}
	}

	maxDimension := c.MaxDimension
	if maxDimension <= 0 {
		maxDimension = defaultMaxDimension
	}

	seedSource := c.SeedSource
	if seedSource == nil {
		seedSource = func() int64 { return time.Now().UnixNano() }
	}

	return &MazeService{
		maxDimension:     maxDimension,
		loopThreshold:    c.LoopThreshold,
		defaultAlgorithm: alg,
		logger:           c.Logger,
		seedSource:       seedSource,
	}, nil
}

// Generate implements i.MazeGenerator.
func (s *MazeService) Generate(ctx context.Context, req i.MazeRequest) (*i.Maze, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if max(req.Rows, req.Cols) > s.maxDimension {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d", ErrDimensionTooLarge, req.Rows, req.Cols, s.maxDimension)
	}

	alg := s.defaultAlgorithm
	if req.Algorithm != "" {
		var err error
		if alg, err = maze.ParseAlgorithm(req.Algorithm); err != nil {
			return nil, err
		}
	}

	grid, err := maze.NewGrid(req.Rows, req.Cols)
	if err != nil {
		return nil, err
	}

	generator, err := maze.NewGenerator(alg, maze.Options{LoopThreshold: s.loopThreshold})
	if err != nil {
		return nil, err
	}

	seed := s.seedSource()
	if req.Seed != nil {
		seed = *req.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	stats, err := generator.Generate(grid, rng, req.Start)
	if err != nil {
		return nil, err
	}

	generated := &i.Maze{
		ID:       uuid.New(),
		Seed:     seed,
		Grid:     grid,
		Stats:    stats,
		Openings: maze.NewOpenings(grid, rng),
	}

	s.logger.Info(fmt.Sprintf("Generated maze: ID=%s Algorithm=%s Size=%dx%d Seed=%d Loops=%d",
		generated.ID, alg, req.Rows, req.Cols, seed, stats.LoopsInjected))
	if stats.Visited < stats.Cells {
		s.logger.Warning(fmt.Sprintf("Maze %s left %d of %d cells unvisited", generated.ID, stats.Cells-stats.Visited, stats.Cells))
	}

	return generated, nil
}

// Algorithms implements i.MazeGenerator.
func (s *MazeService) Algorithms() []string {
	names := make([]string, 0, len(maze.Algorithms))
	for _, alg := range maze.Algorithms {
		names = append(names, string(alg))
	}
	return names
}
