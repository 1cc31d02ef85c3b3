package mazeapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/beka-birhanu/vinom-mazegen/maze"
	"github.com/beka-birhanu/vinom-mazegen/render"
	"github.com/beka-birhanu/vinom-mazegen/service"
	"github.com/beka-birhanu/vinom-mazegen/service/i"
	"github.com/gin-gonic/gin"
)

const (
	defaultCellSize = 15
)

// MazeController serves maze generation requests.
type MazeController struct {
	generator i.MazeGenerator
	cellSize  int
	logger    i.Logger
}

// Config holds the dependencies of a MazeController.
type Config struct {
	Generator i.MazeGenerator
	CellSize  int // Default cell size for segment output
	Logger    i.Logger
}

// NewMazeController initializes a MazeController.
func NewMazeController(c *Config) (*MazeController, error) {
	if c.Generator == nil || c.Logger == nil {
		return nil, errors.New("maze controller requires a generator and a logger")
	}
	cellSize := c.CellSize
	if cellSize <= 0 {
		cellSize = defaultCellSize
	}
	return &MazeController{
		generator: c.Generator,
		cellSize:  cellSize,
		logger:    c.Logger,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/mazes/algorithms", mc.algorithms)
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.generate)
		mazes.GET("", mc.generateFromQuery)
	}
}

// algorithms lists the supported generation algorithms.
func (mc *MazeController) algorithms(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, &AlgorithmsResponse{Algorithms: mc.generator.Algorithms()})
}

// generate handles generation requests with a JSON body.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	mc.respond(ctx, request)
}

// generateFromQuery handles generation requests expressed as query parameters,
// so a maze can be re-fetched by repeating its seed.
func (mc *MazeController) generateFromQuery(ctx *gin.Context) {
	var query GenerateQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, ok := query.toGenerateRequest()
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "start_row and start_col must be given together"})
		return
	}
	mc.respond(ctx, request)
}

func (mc *MazeController) respond(ctx *gin.Context, request GenerateRequest) {
	var output OutputQuery
	if err := ctx.ShouldBindQuery(&output); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if output.Format == "" {
		output.Format = formatJSON
	}
	if output.CellSize == 0 {
		output.CellSize = mc.cellSize
	}
	if output.CellSize < 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "cell_size must be positive"})
		return
	}
	if output.Format != formatJSON && output.Format != formatASCII && output.Format != formatSegments {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown format %q", output.Format)})
		return
	}

	generated, err := mc.generator.Generate(ctx, request.toMazeRequest())
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			mc.logger.Error(fmt.Sprintf("Generating maze: %s", err))
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	switch output.Format {
	case formatASCII:
		ctx.String(http.StatusOK, render.ASCII(generated.Grid, &generated.Openings))
	case formatSegments:
		ctx.JSON(http.StatusOK, segmentsResponse(generated, output.CellSize))
	default:
		ctx.JSON(http.StatusOK, mazeResponse(generated))
	}
}

// statusFor maps generation errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, maze.ErrInvalidDimension),
		errors.Is(err, maze.ErrOutOfBounds),
		errors.Is(err, maze.ErrUnknownAlgorithm),
		errors.Is(err, service.ErrDimensionTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
