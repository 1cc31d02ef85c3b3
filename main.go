package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/vinom-mazegen/api"
	apii "github.com/beka-birhanu/vinom-mazegen/api/i"
	"github.com/beka-birhanu/vinom-mazegen/api/identity"
	mazeapi "github.com/beka-birhanu/vinom-mazegen/api/maze"
	"github.com/beka-birhanu/vinom-mazegen/config"
	"github.com/beka-birhanu/vinom-mazegen/infrastruture/token"
	"github.com/beka-birhanu/vinom-mazegen/logger"
	"github.com/beka-birhanu/vinom-mazegen/service"
	"github.com/beka-birhanu/vinom-mazegen/service/i"
)

// Global variables for dependencies
var (
	appLogger      i.Logger
	mazeService    *service.MazeService
	mazeController apii.Controller
	jwtTokenizer   i.Tokenizer
	router         *api.Router
)

func newLogger(component, color string) i.Logger {
	l, err := logger.New(component, color, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating %s logger: %v\n", component, err)
		os.Exit(1)
	}
	return l
}

func initMazeService() {
	var err error
	mazeService, err = service.NewMazeService(&service.MazeServiceConfig{
		MaxDimension:     config.Envs.MazeMaxDimension,
		LoopThreshold:    config.Envs.MazeLoopThreshold,
		DefaultAlgorithm: config.Envs.MazeDefaultAlgorithm,
		Logger:           newLogger("MAZE", config.ColorCyan),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(&mazeapi.Config{
		Generator: mazeService,
		CellSize:  config.Envs.MazeCellSize,
		Logger:    newLogger("MAZE-API", config.ColorMagenta),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Mode:                    config.Envs.GinMode,
		Controllers:             []apii.Controller{mazeController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	appLogger = newLogger("APP", config.ColorGreen)

	initMazeService()
	initMazeController()
	initJWTTokenizer()
	initRouter(jwtTokenizer)

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
