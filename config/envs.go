package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP               string // Host IP for the server
	RESTPort             int    // Port for the REST API
	GinMode              string // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret            string // Secret key for JWT signing
	JWTIssuer            string // Issuer claim for JWTs
	MazeMaxDimension     int    // Largest accepted row or column count
	MazeLoopThreshold    int    // Run length after which the depth-first carver injects a loop
	MazeDefaultAlgorithm string // Algorithm used when a request names none
	MazeCellSize         int    // Default pixel size of a cell for geometry output
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Infof("[APP] .env file not found or could not be loaded: %v", err)
	}

	cfg := Config{
		HostIP:               getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:             getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:              getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:            mustGetEnv("JWT_SECRET"),
		JWTIssuer:            mustGetEnv("JWT_ISSUER"),
		MazeMaxDimension:     getEnvAsIntWithDefault("MAZE_MAX_DIMENSION", 100),
		MazeLoopThreshold:    getEnvAsIntWithDefault("MAZE_LOOP_THRESHOLD", 8),
		MazeDefaultAlgorithm: getEnvWithDefault("MAZE_DEFAULT_ALGORITHM", "dfs"),
		MazeCellSize:         getEnvAsIntWithDefault("MAZE_CELL_SIZE", 15),
	}

	if cfg.MazeLoopThreshold <= 0 {
		log.Fatalf("[APP] Environment variable MAZE_LOOP_THRESHOLD must be positive, got %d", cfg.MazeLoopThreshold)
	}
	return cfg
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] Environment variable %s is not set", key)
	}
	return value
}

// getEnvAsIntWithDefault retrieves an integer environment variable, falling back to defaultValue if unset.
// A value that is set but cannot be parsed is fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
