package mazeapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-mazegen/api"
	apii "github.com/beka-birhanu/vinom-mazegen/api/i"
	"github.com/beka-birhanu/vinom-mazegen/api/identity"
	mazeapi "github.com/beka-birhanu/vinom-mazegen/api/maze"
	"github.com/beka-birhanu/vinom-mazegen/infrastruture/token"
	"github.com/beka-birhanu/vinom-mazegen/logger"
	"github.com/beka-birhanu/vinom-mazegen/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	handler http.Handler
	token   string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	log, err := logger.New("TEST", "", io.Discard)
	require.NoError(t, err)

	svc, err := service.NewMazeService(&service.MazeServiceConfig{
		MaxDimension: 50,
		Logger:       log,
	})
	require.NoError(t, err)

	controller, err := mazeapi.NewMazeController(&mazeapi.Config{
		Generator: svc,
		CellSize:  15,
		Logger:    log,
	})
	require.NoError(t, err)

	tokenizer := token.NewJwtService("test-secret", "mazegen")
	bearer, err := tokenizer.Generate(map[string]interface{}{"sub": "tester"}, time.Minute)
	require.NoError(t, err)

	router := api.NewRouter(api.Config{
		BaseURL:                 "/api",
		Mode:                    gin.TestMode,
		Controllers:             []apii.Controller{controller},
		AuthorizationMiddleware: identity.Authoriz(tokenizer),
	})
	return &testServer{handler: router.Handler(), token: bearer}
}

func (s *testServer) do(t *testing.T, method, target string, body any, authorized bool) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorized {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decodeMaze(t *testing.T, rec *httptest.ResponseRecorder) mazeapi.MazeResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp mazeapi.MazeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestMazeController(t *testing.T) {
	srv := newTestServer(t)

	t.Run("Health and algorithms are public", func(t *testing.T) {
		rec := srv.do(t, http.MethodGet, "/healthz", nil, false)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = srv.do(t, http.MethodGet, "/api/v1/mazes/algorithms", nil, false)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp mazeapi.AlgorithmsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, []string{"dfs", "frontier", "wilson"}, resp.Algorithms)
	})

	t.Run("Generation requires a token", func(t *testing.T) {
		rec := srv.do(t, http.MethodPost, "/api/v1/mazes", mazeapi.GenerateRequest{Rows: 3, Cols: 3}, false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/mazes?rows=3&cols=3", nil)
		req.Header.Set("Authorization", "Token abc")
		rec = httptest.NewRecorder()
		srv.handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Body and query give the same maze for a seed", func(t *testing.T) {
		seed := int64(5)
		posted := decodeMaze(t, srv.do(t, http.MethodPost, "/api/v1/mazes",
			mazeapi.GenerateRequest{Rows: 3, Cols: 4, Seed: &seed, Start: &mazeapi.PositionDTO{Row: 1, Col: 2}}, true))
		fetched := decodeMaze(t, srv.do(t, http.MethodGet,
			"/api/v1/mazes?rows=3&cols=4&seed=5&start_row=1&start_col=2", nil, true))

		assert.Equal(t, 3, posted.Rows)
		assert.Equal(t, 4, posted.Cols)
		assert.Equal(t, int64(5), posted.Seed)
		assert.Len(t, posted.Cells, 12)
		assert.Equal(t, 12, posted.Stats.Visited)
		assert.Equal(t, 1, posted.Stats.Start.Row)
		assert.Equal(t, "boundary", posted.Cells[0].Walls.North)
		assert.Equal(t, posted.Cells, fetched.Cells)
		assert.Equal(t, posted.Openings, fetched.Openings)
		assert.NotEqual(t, posted.ID, fetched.ID)
	})

	t.Run("ASCII output", func(t *testing.T) {
		rec := srv.do(t, http.MethodGet, "/api/v1/mazes?rows=2&cols=2&seed=1&format=ascii", nil, true)
		require.Equal(t, http.StatusOK, rec.Code)
		lines := strings.Split(strings.TrimSuffix(rec.Body.String(), "\n"), "\n")
		assert.Len(t, lines, 5)
		assert.True(t, strings.HasPrefix(lines[0], "+"))
	})

	t.Run("Segment output", func(t *testing.T) {
		rec := srv.do(t, http.MethodGet, "/api/v1/mazes?rows=3&cols=4&seed=1&format=segments&cell_size=10", nil, true)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp mazeapi.SegmentsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 10, resp.CellSize)
		assert.Equal(t, 60, resp.Width)
		assert.Equal(t, 50, resp.Height)
		assert.NotEmpty(t, resp.Segments)
	})

	t.Run("Bad requests", func(t *testing.T) {
		targets := []string{
			"/api/v1/mazes?rows=0&cols=3",
			"/api/v1/mazes?rows=3&cols=51",
			"/api/v1/mazes?rows=3&cols=3&algorithm=kruskal",
			"/api/v1/mazes?rows=3&cols=3&start_row=1",
			"/api/v1/mazes?rows=3&cols=3&start_row=3&start_col=0",
			"/api/v1/mazes?rows=3&cols=3&format=svg",
			"/api/v1/mazes?rows=3&cols=3&cell_size=-1",
			"/api/v1/mazes?rows=three&cols=3",
		}
		for _, target := range targets {
			rec := srv.do(t, http.MethodGet, target, nil, true)
			assert.Equal(t, http.StatusBadRequest, rec.Code, target)
			assert.Contains(t, rec.Body.String(), "error", target)
		}

		req := httptest.NewRequest(http.MethodPost, "/api/v1/mazes", strings.NewReader("{"))
		req.Header.Set("Authorization", "Bearer "+srv.token)
		rec := httptest.NewRecorder()
		srv.handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestNewMazeController(t *testing.T) {
	_, err := mazeapi.NewMazeController(&mazeapi.Config{})
	assert.Error(t, err)
}
