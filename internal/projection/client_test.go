package projection

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordspace/internal/domain"
)

type projectRequest struct {
	Vectors          [][]float64 `json:"vectors"`
	TargetDimensions int         `json:"target_dimensions"`
	Neighbors        int         `json:"neighbors"`
	Spread           float64     `json:"spread"`
	MinDistance      float64     `json:"min_distance"`
}

func layoutServer(t *testing.T, capture *projectRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/project", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		points := make([][]float64, len(capture.Vectors))
		for i := range points {
			points[i] = []float64{float64(i), float64(i) + 0.5, -float64(i)}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"points": points})
	}))
}

func TestProject(t *testing.T) {
	var req projectRequest
	srv := layoutServer(t, &req)
	defer srv.Close()

	c := NewClient(Config{URL: srv.URL})
	coords, err := c.Project([][]float64{{1, 0}, {0, 1}, {1, 1}})
	require.NoError(t, err)

	require.Len(t, coords, 3)
	assert.Equal(t, domain.Coordinate{X: 1, Y: 1.5, Z: -1}, coords[1])
	assert.Equal(t, TargetDimensions, req.TargetDimensions)
	assert.Equal(t, 2, req.Neighbors, "neighborhood must stay below sample count")
	assert.Equal(t, Spread, req.Spread)
	assert.Equal(t, MinDistance, req.MinDistance)
}

func TestProjectNeighborsCap(t *testing.T) {
	var req projectRequest
	srv := layoutServer(t, &req)
	defer srv.Close()

	vectors := make([][]float64, 10)
	for i := range vectors {
		vectors[i] = []float64{float64(i), 1}
	}
	c := NewClient(Config{URL: srv.URL})
	_, err := c.Project(vectors)
	require.NoError(t, err)
	assert.Equal(t, MaxNeighbors, req.Neighbors)
}

func TestProjectTooFewVectors(t *testing.T) {
	c := NewClient(Config{URL: "http://layout.invalid"})
	_, err := c.Project([][]float64{{1, 0}})
	assert.ErrorIs(t, err, domain.ErrTooFewVectors)

	_, err = c.Project(nil)
	assert.ErrorIs(t, err, domain.ErrTooFewVectors)
}

func TestProjectLengthMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"points": [][]float64{{1, 2, 3}}})
	}))
	defer srv.Close()

	c := NewClient(Config{URL: srv.URL})
	_, err := c.Project([][]float64{{1, 0}, {0, 1}})
	assert.ErrorContains(t, err, "1 points for 2 vectors")
}

func TestProjectServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(Config{URL: srv.URL})
	_, err := c.Project([][]float64{{1, 0}, {0, 1}})
	assert.Error(t, err)
}

func TestNeighbors(t *testing.T) {
	assert.Equal(t, 1, Neighbors(2))
	assert.Equal(t, 4, Neighbors(5))
	assert.Equal(t, 5, Neighbors(6))
	assert.Equal(t, 5, Neighbors(1000))
}
