package projection

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"wordspace/internal/domain"
)

// Layout parameters sent with every projection request. Target
// dimensionality is fixed at 3; spread and minimum distance are tuned
// for visual separation of small vocabularies.
const (
	TargetDimensions = 3
	MaxNeighbors     = 5
	Spread           = 8.0
	MinDistance      = 0.25
)

// Client is a minimal REST client to the external layout service. The
// service treats the vector set as opaque and returns one 3D point per
// input vector, in input order.
type Client struct {
	url    string
	client *http.Client
}

// Config configures the layout service client.
type Config struct {
	URL     string
	Timeout time.Duration
}

// NewClient creates a layout service client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		url:    cfg.URL,
		client: &http.Client{Timeout: timeout},
	}
}

// Neighbors returns the neighborhood size for n vectors. The service
// requires it to stay below the sample count.
func Neighbors(n int) int {
	if n-1 < MaxNeighbors {
		return n - 1
	}
	return MaxNeighbors
}

// Project sends the full vector set to the layout service and returns
// one coordinate per vector, aligned by position. Fewer than two
// vectors cannot be laid out and fail with ErrTooFewVectors before any
// request is made.
func (c *Client) Project(vectors [][]float64) ([]domain.Coordinate, error) {
	if len(vectors) < 2 {
		return nil, domain.ErrTooFewVectors
	}
	req := map[string]any{
		"vectors":           vectors,
		"target_dimensions": TargetDimensions,
		"neighbors":         Neighbors(len(vectors)),
		"spread":            Spread,
		"min_distance":      MinDistance,
	}
	var resp struct {
		Points [][]float64 `json:"points"`
	}
	if err := c.postJSON(fmt.Sprintf("%s/project", c.url), req, &resp); err != nil {
		return nil, err
	}
	if len(resp.Points) != len(vectors) {
		return nil, fmt.Errorf("layout service returned %d points for %d vectors", len(resp.Points), len(vectors))
	}
	coords := make([]domain.Coordinate, len(resp.Points))
	for i, p := range resp.Points {
		if len(p) != TargetDimensions {
			return nil, fmt.Errorf("layout point %d has %d components", i, len(p))
		}
		coords[i] = domain.Coordinate{X: p[0], Y: p[1], Z: p[2]}
	}
	return coords, nil
}

func (c *Client) postJSON(url string, body any, out any) error {
	data, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("layout POST %s failed: %s", url, resp.Status)
	}
	if out != nil {
		dec := json.NewDecoder(resp.Body)
		return dec.Decode(out)
	}
	return nil
}
