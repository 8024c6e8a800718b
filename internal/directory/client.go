// Package directory fetches the doctor roster used to seed the opening
// prompt. Lookups never fail from the caller's point of view; every error
// path resolves to the fallback roster.
package directory

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/abcdental/chat-platform/internal/model"
	"github.com/abcdental/chat-platform/pkg/logger"
	"github.com/abcdental/chat-platform/pkg/metrics"
)

// FallbackDoctors is served whenever the directory cannot be reached or
// returns nothing usable.
var FallbackDoctors = []string{"Dr. Wang", "Dr. Chen", "Dr. Li"}

// Client looks up doctors from the directory service.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *logger.Logger
}

// NewClient creates a directory client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Global()
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  log,
	}
}

// FetchDoctors returns the names of available doctors. It issues exactly one
// request and absorbs every failure into the fallback roster.
func (c *Client) FetchDoctors(ctx context.Context) []string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/doctors/", nil)
	if err != nil {
		return c.fallback(err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.fallback(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("doctor directory returned non-success status",
			zap.Int("status", resp.StatusCode))
		metrics.DirectoryFallbacksTotal.Inc()
		return FallbackDoctors
	}

	var doctors []model.Doctor
	if err := json.NewDecoder(resp.Body).Decode(&doctors); err != nil {
		return c.fallback(err)
	}

	names := make([]string, 0, len(doctors))
	for _, d := range doctors {
		if d.Name != "" {
			names = append(names, d.Name)
		}
	}
	if len(names) == 0 {
		c.logger.Warn("doctor directory returned no usable entries")
		metrics.DirectoryFallbacksTotal.Inc()
		return FallbackDoctors
	}

	return names
}

func (c *Client) fallback(err error) []string {
	c.logger.Warn("doctor directory lookup failed", zap.Error(err))
	metrics.DirectoryFallbacksTotal.Inc()
	return FallbackDoctors
}
