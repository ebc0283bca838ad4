package remote

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/dentinhoapp/dentinho/internal/client/models"
)

// TimeClient wraps the time service. Callers fall back to the device clock
// when Current fails; the client itself never does.
type TimeClient struct {
	base string
	hc   *http.Client
}

// NewTimeClient returns a client for the time service at base
// (e.g. "https://www.timeapi.io/api").
func NewTimeClient(base string, timeout time.Duration) *TimeClient {
	return &TimeClient{base: base, hc: newHTTPClient(timeout)}
}

// Current returns the service's wall-clock time for the IANA zone.
func (c *TimeClient) Current(ctx context.Context, timeZone string) (models.TimeOfDay, error) {
	var out models.TimeOfDay
	u := c.base + "/Time/current/zone?timeZone=" + url.QueryEscape(timeZone)
	if err := doJSON(ctx, c.hc, http.MethodGet, u, "", nil, &out); err != nil {
		return models.TimeOfDay{}, err
	}
	return out, nil
}
