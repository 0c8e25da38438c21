package vxmcp

import (
	"context"
	"net/http"
	"time"
)

// Health probes service reachability with a single attempt against the
// liveness endpoint and reports round-trip latency. Its contract is "report
// status", not "succeed or fail": classified errors are converted into an
// unhealthy status instead of propagating.
func (c *Client) Health(ctx context.Context) HealthStatus {
	requestID := c.requestIDGen()

	start := time.Now()
	_, cerr := c.attempt(ctx, http.MethodGet, "/v1/health", nil, requestID)
	latency := time.Since(start)

	if cerr != nil {
		if c.logger != nil {
			c.logger.Warn("health probe failed", "requestID", requestID, "code", cerr.Code, "latency", latency)
		}
		return HealthStatus{Healthy: false, Latency: latency, Error: cerr.Error()}
	}

	return HealthStatus{Healthy: true, Latency: latency}
}
