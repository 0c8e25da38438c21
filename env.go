package vxmcp

import (
	"os"
	"strconv"
	"time"
)

// Environment variables understood by NewFromEnv.
const (
	EnvBaseURL      = "VXMCP_BASE_URL"
	EnvAPIKey       = "VXMCP_API_KEY"
	EnvSource       = "VXMCP_SOURCE"
	EnvTimeoutMS    = "VXMCP_TIMEOUT_MS"
	EnvMaxRetries   = "VXMCP_MAX_RETRIES"
	EnvRetryDelayMS = "VXMCP_RETRY_DELAY_MS"
)

// NewFromEnv creates a client from environment variables. VXMCP_BASE_URL and
// VXMCP_API_KEY are required; VXMCP_SOURCE, VXMCP_TIMEOUT_MS,
// VXMCP_MAX_RETRIES and VXMCP_RETRY_DELAY_MS override the defaults when they
// parse cleanly. Explicit options take precedence over the environment.
func NewFromEnv(options ...Option) (*Client, error) {
	var envOptions []Option

	if source := os.Getenv(EnvSource); source != "" {
		envOptions = append(envOptions, WithSource(source))
	}
	if ms, ok := intEnv(EnvTimeoutMS); ok && ms > 0 {
		envOptions = append(envOptions, WithTimeout(time.Duration(ms)*time.Millisecond))
	}
	if n, ok := intEnv(EnvMaxRetries); ok && n >= 0 {
		envOptions = append(envOptions, WithMaxRetries(n))
	}
	if ms, ok := intEnv(EnvRetryDelayMS); ok && ms > 0 {
		envOptions = append(envOptions, WithRetryDelay(time.Duration(ms)*time.Millisecond))
	}

	return New(os.Getenv(EnvBaseURL), os.Getenv(EnvAPIKey), append(envOptions, options...)...)
}

func intEnv(key string) (int, bool) {
	value := os.Getenv(key)
	if value == "" {
		return 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return n, true
}
