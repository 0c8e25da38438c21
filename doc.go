// Package vxmcp is a typed client for the vx memory-storage API with a
// resilient request pipeline:
//
//   - Bounded retries with exponential backoff (Retry-After aware)
//   - Per-attempt timeout enforcement via context deadlines
//   - A normalized error taxonomy with fixed retryability per code
//   - Input validation before any network activity
//   - Optional Prometheus metrics and structured debug logging
//
// Design goals:
//   - Small surface area – functional options configure everything
//   - No shared mutable state between concurrent operations
//   - Typed results in, typed errors out: every failure crossing the client
//     boundary is a *ClientError with a taxonomy code
//
// Typical usage:
//
//	client, err := vxmcp.New("https://memory.vx.nyc", apiKey,
//	    vxmcp.WithMaxRetries(3),
//	    vxmcp.WithTimeout(30*time.Second),
//	    vxmcp.WithSource("cli"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	mem, err := client.Store(ctx, vxmcp.StoreInput{Content: "deploys go out Tuesdays"})
//
// Only transient failures (rate limiting, 5xx, timeouts, network faults) are
// retried; everything else surfaces immediately. Use IsRetryable to branch on
// transience from the caller side.
package vxmcp
