package vxmcp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewMetricsCollector(t *testing.T) {
	registry := prometheus.NewRegistry()
	collector := NewMetricsCollectorWithRegistry(registry)

	if collector == nil {
		t.Fatal("NewMetricsCollectorWithRegistry() returned nil")
	}
	if collector.requestsTotal == nil {
		t.Error("requestsTotal metric not initialized")
	}
	if collector.requestDuration == nil {
		t.Error("requestDuration metric not initialized")
	}
	if collector.retriesTotal == nil {
		t.Error("retriesTotal metric not initialized")
	}
	if collector.errorsTotal == nil {
		t.Error("errorsTotal metric not initialized")
	}
}

func TestNilCollectorIsNoOp(t *testing.T) {
	var collector *MetricsCollector

	// Must not panic.
	collector.RecordRequest("GET", "/v1/health", 200, time.Millisecond)
	collector.RecordRetry("POST", "/v1/query", 1)
	collector.RecordError(CodeServer, "POST", "/v1/query")
}

func TestPipelineRecordsMetrics(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"memories":[],"total":0}`)); err != nil {
			t.Fatalf("Failed to write response: %v", err)
		}
	}))
	defer server.Close()

	registry := prometheus.NewRegistry()
	collector := NewMetricsCollectorWithRegistry(registry)
	client := newTestClient(t, server.URL,
		WithMaxRetries(2),
		WithRetryDelay(5*time.Millisecond),
		WithMetricsCollector(collector),
	)

	if _, err := client.Query(context.Background(), QueryInput{Query: "x"}); err != nil {
		t.Fatalf("Query() returned error: %v", err)
	}

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("Gather() returned error: %v", err)
	}

	found := map[string]bool{}
	for _, fam := range families {
		found[fam.GetName()] = true
	}
	for _, name := range []string{"vxmcp_requests_total", "vxmcp_request_duration_seconds", "vxmcp_retries_total", "vxmcp_errors_total"} {
		if !found[name] {
			t.Errorf("Metric %s not collected; got %v", name, found)
		}
	}
}
