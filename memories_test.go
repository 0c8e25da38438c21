package vxmcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestStoreSendsDefaultsAndMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/v1/memories" {
			t.Errorf("Expected /v1/memories, got %s", r.URL.Path)
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("Failed to decode request body: %v", err)
		}
		if body["content"] != "remember this" {
			t.Errorf("content = %v", body["content"])
		}
		if body["memoryType"] != "SEMANTIC" {
			t.Errorf("memoryType = %v, want default SEMANTIC", body["memoryType"])
		}
		if body["importance"] != 0.5 {
			t.Errorf("importance = %v, want default 0.5", body["importance"])
		}
		meta, ok := body["metadata"].(map[string]any)
		if !ok {
			t.Fatalf("metadata missing: %v", body["metadata"])
		}
		if meta["client"] != "vx-mcp" || meta["version"] != Version || meta["source"] != "vx-mcp" {
			t.Errorf("metadata = %v", meta)
		}

		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(memoryJSON)); err != nil {
			t.Fatalf("Failed to write response: %v", err)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	mem, err := client.Store(context.Background(), StoreInput{Content: "remember this"})
	if err != nil {
		t.Fatalf("Store() returned error: %v", err)
	}
	if mem.ID != "mem_1" || mem.Content != "hello" {
		t.Errorf("Store() result = %+v", mem)
	}
}

func TestStoreValidationSkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	if _, err := client.Store(context.Background(), StoreInput{Content: "   "}); err == nil {
		t.Fatal("Store() accepted blank content")
	}
	if got := calls.Load(); got != 0 {
		t.Errorf("Validation failure still hit the network %d times", got)
	}
}

func TestUpdateSendsOnlyChangedFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("Expected PATCH, got %s", r.Method)
		}
		if r.URL.Path != "/v1/memories/mem_42" {
			t.Errorf("Expected /v1/memories/mem_42, got %s", r.URL.Path)
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("Failed to decode request body: %v", err)
		}
		if len(body) != 1 {
			t.Errorf("Expected exactly one field on the wire, got %v", body)
		}
		if body["importance"] != 0.9 {
			t.Errorf("importance = %v", body["importance"])
		}

		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(memoryJSON)); err != nil {
			t.Fatalf("Failed to write response: %v", err)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	if _, err := client.Update(context.Background(), UpdateInput{ID: "mem_42", Importance: floatPtr(0.9)}); err != nil {
		t.Fatalf("Update() returned error: %v", err)
	}
}

func TestDeleteAcceptsEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("Expected DELETE, got %s", r.Method)
		}
		if r.URL.Path != "/v1/memories/mem_7" {
			t.Errorf("Expected /v1/memories/mem_7, got %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	if err := client.Delete(context.Background(), "mem_7"); err != nil {
		t.Fatalf("Delete() returned error: %v", err)
	}
}

func TestQuerySendsDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/query" {
			t.Errorf("Expected /v1/query, got %s", r.URL.Path)
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("Failed to decode request body: %v", err)
		}
		if body["query"] != "deploy schedule" {
			t.Errorf("query = %v", body["query"])
		}
		if body["limit"] != float64(10) {
			t.Errorf("limit = %v, want default 10", body["limit"])
		}
		if _, present := body["context"]; present {
			t.Error("Unset context filter must stay off the wire")
		}

		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"memories":[` + memoryJSON + `],"total":1}`)); err != nil {
			t.Fatalf("Failed to write response: %v", err)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	result, err := client.Query(context.Background(), QueryInput{Query: "deploy schedule"})
	if err != nil {
		t.Fatalf("Query() returned error: %v", err)
	}
	if result.Total != 1 || len(result.Memories) != 1 {
		t.Errorf("Query() result = %+v", result)
	}
}

func TestListWithoutFiltersHasNoQueryString(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/v1/memories" {
			t.Errorf("Expected /v1/memories, got %s", r.URL.Path)
		}
		if r.URL.RawQuery != "" {
			t.Errorf("Expected no query string, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"memories":[],"total":0,"limit":20,"offset":0}`)); err != nil {
			t.Fatalf("Failed to write response: %v", err)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	result, err := client.List(context.Background(), ListInput{})
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}
	if result.Limit != 20 {
		t.Errorf("List() limit = %d", result.Limit)
	}
}

func TestListEncodesFilters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("context"); got != "project/billing & invoicing" {
			t.Errorf("context = %q", got)
		}
		if got := q.Get("memoryType"); got != "EPISODIC" {
			t.Errorf("memoryType = %q", got)
		}
		if got := q.Get("limit"); got != "5" {
			t.Errorf("limit = %q", got)
		}
		if got := q.Get("offset"); got != "10" {
			t.Errorf("offset = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"memories":[],"total":0,"limit":5,"offset":10}`)); err != nil {
			t.Fatalf("Failed to write response: %v", err)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.List(context.Background(), ListInput{
		Limit:      5,
		Offset:     10,
		Context:    "project/billing & invoicing",
		MemoryType: MemoryTypeEpisodic,
	})
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}
}

func TestFetchContextSendsTopicAsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/context-packet" {
			t.Errorf("Expected /v1/context-packet, got %s", r.URL.Path)
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("Failed to decode request body: %v", err)
		}
		if body["query"] != "onboarding flow" {
			t.Errorf("query = %v", body["query"])
		}
		if body["maxTokens"] != float64(4000) {
			t.Errorf("maxTokens = %v, want default 4000", body["maxTokens"])
		}

		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`{"context":"## Onboarding\n...","memoryCount":4}`)); err != nil {
			t.Fatalf("Failed to write response: %v", err)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	packet, err := client.FetchContext(context.Background(), ContextInput{Topic: "onboarding flow"})
	if err != nil {
		t.Fatalf("FetchContext() returned error: %v", err)
	}
	if packet.MemoryCount != 4 {
		t.Errorf("FetchContext() memoryCount = %d", packet.MemoryCount)
	}
}
