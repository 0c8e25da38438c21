package vxmcp

import (
	"time"
)

// MemoryType tags a stored record with the kind of memory it represents.
type MemoryType string

const (
	MemoryTypeSemantic   MemoryType = "SEMANTIC"
	MemoryTypeEpisodic   MemoryType = "EPISODIC"
	MemoryTypeProcedural MemoryType = "PROCEDURAL"
)

// valid reports whether the tag is one of the known memory kinds.
func (t MemoryType) valid() bool {
	switch t {
	case MemoryTypeSemantic, MemoryTypeEpisodic, MemoryTypeProcedural:
		return true
	}
	return false
}

// Memory is the domain record returned by the remote service. The client
// never constructs or mutates these; it only deserializes them.
type Memory struct {
	ID         string         `json:"id"`
	Content    string         `json:"content"`
	Context    string         `json:"context,omitempty"`
	MemoryType MemoryType     `json:"memoryType"`
	Importance *float64       `json:"importance,omitempty"`
	Source     string         `json:"source,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  *time.Time     `json:"updatedAt,omitempty"`
}

// StoreInput describes a new record to persist. Content is required;
// MemoryType defaults to SEMANTIC and Importance to 0.5 when absent.
type StoreInput struct {
	Content    string
	Context    string
	MemoryType MemoryType
	Importance *float64
	Source     string
}

// UpdateInput is a partial update for an existing record. ID is required and
// at least one other field must be set.
type UpdateInput struct {
	ID         string
	Content    *string
	Context    *string
	MemoryType *MemoryType
	Importance *float64
}

// QueryInput describes a semantic search. Query is required; Limit defaults
// to 10. Context and MemoryType are optional filters.
type QueryInput struct {
	Query      string
	Limit      int
	Context    string
	MemoryType MemoryType
}

// ListInput describes a filtered listing. All fields are optional; the
// service applies limit 20 / offset 0 when unset.
type ListInput struct {
	Limit      int
	Offset     int
	Context    string
	MemoryType MemoryType
}

// ContextInput describes a topic-driven context assembly request. Topic is
// required; MaxTokens defaults to 4000.
type ContextInput struct {
	Topic     string
	MaxTokens int
}

// QueryResult is the response of a semantic search.
type QueryResult struct {
	Memories []Memory `json:"memories"`
	Total    int      `json:"total"`
}

// ListResult is one page of a filtered listing.
type ListResult struct {
	Memories []Memory `json:"memories"`
	Total    int      `json:"total"`
	Limit    int      `json:"limit"`
	Offset   int      `json:"offset"`
}

// ContextPacket is assembled context text plus the number of records that
// contributed to it.
type ContextPacket struct {
	Context     string `json:"context"`
	MemoryCount int    `json:"memoryCount"`
}

// HealthStatus reports service reachability and round-trip latency. Error
// holds the classified failure message when Healthy is false.
type HealthStatus struct {
	Healthy bool
	Latency time.Duration
	Error   string
}

// Option represents a configuration option.
type Option func(*Client)
