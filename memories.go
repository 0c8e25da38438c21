package vxmcp

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Wire shapes. Field casing matches the service's JSON contract; update
// fields are pointers so unset fields stay off the wire.
type storeRequest struct {
	Content    string            `json:"content"`
	Context    string            `json:"context,omitempty"`
	MemoryType MemoryType        `json:"memoryType"`
	Importance float64           `json:"importance"`
	Source     string            `json:"source,omitempty"`
	Metadata   map[string]string `json:"metadata"`
}

type updateRequest struct {
	Content    *string     `json:"content,omitempty"`
	Context    *string     `json:"context,omitempty"`
	MemoryType *MemoryType `json:"memoryType,omitempty"`
	Importance *float64    `json:"importance,omitempty"`
}

type queryRequest struct {
	Query      string     `json:"query"`
	Limit      int        `json:"limit"`
	Context    string     `json:"context,omitempty"`
	MemoryType MemoryType `json:"memoryType,omitempty"`
}

type contextRequest struct {
	Query     string `json:"query"`
	MaxTokens int    `json:"maxTokens"`
}

// Store persists a new memory record and returns it as stored by the
// service, identifier and timestamps included.
func (c *Client) Store(ctx context.Context, in StoreInput) (*Memory, error) {
	in, cerr := validateStore(in)
	if cerr != nil {
		return nil, cerr
	}

	source := in.Source
	if source == "" {
		source = c.source
	}

	body := storeRequest{
		Content:    in.Content,
		Context:    in.Context,
		MemoryType: in.MemoryType,
		Importance: *in.Importance,
		Source:     source,
		Metadata: map[string]string{
			"source":  c.source,
			"client":  clientName,
			"version": Version,
		},
	}

	var mem Memory
	if err := c.do(ctx, http.MethodPost, "/v1/memories", body, &mem); err != nil {
		return nil, err
	}
	return &mem, nil
}

// Update applies a partial update to an existing record. Only the fields set
// on the input are sent.
func (c *Client) Update(ctx context.Context, in UpdateInput) (*Memory, error) {
	in, cerr := validateUpdate(in)
	if cerr != nil {
		return nil, cerr
	}

	body := updateRequest{
		Content:    in.Content,
		Context:    in.Context,
		MemoryType: in.MemoryType,
		Importance: in.Importance,
	}

	var mem Memory
	if err := c.do(ctx, http.MethodPatch, "/v1/memories/"+url.PathEscape(in.ID), body, &mem); err != nil {
		return nil, err
	}
	return &mem, nil
}

// Delete removes a record. The service answers deletions with an empty body.
func (c *Client) Delete(ctx context.Context, id string) error {
	if cerr := validateDelete(id); cerr != nil {
		return cerr
	}
	return c.do(ctx, http.MethodDelete, "/v1/memories/"+url.PathEscape(id), nil, nil)
}

// Query runs a semantic search over stored memories. Ranking is entirely the
// service's concern; the client only relays filters.
func (c *Client) Query(ctx context.Context, in QueryInput) (*QueryResult, error) {
	in, cerr := validateQuery(in)
	if cerr != nil {
		return nil, cerr
	}

	body := queryRequest{
		Query:      in.Query,
		Limit:      in.Limit,
		Context:    in.Context,
		MemoryType: in.MemoryType,
	}

	var result QueryResult
	if err := c.do(ctx, http.MethodPost, "/v1/query", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// List returns a filtered page of memories. Only explicitly set parameters
// are encoded, so an unfiltered listing carries no query string at all.
func (c *Client) List(ctx context.Context, in ListInput) (*ListResult, error) {
	in, cerr := validateList(in)
	if cerr != nil {
		return nil, cerr
	}

	params := url.Values{}
	if in.Limit > 0 {
		params.Set("limit", strconv.Itoa(in.Limit))
	}
	if in.Offset > 0 {
		params.Set("offset", strconv.Itoa(in.Offset))
	}
	if in.Context != "" {
		params.Set("context", in.Context)
	}
	if in.MemoryType != "" {
		params.Set("memoryType", string(in.MemoryType))
	}

	path := "/v1/memories"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var result ListResult
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FetchContext assembles a context packet for a topic within a token budget.
// The topic travels as the packet query.
func (c *Client) FetchContext(ctx context.Context, in ContextInput) (*ContextPacket, error) {
	in, cerr := validateContext(in)
	if cerr != nil {
		return nil, cerr
	}

	body := contextRequest{
		Query:     in.Topic,
		MaxTokens: in.MaxTokens,
	}

	var packet ContextPacket
	if err := c.do(ctx, http.MethodPost, "/v1/context-packet", body, &packet); err != nil {
		return nil, err
	}
	return &packet, nil
}
