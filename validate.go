package vxmcp

import (
	"fmt"
	"strings"
)

// Defaults applied during input validation. List paging defaults live on the
// service side so an unfiltered listing stays parameter-free on the wire.
const (
	defaultImportance    = 0.5
	defaultQueryLimit    = 10
	defaultContextTokens = 4000
)

func validationError(format string, args ...any) *ClientError {
	return newError(CodeValidation, fmt.Sprintf(format, args...), nil)
}

func validImportance(v float64) bool {
	return v >= 0 && v <= 1
}

// validateStore normalizes and checks a StoreInput. Content is trimmed and
// must be non-empty; MemoryType defaults to SEMANTIC and Importance to 0.5.
func validateStore(in StoreInput) (StoreInput, *ClientError) {
	in.Content = strings.TrimSpace(in.Content)
	if in.Content == "" {
		return in, validationError("content must be a non-empty string")
	}
	if in.MemoryType == "" {
		in.MemoryType = MemoryTypeSemantic
	} else if !in.MemoryType.valid() {
		return in, validationError("memoryType must be one of SEMANTIC, EPISODIC, PROCEDURAL, got %q", in.MemoryType)
	}
	if in.Importance == nil {
		v := defaultImportance
		in.Importance = &v
	} else if !validImportance(*in.Importance) {
		return in, validationError("importance must be between 0 and 1, got %v", *in.Importance)
	}
	return in, nil
}

// validateUpdate checks an UpdateInput: the identifier is required and at
// least one field must actually change.
func validateUpdate(in UpdateInput) (UpdateInput, *ClientError) {
	if strings.TrimSpace(in.ID) == "" {
		return in, validationError("id must be a non-empty string")
	}
	if in.Content == nil && in.Context == nil && in.MemoryType == nil && in.Importance == nil {
		return in, validationError("update requires at least one of content, context, memoryType or importance")
	}
	if in.MemoryType != nil && !in.MemoryType.valid() {
		return in, validationError("memoryType must be one of SEMANTIC, EPISODIC, PROCEDURAL, got %q", *in.MemoryType)
	}
	if in.Importance != nil && !validImportance(*in.Importance) {
		return in, validationError("importance must be between 0 and 1, got %v", *in.Importance)
	}
	return in, nil
}

// validateQuery checks a QueryInput and applies the default limit.
func validateQuery(in QueryInput) (QueryInput, *ClientError) {
	if strings.TrimSpace(in.Query) == "" {
		return in, validationError("query must be a non-empty string")
	}
	if in.Limit < 0 {
		return in, validationError("limit must be non-negative, got %d", in.Limit)
	}
	if in.Limit == 0 {
		in.Limit = defaultQueryLimit
	}
	if in.MemoryType != "" && !in.MemoryType.valid() {
		return in, validationError("memoryType must be one of SEMANTIC, EPISODIC, PROCEDURAL, got %q", in.MemoryType)
	}
	return in, nil
}

// validateList checks a ListInput. Unset paging fields are left for the
// service to default (limit 20, offset 0) so they never appear on the wire.
func validateList(in ListInput) (ListInput, *ClientError) {
	if in.Limit < 0 {
		return in, validationError("limit must be non-negative, got %d", in.Limit)
	}
	if in.Offset < 0 {
		return in, validationError("offset must be non-negative, got %d", in.Offset)
	}
	if in.MemoryType != "" && !in.MemoryType.valid() {
		return in, validationError("memoryType must be one of SEMANTIC, EPISODIC, PROCEDURAL, got %q", in.MemoryType)
	}
	return in, nil
}

// validateContext checks a ContextInput and applies the token budget default.
func validateContext(in ContextInput) (ContextInput, *ClientError) {
	if strings.TrimSpace(in.Topic) == "" {
		return in, validationError("topic must be a non-empty string")
	}
	if in.MaxTokens < 0 {
		return in, validationError("maxTokens must be non-negative, got %d", in.MaxTokens)
	}
	if in.MaxTokens == 0 {
		in.MaxTokens = defaultContextTokens
	}
	return in, nil
}

// validateDelete checks the record identifier for a deletion.
func validateDelete(id string) *ClientError {
	if strings.TrimSpace(id) == "" {
		return validationError("id must be a non-empty string")
	}
	return nil
}
