package domain

import (
	"strings"
	"time"
)

// DeletionResult acknowledges a destructive tool call.
type DeletionResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

func deleted(id string) DeletionResult {
	return DeletionResult{ID: id, Deleted: true}
}

// formatTimestamp renders a timestamp as RFC 3339. The zero value becomes
// "" so omitempty drops the field from results.
func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// normalizeEnum canonicalizes a caller-supplied enum value. The Quarry API
// only accepts lowercase enum tokens; MCP clients routinely send "Done" or
// "IN_PROGRESS".
func normalizeEnum(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func normalizeEnumPtr(value *string) *string {
	if value == nil {
		return nil
	}
	normalized := normalizeEnum(*value)
	return &normalized
}
