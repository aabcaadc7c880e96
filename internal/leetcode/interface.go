package leetcode

import "context"

// ClientInterface defines the interface for LeetCode API operations.
// This interface enables testability by allowing mock implementations.
type ClientInterface interface {
	FetchCounts(ctx context.Context, username string) (*Counts, error)
}

// Ensure Client implements the interface
var _ ClientInterface = (*Client)(nil)
