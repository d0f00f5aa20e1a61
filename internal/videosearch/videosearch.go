// Package videosearch resolves a free-text query to a playable video
// reference. Lookups are best effort: a missing API key or a failed call
// is a silent "not found", never an error the caller has to handle.
package videosearch

import "context"

// Searcher finds at most one playable video reference for a query.
type Searcher interface {
	// Search returns (url, true) when a matching video was found and
	// (_, false) otherwise. An error means the lookup itself failed;
	// callers are expected to treat that the same as not-found.
	Search(ctx context.Context, query string) (string, bool, error)
}

// NoopSearcher never finds anything. Used when no video API credential is
// configured.
type NoopSearcher struct{}

func (NoopSearcher) Search(context.Context, string) (string, bool, error) {
	return "", false, nil
}
