package videosearch

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// YouTubeSearcher implements Searcher against the YouTube Data API.
type YouTubeSearcher struct {
	svc *youtube.Service
}

// NewYouTubeSearcher creates a searcher backed by the YouTube Data API.
// An empty apiKey yields a NoopSearcher so enrichment quietly resolves to
// "not found" instead of failing generation.
func NewYouTubeSearcher(ctx context.Context, apiKey string) (Searcher, error) {
	if apiKey == "" {
		return NoopSearcher{}, nil
	}

	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return &YouTubeSearcher{svc: svc}, nil
}

func (s *YouTubeSearcher) Search(ctx context.Context, query string) (string, bool, error) {
	call := s.svc.Search.List([]string{"id"}).
		Context(ctx).
		Q(query).
		Type("video").
		VideoEmbeddable("true").
		MaxResults(1)

	resp, err := call.Do()
	if err != nil {
		return "", false, fmt.Errorf("youtube search: %w", err)
	}

	for _, item := range resp.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			return WatchURL(item.Id.VideoId), true, nil
		}
	}
	return "", false, nil
}

// WatchURL builds the playable reference the mobile client's player
// understands.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
