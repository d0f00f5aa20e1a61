package videosearch

import "testing"

func TestNoopSearcherNeverFinds(t *testing.T) {
	url, found, err := NoopSearcher{}.Search(t.Context(), "welding basics tutorial")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if found || url != "" {
		t.Errorf("noop searcher must report not-found, got (%q, %v)", url, found)
	}
}

func TestNewYouTubeSearcher_NoKeyIsNoop(t *testing.T) {
	s, err := NewYouTubeSearcher(t.Context(), "")
	if err != nil {
		t.Fatalf("expected no error without key, got: %v", err)
	}
	if _, ok := s.(NoopSearcher); !ok {
		t.Errorf("expected NoopSearcher without key, got %T", s)
	}
}

func TestWatchURL(t *testing.T) {
	got := WatchURL("dQw4w9WgXcQ")
	want := "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
