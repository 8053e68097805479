package engine

import (
	"reflect"
	"testing"

	"watchloop/internal/watch"
)

func TestAddWatchKeepsDislikedInHistory(t *testing.T) {
	e := New()
	e.AddWatch(watch.Watch{
		VideoName: "Clickbait garbage",
		Hashtags:  []string{"shocking"},
		Disliked:  true,
		WatchedAt: 1,
	})

	if e.HistoryLen() != 1 {
		t.Fatalf("expected disliked watch kept in history, got %d entries", e.HistoryLen())
	}
}

func TestAddWatchDislikedFeedsExclusions(t *testing.T) {
	e := New()
	e.AddWatch(watch.Watch{
		VideoName: "Clickbait garbage you wont believe",
		Hashtags:  []string{"shocking", "viral"},
		Disliked:  true,
		WatchedAt: 1,
	})

	want := []string{"believe", "clickbait", "garbage", "shocking", "viral", "wont", "you"}
	if got := e.Exclusions(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected exclusions %v, got %v", want, got)
	}
}

func TestAddWatchLowercasesExclusions(t *testing.T) {
	e := New()
	e.AddWatch(watch.Watch{
		VideoName: "LOUD Title",
		Hashtags:  []string{"MixedCase"},
		Disliked:  true,
		WatchedAt: 1,
	})

	for _, token := range []string{"loud", "title", "mixedcase"} {
		if !e.excluded(token) {
			t.Fatalf("expected %q on exclusion list", token)
		}
	}
}

func TestAddWatchLikedDoesNotFeedExclusions(t *testing.T) {
	e := New()
	e.AddWatch(watch.Watch{
		VideoName: "How to make pasta",
		Hashtags:  []string{"cooking"},
		Liked:     true,
		WatchedAt: 1,
	})

	if got := e.Exclusions(); len(got) != 0 {
		t.Fatalf("expected empty exclusion list, got %v", got)
	}
}
