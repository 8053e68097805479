package engine

import (
	"sort"
	"strings"

	"watchloop/internal/watch"
)

// #region engine

// Engine owns the watch history and derives search queries from it.
// History and the exclusion set grow monotonically for the engine's life;
// there is no removal. Not safe for concurrent use.
type Engine struct {
	history    []watch.Watch
	exclusions map[string]struct{}
	selector   Selector
}

// New creates an empty engine with the deterministic rotating walk selector.
func New() *Engine {
	return NewWithSelector(RotatingSelector{})
}

// NewWithSelector creates an empty engine using the given walk selector.
func NewWithSelector(sel Selector) *Engine {
	return &Engine{
		exclusions: make(map[string]struct{}),
		selector:   sel,
	}
}

// #endregion engine

// #region ingestion

// AddWatch appends a watch to history. A disliked watch first feeds the
// exclusion set: every lowercased hashtag and title word is blocked
// permanently from downstream extraction and scoring. The watch itself
// stays in history for record-keeping either way.
func (e *Engine) AddWatch(w watch.Watch) {
	if w.Disliked {
		for _, tag := range w.Hashtags {
			e.exclusions[strings.ToLower(tag)] = struct{}{}
		}
		for _, word := range strings.Fields(strings.ToLower(w.VideoName)) {
			e.exclusions[word] = struct{}{}
		}
	}
	e.history = append(e.history, w)
}

// excluded reports whether a lowercased token is on the block list.
func (e *Engine) excluded(token string) bool {
	_, ok := e.exclusions[token]
	return ok
}

// #endregion ingestion

// #region diagnostics

// Exclusions returns a sorted snapshot of the exclusion set for display.
func (e *Engine) Exclusions() []string {
	out := make([]string, 0, len(e.exclusions))
	for token := range e.exclusions {
		out = append(out, token)
	}
	sort.Strings(out)
	return out
}

// HistoryLen returns the number of watches ingested so far.
func (e *Engine) HistoryLen() int {
	return len(e.history)
}

// #endregion diagnostics
