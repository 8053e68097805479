package replay

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"watchloop/internal/watch"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a recorded watch session.
type Fixture struct {
	Description           string          `json:"description"`
	Hour                  int             `json:"hour"`
	ParentOverrideMinutes *float64        `json:"parent_override_minutes,omitempty"`
	QueryWordCount        int             `json:"query_word_count"`
	Watches               []FixtureWatch  `json:"watches"`
	Expected              FixtureExpected `json:"expected"`
}

// FixtureWatch mirrors watch.Watch with JSON tags.
type FixtureWatch struct {
	WatchTime   float64  `json:"watch_time"`
	VideoLength float64  `json:"video_length"`
	VideoName   string   `json:"video_name"`
	Hashtags    []string `json:"hashtags"`
	Liked       bool     `json:"liked"`
	Disliked    bool     `json:"disliked"`
}

// FixtureExpected captures the checkable outcome of a session. Exact query
// contents are not asserted because tf-idf tie order is not guaranteed;
// instead the lead token, the token budget, and forbidden tokens are.
type FixtureExpected struct {
	ShouldBreak     bool     `json:"should_break"`
	LeadToken       string   `json:"lead_token,omitempty"`
	MaxQueryTokens  int      `json:"max_query_tokens"`
	ForbiddenTokens []string `json:"forbidden_tokens,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON session fixture.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToWatch converts a fixture entry to a domain watch with the given
// order-of-occurrence counter.
func (fw *FixtureWatch) ToWatch(watchedAt uint64) watch.Watch {
	return watch.Watch{
		WatchTime:   fw.WatchTime,
		VideoLength: fw.VideoLength,
		VideoName:   fw.VideoName,
		Hashtags:    fw.Hashtags,
		Liked:       fw.Liked,
		Disliked:    fw.Disliked,
		WatchedAt:   watchedAt,
	}
}

// #endregion fixture-loader
