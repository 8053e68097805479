package replay

import (
	"strconv"

	"watchloop/internal/engine"
	"watchloop/internal/guardrail"
)

// #region types

// defaultQueryWordCount is used when a fixture leaves the budget unset.
const defaultQueryWordCount = 8

// Step captures guardrail state after one watch was fed in.
type Step struct {
	WatchedAt      uint64
	Qualified      bool // false when the watch fell under the noise threshold
	AvgAttention   float64
	SessionMinutes float64
	ShouldBreak    bool
}

// Result is the outcome of replaying a full session.
type Result struct {
	Steps          []Step
	Query          []string
	ShouldBreak    bool
	BreakMinutes   float64
	AvgAttention   float64
	SessionMinutes float64
	Exclusions     []string
}

// #endregion types

// #region run

// Run replays a recorded session: each watch is fed to both the guardrail
// and the feed engine in order, exactly as a live driver would, then the
// final query and break verdict are captured. Operates entirely in-memory.
func Run(f *Fixture) Result {
	g := guardrail.New(f.Hour, guardrail.DefaultConfig())
	if f.ParentOverrideMinutes != nil {
		g.SetParentOverride(*f.ParentOverrideMinutes)
	}
	e := engine.New()

	wordCount := f.QueryWordCount
	if wordCount == 0 {
		wordCount = defaultQueryWordCount
	}

	steps := make([]Step, 0, len(f.Watches))
	for i := range f.Watches {
		w := f.Watches[i].ToWatch(uint64(i + 1))

		before := g.SampleCount()
		g.Record(w)
		e.AddWatch(w)

		steps = append(steps, Step{
			WatchedAt:      w.WatchedAt,
			Qualified:      g.SampleCount() > before,
			AvgAttention:   g.AvgAttention(),
			SessionMinutes: g.SessionMinutes(),
			ShouldBreak:    g.ShouldBreak(),
		})
	}

	return Result{
		Steps:          steps,
		Query:          e.GenerateQuery(wordCount),
		ShouldBreak:    g.ShouldBreak(),
		BreakMinutes:   g.BreakLengthMinutes(),
		AvgAttention:   g.AvgAttention(),
		SessionMinutes: g.SessionMinutes(),
		Exclusions:     e.Exclusions(),
	}
}

// #endregion run

// #region check

// Divergence describes one mismatch between a result and its expectation.
type Divergence struct {
	Field string
	Want  string
	Got   string
}

// Check compares a replay result against the fixture's expectations.
// Returns nil when everything matches.
func Check(f *Fixture, r Result) []Divergence {
	var divs []Divergence

	if r.ShouldBreak != f.Expected.ShouldBreak {
		divs = append(divs, Divergence{
			Field: "should_break",
			Want:  boolString(f.Expected.ShouldBreak),
			Got:   boolString(r.ShouldBreak),
		})
	}
	if f.Expected.LeadToken != "" {
		got := ""
		if len(r.Query) > 0 {
			got = r.Query[0]
		}
		if got != f.Expected.LeadToken {
			divs = append(divs, Divergence{Field: "lead_token", Want: f.Expected.LeadToken, Got: got})
		}
	}
	if f.Expected.MaxQueryTokens > 0 && len(r.Query) > f.Expected.MaxQueryTokens {
		divs = append(divs, Divergence{
			Field: "max_query_tokens",
			Want:  strconv.Itoa(f.Expected.MaxQueryTokens),
			Got:   strconv.Itoa(len(r.Query)),
		})
	}
	forbidden := make(map[string]bool, len(f.Expected.ForbiddenTokens))
	for _, token := range f.Expected.ForbiddenTokens {
		forbidden[token] = true
	}
	for _, token := range r.Query {
		if forbidden[token] {
			divs = append(divs, Divergence{Field: "forbidden_token", Want: "absent", Got: token})
		}
	}

	return divs
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// #endregion check
