package guardrail

import "watchloop/internal/watch"

// #region guardrail

// Guardrail tracks session engagement and decides when the viewer should
// take a break. One instance per viewing session; not safe for concurrent
// use, single-writer confinement is the caller's job.
type Guardrail struct {
	attentionScores []float64
	sessionSecs     float64
	currentHour     int      // 0-23, fixed at construction
	parentOverride  *float64 // forced break length in minutes, nil = unset
	config          Config
}

// New creates a guardrail for a session starting at the given hour of day.
func New(hour int, config Config) *Guardrail {
	return &Guardrail{currentHour: hour, config: config}
}

// SetParentOverride forces the break length to the given minutes.
// The override always wins over the hour-based formula, no clamping.
func (g *Guardrail) SetParentOverride(minutes float64) {
	g.parentOverride = &minutes
}

// #endregion guardrail

// #region record

// Record accounts one watch into the session. Watches under the qualifying
// threshold are treated as misclicks or scroll-pasts and discarded entirely:
// neither the attention history nor the session time changes.
func (g *Guardrail) Record(w watch.Watch) {
	if w.WatchTime < g.config.QualifyingSecs {
		return
	}
	g.attentionScores = append(g.attentionScores, w.AttentionRatio())
	g.sessionSecs += w.WatchTime
}

// #endregion record

// #region averages

// AvgAttention returns the mean of all recorded attention ratios.
// With no samples yet it returns 1.0 — assume fine until proven otherwise.
func (g *Guardrail) AvgAttention() float64 {
	if len(g.attentionScores) == 0 {
		return 1.0
	}
	var sum float64
	for _, s := range g.attentionScores {
		sum += s
	}
	return sum / float64(len(g.attentionScores))
}

// SampleCount returns the number of qualifying watches recorded so far.
func (g *Guardrail) SampleCount() int {
	return len(g.attentionScores)
}

// SessionMinutes returns the accumulated session time in minutes.
func (g *Guardrail) SessionMinutes() float64 {
	return g.sessionSecs / 60.0
}

// #endregion averages

// #region break-policy

// BreakLengthMinutes returns how long the next break should be. A parent
// override is returned verbatim; otherwise the base length scales linearly
// with the hour of day, so late-night breaks come out slightly longer.
func (g *Guardrail) BreakLengthMinutes() float64 {
	if g.parentOverride != nil {
		return *g.parentOverride
	}
	hourScale := float64(g.currentHour) / 24.0
	return g.config.BaseBreakMinutes + g.config.BaseBreakMinutes*hourScale
}

// ShouldBreak reports whether the viewer should be shown a break prompt.
// Two independent triggers: the hard session ceiling, and sustained low
// attention past the doomscroll threshold. Both comparisons are strict, so
// sitting exactly on a boundary does not trigger.
func (g *Guardrail) ShouldBreak() bool {
	sessionMin := g.sessionSecs / 60.0

	if sessionMin > g.config.HardLimitMinutes {
		return true
	}
	if g.AvgAttention() < g.config.AttentionFloor && sessionMin > g.config.DoomscrollMinutes {
		return true
	}
	return false
}

// #endregion break-policy

// #region reset

// ResetDaily clears the attention history for a new day. Session time and
// the parent override are deliberately left untouched.
func (g *Guardrail) ResetDaily() {
	g.attentionScores = nil
}

// #endregion reset
