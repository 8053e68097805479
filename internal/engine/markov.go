package engine

// #region chain

// Chain maps each token to the tokens observed immediately after it, in
// observation order, duplicates included. Duplicate successors bias the
// walk toward frequent follow-ups.
type Chain map[string][]string

// BuildChain builds a first-order successor chain from a flat token
// sequence: every adjacent pair contributes one link.
func BuildChain(tokens []string) Chain {
	chain := make(Chain)
	for i := 0; i+1 < len(tokens); i++ {
		chain[tokens[i]] = append(chain[tokens[i]], tokens[i+1])
	}
	return chain
}

// #endregion chain

// #region selector

// Selector picks which successor a walk step follows. Injectable so the
// deterministic default can later be swapped for a weighted-random pick
// without touching the walk itself.
type Selector interface {
	// Pick returns an index into successors for the given step.
	// successors is never empty.
	Pick(step int, successors []string) int
}

// RotatingSelector cycles through successors by step index. Fully
// deterministic: the same chain and start always yield the same walk.
type RotatingSelector struct{}

// Pick returns step modulo the successor count.
func (RotatingSelector) Pick(step int, successors []string) int {
	return step % len(successors)
}

// #endregion selector

// #region walk

// Walk follows the chain from start for up to steps transitions, collecting
// each newly seen token. The walk may revisit tokens internally but the
// result never contains duplicates. A token with no successors ends the
// walk early.
func Walk(chain Chain, start string, steps int, sel Selector) []string {
	result := []string{start}
	seen := map[string]bool{start: true}
	current := start

	for i := 0; i < steps; i++ {
		nexts, ok := chain[current]
		if !ok {
			break
		}
		pick := nexts[sel.Pick(i, nexts)]
		current = pick
		if !seen[pick] {
			seen[pick] = true
			result = append(result, pick)
		}
	}

	return result
}

// #endregion walk
