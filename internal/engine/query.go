package engine

// #region query

// fallbackQuery is returned when there is no usable history to learn from.
const fallbackQuery = "trending"

// GenerateQuery derives up to wordCount search tokens from the watch
// history. Half the budget (rounded down) goes to tf-idf ranked tokens, the
// rest to a chain walk seeded from the top ranked token, so an odd total
// leaves the larger share to the walk. Ranked tokens win on collision. The
// result may be shorter than wordCount when the two sources produce fewer
// unique tokens.
func (e *Engine) GenerateQuery(wordCount int) []string {
	if len(e.history) == 0 {
		return []string{fallbackQuery}
	}

	words := e.ExtractWords()
	if len(words) == 0 {
		return []string{fallbackQuery}
	}

	half := wordCount / 2

	ranked := e.TFIDFTopWords(half)

	chain := BuildChain(words)
	start := words[0]
	if len(ranked) > 0 {
		start = ranked[0]
	}
	walked := Walk(chain, start, half, e.selector)

	// Merge: ranked first, then walk tokens, first-seen wins.
	result := make([]string, 0, wordCount)
	seen := make(map[string]bool)
	for _, w := range ranked {
		if !seen[w] {
			seen[w] = true
			result = append(result, w)
		}
	}
	for _, w := range walked {
		if !seen[w] {
			seen[w] = true
			result = append(result, w)
		}
	}

	if len(result) > wordCount {
		result = result[:wordCount]
	}
	return result
}

// #endregion query
