package engine

import (
	"math"
	"sort"
	"strings"
)

// #region tfidf

// TFIDFTopWords scores every eligible token across the non-disliked history
// and returns the top n by descending score. Each watch is one document:
// its lowercased title words plus hashtags, unrepeated. A token's score is
// the sum over documents of (term frequency in that document * global
// inverse document frequency). Exclusion-listed tokens contribute nothing.
//
// Equal scores fall back to map iteration order, which is not guaranteed
// deterministic across runs; callers must not rely on tie order.
func (e *Engine) TFIDFTopWords(n int) []string {
	docs := e.documents()
	if len(docs) == 0 {
		return nil
	}

	totalDocs := float64(len(docs))

	// Document frequency per token.
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool, len(doc))
		for _, word := range doc {
			if !seen[word] {
				seen[word] = true
				df[word]++
			}
		}
	}

	scores := make(map[string]float64)
	for _, doc := range docs {
		docLen := float64(len(doc))

		tf := make(map[string]float64)
		for _, word := range doc {
			tf[word]++
		}

		for word, count := range tf {
			if e.excluded(word) {
				continue
			}
			idf := math.Log(totalDocs / float64(df[word]))
			scores[word] += (count / docLen) * idf
		}
	}

	type scored struct {
		word  string
		score float64
	}
	ranked := make([]scored, 0, len(scores))
	for word, score := range scores {
		ranked = append(ranked, scored{word, score})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	top := make([]string, 0, n)
	for _, s := range ranked[:n] {
		top = append(top, s.word)
	}
	return top
}

// documents builds one token slice per non-disliked watch: title words
// followed by hashtags, lowercased, no weighting.
func (e *Engine) documents() [][]string {
	var docs [][]string
	for _, w := range e.history {
		if w.Disliked {
			continue
		}
		doc := strings.Fields(strings.ToLower(w.VideoName))
		for _, tag := range w.Hashtags {
			doc = append(doc, strings.ToLower(tag))
		}
		docs = append(docs, doc)
	}
	return docs
}

// #endregion tfidf
