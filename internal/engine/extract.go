package engine

import (
	"math"
	"strings"
)

// #region extract

// maxRecencyRepeats is how many times the newest watch's tokens are emitted.
const maxRecencyRepeats = 3.0

// ExtractWords flattens the non-disliked history into a repeated token
// sequence. Repetition is the importance signal for the chain walk: newer
// watches repeat more (ceil(i/N * 3), so the oldest emits once and the
// newest up to three times), and a liked watch emits its hashtags twice per
// repeat. Exclusion-listed tokens are dropped; nothing is deduplicated here.
func (e *Engine) ExtractWords() []string {
	var words []string
	total := len(e.history)
	if total == 0 {
		return words
	}

	for i, w := range e.history {
		if w.Disliked {
			continue
		}

		weight := float64(i+1) / float64(total)
		repeats := int(math.Ceil(weight * maxRecencyRepeats))

		for r := 0; r < repeats; r++ {
			for _, word := range strings.Fields(strings.ToLower(w.VideoName)) {
				if !e.excluded(word) {
					words = append(words, word)
				}
			}
			for _, tag := range w.Hashtags {
				t := strings.ToLower(tag)
				if !e.excluded(t) {
					words = append(words, t)
				}
			}
			if w.Liked {
				for _, tag := range w.Hashtags {
					t := strings.ToLower(tag)
					if !e.excluded(t) {
						words = append(words, t)
					}
				}
			}
		}
	}

	return words
}

// #endregion extract
