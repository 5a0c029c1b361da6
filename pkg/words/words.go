// Package words generates input words for automata: uniform random words,
// batches of distinct random words, and exhaustive enumeration for tests.
package words

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// ErrBatchTooLarge is returned when more distinct words are requested than
// exist for the given alphabet and length range.
var ErrBatchTooLarge = errors.New("not enough distinct words")

// Random returns a word of n letters, each drawn uniformly and independently
// from alphabet. A nil rng uses the package-level source.
func Random[L any](alphabet []L, n int, rng *rand.Rand) []L {
	if n <= 0 || len(alphabet) == 0 {
		return []L{}
	}
	pick := rand.IntN
	if rng != nil {
		pick = rng.IntN
	}
	word := make([]L, n)
	for i := range word {
		word[i] = alphabet[pick(len(alphabet))]
	}
	return word
}

// Batch returns count distinct words over alphabet. Each word's length is
// drawn uniformly from [minLen, maxLen], then its letters with Random.
// Words are returned in the order they were first drawn.
func Batch(alphabet []rune, count, minLen, maxLen int, rng *rand.Rand) ([]string, error) {
	if minLen < 0 || maxLen < minLen {
		return nil, fmt.Errorf("invalid length range [%d, %d]", minLen, maxLen)
	}
	if count < 0 {
		return nil, fmt.Errorf("invalid word count %d", count)
	}
	if available := Count(len(dedupe(alphabet)), minLen, maxLen); count > available {
		return nil, fmt.Errorf("%w: requested %d, only %d over %d letters with length in [%d, %d]",
			ErrBatchTooLarge, count, available, len(alphabet), minLen, maxLen)
	}

	pickLen := func() int { return minLen + rand.IntN(maxLen-minLen+1) }
	if rng != nil {
		pickLen = func() int { return minLen + rng.IntN(maxLen-minLen+1) }
	}

	seen := make(map[string]struct{}, count)
	out := make([]string, 0, count)
	for len(out) < count {
		w := string(Random(alphabet, pickLen(), rng))
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out, nil
}

// Count returns how many words of length in [minLen, maxLen] exist over an
// alphabet of size letters, saturating at math.MaxInt.
func Count(letters, minLen, maxLen int) int {
	total := 0
	power := 1
	for k := 0; k <= maxLen; k++ {
		if k >= minLen {
			if total > math.MaxInt-power {
				return math.MaxInt
			}
			total += power
		}
		if letters == 0 {
			power = 0
			continue
		}
		if power > math.MaxInt/letters {
			// Every longer length adds at least this much.
			if k < maxLen {
				return math.MaxInt
			}
			break
		}
		power *= letters
	}
	return total
}

// Enumerate returns every word over alphabet of length at most maxLen,
// shortest first and in alphabet order within a length.
func Enumerate[L any](alphabet []L, maxLen int) [][]L {
	out := [][]L{{}}
	frontier := [][]L{{}}
	for k := 1; k <= maxLen; k++ {
		next := make([][]L, 0, len(frontier)*len(alphabet))
		for _, prefix := range frontier {
			for _, l := range alphabet {
				w := make([]L, len(prefix)+1)
				copy(w, prefix)
				w[len(prefix)] = l
				next = append(next, w)
			}
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}

func dedupe(alphabet []rune) []rune {
	seen := make(map[rune]struct{}, len(alphabet))
	out := make([]rune, 0, len(alphabet))
	for _, r := range alphabet {
		if _, ok := seen[r]; !ok {
			seen[r] = struct{}{}
			out = append(out, r)
		}
	}
	return out
}
