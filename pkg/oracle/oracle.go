// Package oracle holds independent acceptance predicates used to cross-check
// automata. The automaton engine never depends on this package.
package oracle

import (
	"fmt"
	"strings"
)

// Predicate decides membership of a word in some language by any means
// other than the automaton under test.
type Predicate func(word string) bool

// Check asks p about word.
func Check(p Predicate, word string) bool {
	return p(word)
}

// Decider is the engine side of a cross-check.
type Decider func(word string) (bool, error)

// Mismatch is a word on which the engine and the predicate disagree.
type Mismatch struct {
	Word   string
	Engine bool
	Oracle bool
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%q: engine=%t oracle=%t", m.Word, m.Engine, m.Oracle)
}

// CrossCheck runs every word through decide and p and returns the words on
// which they disagree. It stops at the first engine error.
func CrossCheck(decide Decider, p Predicate, words []string) ([]Mismatch, error) {
	var out []Mismatch
	for _, w := range words {
		got, err := decide(w)
		if err != nil {
			return out, fmt.Errorf("engine failed on %q: %w", w, err)
		}
		if want := Check(p, w); got != want {
			out = append(out, Mismatch{Word: w, Engine: got, Oracle: want})
		}
	}
	return out, nil
}

// OddAThenOddB accepts a^m b^n with m and n both odd.
func OddAThenOddB(word string) bool {
	split := strings.IndexRune(word, 'b')
	if split < 0 {
		return false
	}
	as, bs := word[:split], word[split:]
	if strings.Trim(as, "a") != "" || strings.Trim(bs, "b") != "" {
		return false
	}
	return len(as)%2 == 1 && len(bs)%2 == 1
}

// OddCountOfA accepts words with an odd number of a's.
func OddCountOfA(word string) bool {
	return strings.Count(word, "a")%2 == 1
}

// NoBBNoTrailingBA accepts non-empty words that contain no "bb" and do not
// end in "ba".
func NoBBNoTrailingBA(word string) bool {
	return word != "" && !strings.Contains(word, "bb") && !strings.HasSuffix(word, "ba")
}
