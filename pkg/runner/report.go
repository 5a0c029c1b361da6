package runner

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Report is the outcome of one Classify call. Both word lists are sorted
// by length, then lexicographically.
type Report struct {
	Automaton string
	Accepted  []string
	Rejected  []string
	CacheHits int
	Duration  time.Duration
}

// Total returns the number of distinct words classified.
func (r *Report) Total() int {
	return len(r.Accepted) + len(r.Rejected)
}

func (r *Report) sort() {
	slices.SortFunc(r.Accepted, shortlex)
	slices.SortFunc(r.Rejected, shortlex)
}

func shortlex(a, b string) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// DisplayWord renders the empty word as ε.
func DisplayWord(w string) string {
	if w == "" {
		return "ε"
	}
	return w
}

// Text renders the report as plain lines.
func (r *Report) Text() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Words accepted by %s (%d):\n", r.Automaton, len(r.Accepted))
	fmt.Fprintf(&sb, "  %s\n", joinWords(r.Accepted, " "))
	fmt.Fprintf(&sb, "Words rejected by %s (%d):\n", r.Automaton, len(r.Rejected))
	fmt.Fprintf(&sb, "  %s\n", joinWords(r.Rejected, " "))
	return sb.String()
}

// Markdown renders the report for a terminal renderer.
func (r *Report) Markdown() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", r.Automaton)
	fmt.Fprintf(&sb, "%d words: **%d accepted**, %d rejected", r.Total(), len(r.Accepted), len(r.Rejected))
	if r.CacheHits > 0 {
		fmt.Fprintf(&sb, ", %d from cache", r.CacheHits)
	}
	sb.WriteString(".\n\n")

	section := func(title string, words []string) {
		fmt.Fprintf(&sb, "## %s\n\n", title)
		if len(words) == 0 {
			sb.WriteString("_none_\n\n")
			return
		}
		quoted := make([]string, len(words))
		for i, w := range words {
			quoted[i] = "`" + DisplayWord(w) + "`"
		}
		sb.WriteString(strings.Join(quoted, " "))
		sb.WriteString("\n\n")
	}
	section("Accepted", r.Accepted)
	section("Rejected", r.Rejected)
	return sb.String()
}

func joinWords(words []string, sep string) string {
	if len(words) == 0 {
		return "(none)"
	}
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = DisplayWord(w)
	}
	return strings.Join(out, sep)
}
