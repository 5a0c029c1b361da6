package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/automata/pkg/automaton"
)

// Automaton is the read side of a DFA or an NFA.
type Automaton[S, L comparable] interface {
	Initial() S
	States() []S
	IsAccepting(s S) bool
	Edges() []automaton.Edge[S, L]
}

// Overlay contains a run to highlight on the graph.
type Overlay[S, L comparable] struct {
	Steps []automaton.Step[S, L]
	Final S
	Stuck bool
}

// GenerateMermaid produces a Mermaid flowchart of the automaton.
// It applies semantic styling:
// - Accepting: (((Double circle)))
// - Other states: ((Circle))
// - Initial: entered by an arrow from an invisible start point
// Letters sharing a source and a target are drawn as one labelled arrow.
// It also applies overlay styles (Visited/Final/Stuck) if provided.
func GenerateMermaid[S, L comparable](a Automaton[S, L], overlay *Overlay[S, L]) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")
	sb.WriteString("    start_point[ ]\n")
	sb.WriteString("    style start_point fill:none,stroke:none\n")

	for _, s := range a.States() {
		opener, closer := "((", "))"
		if a.IsAccepting(s) {
			opener, closer = "(((", ")))"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", stateID(s), opener, escape(fmt.Sprint(s)), closer)
	}
	fmt.Fprintf(&sb, "    start_point --> %s\n", stateID(a.Initial()))

	type pair struct{ from, to S }
	var order []pair
	labels := make(map[pair][]string)
	for _, e := range a.Edges() {
		for _, to := range e.To {
			p := pair{e.From, to}
			if _, seen := labels[p]; !seen {
				order = append(order, p)
			}
			labels[p] = append(labels[p], letterLabel(e.Letter))
		}
	}
	for _, p := range order {
		label := escape(strings.Join(labels[p], ", "))
		fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", stateID(p.from), label, stateID(p.to))
	}

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast regardless of theme
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef final fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		sb.WriteString("    classDef stuck fill:#ffcdd2,stroke:#c62828,stroke-width:4px,color:#000;\n")

		visited := make(map[string]bool)
		mark := func(s S) {
			id := stateID(s)
			if !visited[id] {
				visited[id] = true
				fmt.Fprintf(&sb, "    class %s visited;\n", id)
			}
		}
		mark(a.Initial())
		for _, step := range overlay.Steps {
			mark(step.From)
			mark(step.To)
		}

		class := "final"
		if overlay.Stuck {
			class = "stuck"
		}
		fmt.Fprintf(&sb, "    class %s %s;\n", stateID(overlay.Final), class)
	}

	return sb.String()
}

func stateID(s any) string {
	return "q_" + sanitizeMermaidID(fmt.Sprint(s))
}

// letterLabel prints runes as characters rather than code points.
func letterLabel(l any) string {
	if r, ok := l.(rune); ok {
		return string(r)
	}
	return fmt.Sprint(l)
}

func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		}
		return '_'
	}, id)
}
