package automaton

// Key addresses one entry of a transition relation.
type Key[S, L comparable] struct {
	State  S
	Letter L
}

// K builds a Key.
func K[S, L comparable](state S, letter L) Key[S, L] {
	return Key[S, L]{State: state, Letter: letter}
}

// Edge is one entry of a transition relation with its successors.
// A deterministic edge always has exactly one successor.
type Edge[S, L comparable] struct {
	From   S
	Letter L
	To     []S
}

// Step is one move taken by a traversal.
type Step[S, L comparable] struct {
	Position int
	From     S
	Letter   L
	To       S
}

// table is the transition relation, state -> letter -> V, where V is a
// single successor or a successor set. Entries are assigned once.
type table[S, L comparable, V any] map[S]map[L]V

func (t table[S, L, V]) lookup(s S, l L) (V, bool) {
	v, ok := t[s][l]
	return v, ok
}

func (t table[S, L, V]) has(s S, l L) bool {
	_, ok := t[s][l]
	return ok
}

func (t table[S, L, V]) set(s S, l L, v V) {
	row, ok := t[s]
	if !ok {
		row = make(map[L]V)
		t[s] = row
	}
	row[l] = v
}

func (t table[S, L, V]) size() int {
	n := 0
	for _, row := range t {
		n += len(row)
	}
	return n
}

// edges lists entries in skeleton order so output is stable.
func (t table[S, L, V]) edges(sk *Skeleton[S, L], successors func(V) []S) []Edge[S, L] {
	var out []Edge[S, L]
	for _, s := range sk.states {
		row := t[s]
		if len(row) == 0 {
			continue
		}
		for _, l := range sk.letters {
			v, ok := row[l]
			if !ok {
				continue
			}
			out = append(out, Edge[S, L]{From: s, Letter: l, To: successors(v)})
		}
	}
	return out
}
