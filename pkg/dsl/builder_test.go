package dsl

import (
	"errors"
	"testing"

	"github.com/aretw0/automata/pkg/domain"
)

func TestBuilder_DemoNFA(t *testing.T) {
	n, err := NFA[int]("ab").
		Initial(1).
		Accept(0).
		State(1).On('a', 0, 1).On('b', 0).
		State(0).On('a', 1).
		Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	if n.Initial() != 1 {
		t.Errorf("Expected initial state 1, got %d", n.Initial())
	}

	cases := map[string]bool{"a": true, "b": true, "ab": true, "": false, "bb": false}
	for word, want := range cases {
		got, err := n.AcceptsExhaustive([]rune(word))
		if err != nil {
			t.Fatalf("AcceptsExhaustive(%q) failed: %v", word, err)
		}
		if got != want {
			t.Errorf("AcceptsExhaustive(%q) = %t, want %t", word, got, want)
		}
	}
}

func TestBuilder_RegistersTargets(t *testing.T) {
	n, err := NFA[string]("x").
		Initial("a").
		State("a").On('x', "b").
		Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if !n.HasState("b") {
		t.Error("Expected target 'b' to be registered")
	}
}

func TestBuilder_MergesTargets(t *testing.T) {
	n, err := NFA[int]("a").
		State(0).On('a', 0).On('a', 1, 0).
		Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if got := n.Successors(0, 'a'); len(got) != 2 {
		t.Errorf("Expected 2 successors, got %v", got)
	}
}

func TestBuilder_Errors(t *testing.T) {
	_, err := NFA[int]("ab").State(0).On('c', 0).Build()
	if !errors.Is(err, domain.ErrUnknownLetter) {
		t.Errorf("Expected ErrUnknownLetter, got %v", err)
	}

	_, err = NFA[int]("ab").State(0).On('a').Build()
	if !errors.Is(err, domain.ErrEmptySuccessorSet) {
		t.Errorf("Expected ErrEmptySuccessorSet, got %v", err)
	}
}
