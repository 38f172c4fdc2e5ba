package btree

import (
	"slices"
	"strings"
	"testing"
)

func TestDotOutput(t *testing.T) {
	tree := newIntTree(t, 2)
	if err := tree.Build(slices.Values([]int{1, 2, 3, 4})); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	var b strings.Builder
	if err := tree.Dot(&b); err != nil {
		t.Fatalf("Dot failed: %v", err)
	}
	out := b.String()
	for _, want := range []string{
		"strict digraph {",
		`"1" [label="2"];`,
		`"3" [label="3|4",style=filled,fillcolor=lightgray];`,
		`"1" -> "2";`,
		`"1" -> "3";`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected DOT output to contain %q, got\n%s", want, out)
		}
	}
}

func TestDotEscapesRecordLabels(t *testing.T) {
	tree, err := NewOrdered[string](2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tree.Build(slices.Values([]string{"a|b", "{c}"})); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	var b strings.Builder
	if err := tree.Dot(&b); err != nil {
		t.Fatalf("Dot failed: %v", err)
	}
	if !strings.Contains(b.String(), `a\|b|\{c\}`) {
		t.Fatalf("record labels not escaped:\n%s", b.String())
	}
}
