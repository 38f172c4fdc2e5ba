package btree

import (
	"math/rand"
	"slices"
	"testing"
)

func drain[T any](c *Cursor[T]) []T {
	var out []T
	for key, ok := c.Next(); ok; key, ok = c.Next() {
		out = append(out, key)
	}
	return out
}

func TestCursorOnEmptyTree(t *testing.T) {
	tree := newIntTree(t, 2)
	if key, ok := tree.Cursor().Next(); ok {
		t.Fatalf("expected exhausted cursor, got %d", key)
	}
}

func TestCursorMatchesInOrderWalk(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, degree := range []int{2, 3, 5} {
		tree := newIntTree(t, degree)
		if err := tree.Build(slices.Values(r.Perm(300))); err != nil {
			t.Fatalf("Build failed: %v", err)
		}
		got := drain(tree.Cursor())
		want := slices.Collect(tree.All())
		if !slices.Equal(got, want) {
			t.Fatalf("degree %d: cursor and walk disagree", degree)
		}
		if !slices.Equal(got, intRange(0, 300)) {
			t.Fatalf("degree %d: cursor output not ascending", degree)
		}
	}
}

func TestCursorsAreIndependent(t *testing.T) {
	tree := newIntTree(t, 2)
	if err := tree.Build(slices.Values([]int{3, 1, 2})); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	c1 := tree.Cursor()
	if key, _ := c1.Next(); key != 1 {
		t.Fatalf("expected 1, got %d", key)
	}
	if got := drain(tree.Cursor()); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("fresh cursor must restart, got %v", got)
	}
	if got := drain(c1); !slices.Equal(got, []int{2, 3}) {
		t.Fatalf("first cursor must continue, got %v", got)
	}
}
