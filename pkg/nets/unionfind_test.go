package nets

import (
	"testing"
)

// TestUnionFind_SingletonFind checks unknown keys register as their own root
func TestUnionFind_SingletonFind(t *testing.T) {
	uf := NewUnionFind()
	if root := uf.Find("a"); root != "a" {
		t.Errorf("Find on fresh key = %s, want a", root)
	}
}

// TestUnionFind_UnionConnects checks unioned keys share a representative
func TestUnionFind_UnionConnects(t *testing.T) {
	uf := NewUnionFind()
	uf.Union("a", "b")
	uf.Union("b", "c")

	if !uf.Connected("a", "c") {
		t.Error("a and c must be connected through b")
	}
	if uf.Find("a") != uf.Find("c") {
		t.Error("a and c must share a representative")
	}
}

// TestUnionFind_DisjointSetsStaySeparate checks unrelated keys never merge
func TestUnionFind_DisjointSetsStaySeparate(t *testing.T) {
	uf := NewUnionFind()
	uf.Union("a", "b")
	uf.Union("x", "y")

	if uf.Connected("a", "x") {
		t.Error("disjoint sets must stay separate")
	}
}

// TestUnionFind_UnionIdempotent checks repeated unions don't disturb structure
func TestUnionFind_UnionIdempotent(t *testing.T) {
	uf := NewUnionFind()
	uf.Union("a", "b")
	root := uf.Find("a")
	uf.Union("a", "b")
	uf.Union("b", "a")

	if uf.Find("a") != root || uf.Find("b") != root {
		t.Error("repeated unions changed the representative")
	}
}

// TestUnionFind_Groups checks the set partition
func TestUnionFind_Groups(t *testing.T) {
	uf := NewUnionFind()
	uf.Union("a", "b")
	uf.Union("b", "c")
	uf.Union("x", "y")
	uf.Find("lonely")

	groups := uf.Groups()
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d: %v", len(groups), groups)
	}

	sizes := make(map[int]int)
	for _, members := range groups {
		sizes[len(members)]++
	}
	if sizes[3] != 1 || sizes[2] != 1 || sizes[1] != 1 {
		t.Errorf("group sizes wrong: %v", groups)
	}
}

// TestUnionFind_PathCompressionKeepsRoots checks compression preserves connectivity
func TestUnionFind_PathCompressionKeepsRoots(t *testing.T) {
	uf := NewUnionFind()
	// Build a long chain, then Find from the deepest key.
	keys := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for i := 0; i+1 < len(keys); i++ {
		uf.Union(keys[i], keys[i+1])
	}

	root := uf.Find("h")
	for _, k := range keys {
		if uf.Find(k) != root {
			t.Errorf("key %s lost its root after compression", k)
		}
	}
}
