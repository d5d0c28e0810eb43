package nets

// UnionFind is a disjoint-set forest over string keys, with path compression
// and union by rank.
type UnionFind struct {
	parent map[string]string
	rank   map[string]int
}

// NewUnionFind creates an empty disjoint-set forest.
func NewUnionFind() *UnionFind {
	return &UnionFind{
		parent: make(map[string]string),
		rank:   make(map[string]int),
	}
}

// Find returns the representative of x's set, registering x as a singleton
// if it was unknown. Lookups compress the path to the root.
func (uf *UnionFind) Find(x string) string {
	if _, ok := uf.parent[x]; !ok {
		uf.parent[x] = x
		uf.rank[x] = 0
		return x
	}
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	// Path compression: repoint every node on the walk to the root.
	for uf.parent[x] != root {
		uf.parent[x], x = root, uf.parent[x]
	}
	return root
}

// Union merges the sets containing x and y. The shallower tree attaches
// under the deeper one.
func (uf *UnionFind) Union(x, y string) {
	rootX := uf.Find(x)
	rootY := uf.Find(y)
	if rootX == rootY {
		return
	}

	switch {
	case uf.rank[rootX] < uf.rank[rootY]:
		uf.parent[rootX] = rootY
	case uf.rank[rootX] > uf.rank[rootY]:
		uf.parent[rootY] = rootX
	default:
		uf.parent[rootY] = rootX
		uf.rank[rootX]++
	}
}

// Connected reports whether x and y share a set.
func (uf *UnionFind) Connected(x, y string) bool {
	return uf.Find(x) == uf.Find(y)
}

// Groups returns every set as representative → members.
func (uf *UnionFind) Groups() map[string][]string {
	groups := make(map[string][]string)
	for key := range uf.parent {
		root := uf.Find(key)
		groups[root] = append(groups[root], key)
	}
	return groups
}
