package unionfind

import "errors"

// ErrUnknownElement indicates that an element was never registered
// with New or Add.
var ErrUnknownElement = errors.New("unionfind: unknown element")

// UnionFind is a disjoint-set forest over string elements.
//
// parent maps each element to its parent in the forest; roots map to
// themselves. rank is an upper bound on each root's tree height, used to
// keep unions balanced.
type UnionFind struct {
	parent map[string]string
	rank   map[string]int
	sets   int
}

// New constructs a UnionFind where each given element forms its own
// singleton set. Duplicate elements are registered once.
// Complexity: O(n).
func New(elements ...string) *UnionFind {
	uf := &UnionFind{
		parent: make(map[string]string, len(elements)),
		rank:   make(map[string]int, len(elements)),
	}
	for _, e := range elements {
		uf.Add(e)
	}

	return uf
}

// Add registers x as a singleton set. Adding a known element is a no-op.
// Complexity: O(1).
func (uf *UnionFind) Add(x string) {
	if _, ok := uf.parent[x]; ok {
		return
	}
	uf.parent[x] = x
	uf.rank[x] = 0
	uf.sets++
}

// Find returns the representative of x's set, compressing the path so that
// every element visited points directly at the root afterwards.
//
// Errors:
//   - ErrUnknownElement if x was never registered.
//
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Find(x string) (string, error) {
	if _, ok := uf.parent[x]; !ok {
		return "", ErrUnknownElement
	}

	// First pass: walk up to the root.
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}

	// Second pass: rewire every element on the path to the root.
	for uf.parent[x] != root {
		next := uf.parent[x]
		uf.parent[x] = root
		x = next
	}

	return root, nil
}

// Union merges the sets containing x and y.
// It returns true if two distinct sets were merged, false if x and y were
// already in the same set.
//
// Errors:
//   - ErrUnknownElement if either element was never registered.
//
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Union(x, y string) (bool, error) {
	rootX, err := uf.Find(x)
	if err != nil {
		return false, err
	}
	rootY, err := uf.Find(y)
	if err != nil {
		return false, err
	}
	if rootX == rootY {
		return false, nil
	}

	// Attach the lower-rank root under the higher-rank one; on a tie,
	// either order works and the surviving root's rank grows by one.
	switch {
	case uf.rank[rootX] < uf.rank[rootY]:
		uf.parent[rootX] = rootY
	case uf.rank[rootX] > uf.rank[rootY]:
		uf.parent[rootY] = rootX
	default:
		uf.parent[rootY] = rootX
		uf.rank[rootX]++
	}
	uf.sets--

	return true, nil
}

// Connected reports whether x and y currently belong to the same set.
//
// Errors:
//   - ErrUnknownElement if either element was never registered.
//
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Connected(x, y string) (bool, error) {
	rootX, err := uf.Find(x)
	if err != nil {
		return false, err
	}
	rootY, err := uf.Find(y)
	if err != nil {
		return false, err
	}

	return rootX == rootY, nil
}

// Count returns the current number of disjoint sets.
// Complexity: O(1).
func (uf *UnionFind) Count() int { return uf.sets }

// Len returns the number of registered elements.
// Complexity: O(1).
func (uf *UnionFind) Len() int { return len(uf.parent) }
