// File: methods.go
// Role: Read-only query surface.
//
// Determinism:
//   - Every slice-returning method sorts lexicographically ascending, so
//     downstream traversals, orders and reports are reproducible.
package core

import "sort"

// Names returns every node name in the graph, placeholders included,
// sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Names() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedKeys(g.nodes)
}

// Symbol returns a copy of the definition registered under name, and
// whether one exists. Placeholders report false.
// Complexity: O(D).
func (g *Graph) Symbol(name string) (Symbol, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	sym, ok := g.symbols[name]
	if !ok {
		return Symbol{}, false
	}
	deps := make([]Dependency, len(sym.Dependencies))
	copy(deps, sym.Dependencies)
	cp := *sym
	cp.Dependencies = deps
	return cp, true
}

// Defined reports whether name has a registered definition (placeholders
// and unknown names both report false).
func (g *Graph) Defined(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.symbols[name]
	return ok
}

// LevelOf returns the level of a defined symbol. The second return is
// false for placeholders and unknown names.
func (g *Graph) LevelOf(name string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	sym, ok := g.symbols[name]
	if !ok {
		return 0, false
	}
	return sym.Level, true
}

// Missing returns the names referenced as dependencies but never defined
// (the placeholder set), sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Missing() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var missing []string
	for name := range g.nodes {
		if _, ok := g.symbols[name]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// DependentsOf returns the names that declared name as a dependency
// (forward adjacency), sorted ascending.
// Returns ErrSymbolNotFound if name is not a node.
func (g *Graph) DependentsOf(name string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.forward[name]
	if !ok {
		return nil, ErrSymbolNotFound
	}
	return sortedKeys(bucket), nil
}

// DependenciesOf returns the names that name declared as dependencies
// (reverse adjacency), sorted ascending. Placeholders have none.
// Returns ErrSymbolNotFound if name is not a node.
func (g *Graph) DependenciesOf(name string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bucket, ok := g.reverse[name]
	if !ok {
		return nil, ErrSymbolNotFound
	}
	deps := make([]string, 0, len(bucket))
	for dep := range bucket {
		deps = append(deps, dep)
	}
	sort.Strings(deps)
	return deps, nil
}

// Edges returns every dependency edge as (From=prerequisite, To=dependent,
// Relation) records, sorted by From then To.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var edges []Edge
	for to, deps := range g.reverse {
		for from, rel := range deps {
			edges = append(edges, Edge{From: from, To: to, Relation: rel})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return edges
}

// NodeCount returns the number of nodes, placeholders included.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of dependency edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, deps := range g.reverse {
		total += len(deps)
	}
	return total
}

// sortedKeys collects and sorts the keys of a string-keyed set.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
