// File: graph.go
// Role: Registry mutation — Upsert/AddSymbol and the adjacency bookkeeping
// that keeps forward/reverse maps consistent with declared dependencies.
package core

import "fmt"

// AddSymbol upserts a symbol from positional fields, tagging every
// dependency with the default RelRequires relation.
//
// Re-adding an existing name replaces its definition (see Upsert).
// Complexity: O(D) for D declared dependencies.
func (g *Graph) AddSymbol(name string, level int, deps []string, cat Category, desc string) error {
	ds := make([]Dependency, 0, len(deps))
	for _, d := range deps {
		ds = append(ds, Dependency{Name: d, Relation: RelRequires})
	}
	return g.Upsert(Symbol{
		Name:         name,
		Level:        level,
		Category:     cat,
		Description:  desc,
		Dependencies: ds,
	})
}

// Upsert inserts or replaces the definition of sym.Name.
//
// Behavior:
//   - Validates the record first: non-empty names, no self-dependency,
//     category and relation tags inside their closed sets. Validation
//     failures leave the graph untouched.
//   - Replacing a definition removes every edge derived from the previous
//     dependency set before installing the new one; a placeholder left
//     with no edges and no definition is dropped entirely.
//   - Each dependency ensures a node exists (placeholder if undefined),
//     a forward edge dependency→name, and a reverse edge name→dependency.
//
// Idempotent: upserting an identical record twice is a no-op.
// Complexity: O(D_old + D_new).
func (g *Graph) Upsert(sym Symbol) error {
	if sym.Name == "" {
		return ErrEmptySymbolName
	}
	if !sym.Category.Valid() {
		return fmt.Errorf("%w: %q (symbol %q)", ErrUnknownCategory, sym.Category, sym.Name)
	}
	deps := make([]Dependency, len(sym.Dependencies))
	for i, d := range sym.Dependencies {
		if d.Name == "" {
			return fmt.Errorf("%w: dependency of %q", ErrEmptySymbolName, sym.Name)
		}
		if d.Name == sym.Name {
			return fmt.Errorf("%w: %q", ErrSelfDependency, sym.Name)
		}
		rel := d.Relation
		if rel == "" {
			rel = RelRequires
		}
		if !rel.Valid() {
			return fmt.Errorf("%w: %q (edge %q → %q)", ErrUnknownRelation, d.Relation, d.Name, sym.Name)
		}
		deps[i] = Dependency{Name: d.Name, Relation: rel}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Drop edges from a previous definition of the same name.
	if prev, ok := g.symbols[sym.Name]; ok {
		g.unlinkLocked(prev)
	}

	stored := Symbol{
		Name:         sym.Name,
		Level:        sym.Level,
		Category:     sym.Category,
		Description:  sym.Description,
		Dependencies: deps,
	}
	g.symbols[sym.Name] = &stored
	g.ensureNodeLocked(sym.Name)

	for _, d := range deps {
		g.ensureNodeLocked(d.Name)
		g.forward[d.Name][sym.Name] = struct{}{}
		g.reverse[sym.Name][d.Name] = d.Relation
	}
	return nil
}

// ensureNodeLocked registers name in the node set and bootstraps its
// adjacency buckets. Caller holds g.mu.
func (g *Graph) ensureNodeLocked(name string) {
	if _, ok := g.nodes[name]; ok {
		return
	}
	g.nodes[name] = struct{}{}
	g.forward[name] = make(map[string]struct{})
	g.reverse[name] = make(map[string]Relation)
}

// unlinkLocked removes the adjacency derived from prev's dependency set
// and garbage-collects placeholders the removal orphaned. Caller holds g.mu.
func (g *Graph) unlinkLocked(prev *Symbol) {
	for _, d := range prev.Dependencies {
		delete(g.forward[d.Name], prev.Name)
		delete(g.reverse[prev.Name], d.Name)
		g.dropIfOrphanLocked(d.Name)
	}
}

// dropIfOrphanLocked removes name when it is an undefined placeholder with
// no remaining edges in either direction. Caller holds g.mu.
func (g *Graph) dropIfOrphanLocked(name string) {
	if _, defined := g.symbols[name]; defined {
		return
	}
	if len(g.forward[name]) > 0 || len(g.reverse[name]) > 0 {
		return
	}
	delete(g.nodes, name)
	delete(g.forward, name)
	delete(g.reverse, name)
}

// Clone returns a deep copy of g: an immutable-by-convention snapshot that
// a validation run can hold while the original keeps evolving.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph()
	for name, sym := range g.symbols {
		deps := make([]Dependency, len(sym.Dependencies))
		copy(deps, sym.Dependencies)
		cp := Symbol{
			Name:         sym.Name,
			Level:        sym.Level,
			Category:     sym.Category,
			Description:  sym.Description,
			Dependencies: deps,
		}
		c.symbols[name] = &cp
	}
	for name := range g.nodes {
		c.nodes[name] = struct{}{}
		fwd := make(map[string]struct{}, len(g.forward[name]))
		for to := range g.forward[name] {
			fwd[to] = struct{}{}
		}
		c.forward[name] = fwd
		rev := make(map[string]Relation, len(g.reverse[name]))
		for from, rel := range g.reverse[name] {
			rev[from] = rel
		}
		c.reverse[name] = rev
	}
	return c
}
