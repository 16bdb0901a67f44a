// Package independence checks claimed non-relationships via BFS
// reachability over forward adjacency.
package independence

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/symgraph/core"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to Check.
var ErrGraphNil = errors.New("independence: graph is nil")

// Claim asserts that SymbolA and SymbolB are (or are not) independent:
// no dependency path in either direction.
type Claim struct {
	SymbolA     string `json:"symbolA"`
	SymbolB     string `json:"symbolB"`
	Independent bool   `json:"claimedIndependent"`
}

// Outcome is the per-claim verdict. Path is non-nil only when the claim
// asserted independence and a dependency path contradicts it; it lists
// the shortest such path including both endpoints.
type Outcome struct {
	Claim  Claim    `json:"claim"`
	Actual bool     `json:"actual"`
	Valid  bool     `json:"valid"`
	Path   []string `json:"path,omitempty"`
}

// Check evaluates every claim against g and returns outcomes in claim
// order. actual = no path A→B and no path B→A over forward adjacency;
// valid = (actual == claimed). Returns ErrGraphNil for a nil graph.
func Check(g *core.Graph, claims []Claim) ([]Outcome, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	outcomes := make([]Outcome, 0, len(claims))
	for _, claim := range claims {
		pathAB, err := shortestPath(g, claim.SymbolA, claim.SymbolB)
		if err != nil {
			return nil, fmt.Errorf("independence: %w", err)
		}
		pathBA, err := shortestPath(g, claim.SymbolB, claim.SymbolA)
		if err != nil {
			return nil, fmt.Errorf("independence: %w", err)
		}

		actual := pathAB == nil && pathBA == nil
		out := Outcome{
			Claim:  claim,
			Actual: actual,
			Valid:  actual == claim.Independent,
		}
		// A contradicted independence claim carries its witness path.
		if !out.Valid && claim.Independent {
			out.Path = pathAB
			if out.Path == nil || (pathBA != nil && len(pathBA) < len(out.Path)) {
				out.Path = pathBA
			}
		}
		outcomes = append(outcomes, out)
	}
	return outcomes, nil
}

// walker holds the mutable state of one BFS pass.
type walker struct {
	graph   *core.Graph
	queue   []string
	visited map[string]bool
	parent  map[string]string
}

// shortestPath returns the shortest dependency path from → to over
// forward adjacency (dependency → dependent), or nil when unreachable.
// Names absent from the graph are treated as unreachable, not as errors.
func shortestPath(g *core.Graph, from, to string) ([]string, error) {
	if from == to {
		return nil, nil // a symbol is never "dependent on itself" here
	}

	w := &walker{
		graph:   g,
		queue:   []string{from},
		visited: map[string]bool{from: true},
		parent:  make(map[string]string),
	}

	for len(w.queue) > 0 {
		curr := w.queue[0]
		w.queue = w.queue[1:]

		dependents, err := g.DependentsOf(curr)
		if err != nil {
			if errors.Is(err, core.ErrSymbolNotFound) {
				continue // claim names a symbol the graph never saw
			}
			return nil, fmt.Errorf("DependentsOf(%q): %w", curr, err)
		}
		for _, nbr := range dependents {
			if w.visited[nbr] {
				continue
			}
			w.visited[nbr] = true
			w.parent[nbr] = curr
			if nbr == to {
				return w.rebuild(from, to), nil
			}
			w.queue = append(w.queue, nbr)
		}
	}
	return nil, nil
}

// rebuild walks parent pointers backwards from to and reverses the result.
func (w *walker) rebuild(from, to string) []string {
	var rev []string
	for at := to; ; at = w.parent[at] {
		rev = append(rev, at)
		if at == from {
			break
		}
	}
	path := make([]string, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		path = append(path, rev[i])
	}
	return path
}
