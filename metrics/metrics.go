// Package metrics aggregates structural statistics of a core.Graph.
package metrics

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/symgraph/core"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to Compute.
var ErrGraphNil = errors.New("metrics: graph is nil")

// Summary is the aggregate picture of one graph. All fields are plain
// data, JSON-serializable by construction.
type Summary struct {
	SymbolCount int      `json:"symbolCount"`
	EdgeCount   int      `json:"edgeCount"`
	LevelCount  int      `json:"levelCount"`
	MaxFanIn    int      `json:"maxFanIn"`
	AvgFanIn    float64  `json:"avgFanIn"`
	RootCount   int      `json:"rootCount"`
	LeafCount   int      `json:"leafCount"`
	Roots       []string `json:"roots"`
	Leaves      []string `json:"leaves"`
	LongestPath int      `json:"longestPath"`
}

// Compute walks g once and fills a Summary.
//
// Fan-in of a symbol is the size of its declared dependency set
// (placeholders declare none). Roots have zero dependencies, leaves zero
// dependents; an isolated symbol is both. LevelCount is max(level)+1 over
// defined symbols (placeholders sit at level 0), and 0 for an empty graph.
func Compute(g *core.Graph) (Summary, error) {
	if g == nil {
		return Summary{}, ErrGraphNil
	}

	names := g.Names()
	s := Summary{SymbolCount: len(names)}

	maxLevel := 0
	for _, name := range names {
		deps, err := g.DependenciesOf(name)
		if err != nil {
			return Summary{}, fmt.Errorf("metrics: DependenciesOf(%q): %w", name, err)
		}
		dependents, err := g.DependentsOf(name)
		if err != nil {
			return Summary{}, fmt.Errorf("metrics: DependentsOf(%q): %w", name, err)
		}

		fanIn := len(deps)
		s.EdgeCount += fanIn
		if fanIn > s.MaxFanIn {
			s.MaxFanIn = fanIn
		}
		if fanIn == 0 {
			s.Roots = append(s.Roots, name) // Names() is sorted already
		}
		if len(dependents) == 0 {
			s.Leaves = append(s.Leaves, name)
		}
		if lvl, ok := g.LevelOf(name); ok && lvl > maxLevel {
			maxLevel = lvl
		}
	}

	s.RootCount = len(s.Roots)
	s.LeafCount = len(s.Leaves)
	if s.SymbolCount > 0 {
		s.LevelCount = maxLevel + 1
		s.AvgFanIn = float64(s.EdgeCount) / float64(s.SymbolCount)
	}

	longest, err := longestPath(g, names)
	if err != nil {
		return Summary{}, err
	}
	s.LongestPath = longest
	return s, nil
}

// pathFrame is one entry of the explicit longest-path DFS stack.
type pathFrame struct {
	id        string
	neighbors []string
	next      int
	best      int // longest edge count found beneath id so far
}

// longestPath returns the maximum path length (in edges) over forward
// adjacency, memoized per node. Edges back into the traversal stack are
// skipped, so the walk terminates on cyclic graphs.
func longestPath(g *core.Graph, names []string) (int, error) {
	const (
		unvisited = iota
		onStack
		done
	)

	memo := make(map[string]int, len(names))
	state := make(map[string]int, len(names))
	longest := 0

	for _, root := range names {
		if state[root] != unvisited {
			continue
		}
		nbrs, err := g.DependentsOf(root)
		if err != nil {
			return 0, fmt.Errorf("metrics: DependentsOf(%q): %w", root, err)
		}
		stack := []pathFrame{{id: root, neighbors: nbrs}}
		state[root] = onStack

		for len(stack) > 0 {
			top := &stack[len(stack)-1]

			if top.next < len(top.neighbors) {
				nbr := top.neighbors[top.next]
				top.next++
				switch state[nbr] {
				case done:
					if d := 1 + memo[nbr]; d > top.best {
						top.best = d
					}
				case onStack:
					// cycle edge: does not extend any simple path
				default:
					nn, nerr := g.DependentsOf(nbr)
					if nerr != nil {
						return 0, fmt.Errorf("metrics: DependentsOf(%q): %w", nbr, nerr)
					}
					state[nbr] = onStack
					stack = append(stack, pathFrame{id: nbr, neighbors: nn})
				}
				continue
			}

			// Frame complete: memoize and fold the result into the parent.
			memo[top.id] = top.best
			state[top.id] = done
			if top.best > longest {
				longest = top.best
			}
			finished := top.best
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				parent := &stack[len(stack)-1]
				if d := 1 + finished; d > parent.best {
					parent.best = d
				}
			}
		}
	}
	return longest, nil
}
