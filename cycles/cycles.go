// Package cycles finds circular dependency chains in a core.Graph.
package cycles

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/symgraph/core"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to Detect.
var ErrGraphNil = errors.New("cycles: graph is nil")

// Visitation states for the three-color DFS.
const (
	white = iota // not visited yet
	gray         // on the current recursion stack
	black        // fully explored
)

// frame is one entry of the explicit DFS stack: a node plus a cursor into
// its (sorted) forward neighbors.
type frame struct {
	id        string
	neighbors []string
	next      int
}

// Detect inspects g for circular dependency chains.
//
// Returns (true, cycles, nil) when at least one cycle exists; each cycle
// is a symbol-name sequence closed by repeating its first element, e.g.
// ["x", "y", "x"]. Returns (false, nil, nil) for an acyclic graph and
// ErrGraphNil for a nil one. Neighbor-lookup failures abort with a
// wrapped error.
//
// Cycles are emitted in discovery order of a deterministic traversal:
// roots in sorted name order, neighbors in sorted name order. Reports are
// neither minimal nor deduplicated across overlapping cycles.
func Detect(g *core.Graph) (bool, [][]string, error) {
	// 1) Guard the nil graph.
	if g == nil {
		return false, nil, ErrGraphNil
	}

	// 2) Prepare traversal state shared across all DFS trees.
	names := g.Names()
	state := make(map[string]int, len(names))
	path := make([]string, 0, len(names))
	var cycles [][]string

	// 3) Launch an iterative DFS from every still-white root.
	for _, root := range names {
		if state[root] != white {
			continue
		}
		if err := visit(g, root, state, &path, &cycles); err != nil {
			return false, nil, fmt.Errorf("cycles: Detect: %w", err)
		}
	}

	// 4) Report.
	if len(cycles) == 0 {
		return false, nil, nil
	}
	return true, cycles, nil
}

// visit runs one DFS tree rooted at root using an explicit frame stack,
// appending every back-edge loop it closes to cycles.
func visit(g *core.Graph, root string, state map[string]int, path *[]string, cycles *[][]string) error {
	neighbors, err := g.DependentsOf(root)
	if err != nil {
		return fmt.Errorf("DependentsOf(%q): %w", root, err)
	}

	stack := []frame{{id: root, neighbors: neighbors}}
	state[root] = gray
	*path = append(*path, root)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		// Frame exhausted: backtrack.
		if top.next >= len(top.neighbors) {
			state[top.id] = black
			*path = (*path)[:len(*path)-1]
			stack = stack[:len(stack)-1]
			continue
		}

		nbr := top.neighbors[top.next]
		top.next++

		switch state[nbr] {
		case white:
			// Descend: push a fresh frame for the unvisited neighbor.
			nbrs, err := g.DependentsOf(nbr)
			if err != nil {
				return fmt.Errorf("DependentsOf(%q): %w", nbr, err)
			}
			state[nbr] = gray
			*path = append(*path, nbr)
			stack = append(stack, frame{id: nbr, neighbors: nbrs})
		case gray:
			// Back-edge: the path slice from nbr's first occurrence
			// through the current node, closed by nbr, is one cycle.
			*cycles = append(*cycles, closeLoop(*path, nbr))
		}
		// black neighbors are fully explored; nothing new behind them.
	}
	return nil
}

// closeLoop copies path[idx:] — where idx is the first occurrence of
// start — and appends start to close the cycle.
func closeLoop(path []string, start string) []string {
	idx := 0
	for i, id := range path {
		if id == start {
			idx = i
			break
		}
	}
	loop := make([]string, 0, len(path)-idx+1)
	loop = append(loop, path[idx:]...)
	loop = append(loop, start)
	return loop
}
