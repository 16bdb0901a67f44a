// Package toposort implements Kahn's algorithm with a (level, name)
// tie-break over a core.Graph.
package toposort

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/katalvlaran/symgraph/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Sort.
	ErrGraphNil = errors.New("toposort: graph is nil")

	// ErrCycleDetected is returned when the ready queue drains before
	// every node has been ordered, i.e. a cycle exists.
	ErrCycleDetected = errors.New("toposort: cycle detected")
)

// readyNode is one entry of the ready heap: a node whose dependencies
// have all been ordered already.
type readyNode struct {
	name  string
	level int
}

// readyHeap orders readyNode by (level asc, name asc) — the documented
// tie-break that keeps computation orders deterministic.
type readyHeap []readyNode

func (h readyHeap) Len() int { return len(h) }

func (h readyHeap) Less(i, j int) bool {
	if h[i].level != h[j].level {
		return h[i].level < h[j].level
	}
	return h[i].name < h[j].name
}

func (h readyHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *readyHeap) Push(x any) { *h = append(*h, x.(readyNode)) }

func (h *readyHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Sort returns a computation order for g: every dependency appears
// strictly before each of its dependents.
//
// Steps:
//  1. In-degree of a node = size of its declared dependency set.
//  2. Zero in-degree nodes seed the ready heap.
//  3. Pop the (level, name)-minimal ready node, append it to the order,
//     decrement the in-degree of every forward-adjacent dependent, and
//     push any node that just reached zero.
//  4. If fewer nodes were ordered than exist, a cycle blocked the rest:
//     return ErrCycleDetected with no partial order.
//
// Placeholders count as level 0. Returns ErrGraphNil for a nil graph.
func Sort(g *core.Graph) ([]string, error) {
	// 1) Validate input.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2) Compute in-degrees from the reverse adjacency.
	names := g.Names()
	inDegree := make(map[string]int, len(names))
	for _, name := range names {
		deps, err := g.DependenciesOf(name)
		if err != nil {
			return nil, fmt.Errorf("toposort: DependenciesOf(%q): %w", name, err)
		}
		inDegree[name] = len(deps)
	}

	// 3) Seed the ready heap with zero-dependency nodes.
	ready := make(readyHeap, 0, len(names))
	for _, name := range names {
		if inDegree[name] == 0 {
			ready = append(ready, readyNode{name: name, level: levelOrZero(g, name)})
		}
	}
	heap.Init(&ready)

	// 4) Drain the heap, releasing dependents as their counts hit zero.
	order := make([]string, 0, len(names))
	for ready.Len() > 0 {
		next := heap.Pop(&ready).(readyNode)
		order = append(order, next.name)

		dependents, err := g.DependentsOf(next.name)
		if err != nil {
			return nil, fmt.Errorf("toposort: DependentsOf(%q): %w", next.name, err)
		}
		for _, dep := range dependents {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				heap.Push(&ready, readyNode{name: dep, level: levelOrZero(g, dep)})
			}
		}
	}

	// 5) Anything left unordered sits on a cycle.
	if len(order) != len(names) {
		return nil, fmt.Errorf("%w: ordered %d of %d symbols", ErrCycleDetected, len(order), len(names))
	}
	return order, nil
}

// levelOrZero returns a defined symbol's level, or 0 for placeholders.
func levelOrZero(g *core.Graph, name string) int {
	if lvl, ok := g.LevelOf(name); ok {
		return lvl
	}
	return 0
}
