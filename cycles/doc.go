// Package cycles implements circular-dependency detection over a
// core.Graph using iterative depth-first search with three-color marking
// and an explicit path stack.
//
// What:
//
//   - Detect: walks forward adjacency (dependency → dependent) from every
//     unvisited node in sorted order. When traversal reaches a node already
//     on the recursion stack, the slice of the path from that node's first
//     occurrence through the current node — plus the repeated node closing
//     the loop — is emitted as one cycle. Disjoint cycles are all found
//     because traversal restarts from every remaining root.
//
// Why:
//   - A cyclic symbol hierarchy has no computation order; detection must
//     run before topological sorting and must name the offending symbols.
//
// Contract (relaxed, intentional):
//   - Reported cycles are not guaranteed minimal, and cycles sharing nodes
//     are not deduplicated against each other. Downstream consumers
//     tolerate this; do not tighten it without re-checking them.
//   - Output is nonetheless deterministic for a fixed graph: roots and
//     neighbors are always visited in lexicographic order.
//
// The traversal is iterative (explicit frame stack), so deep chains with
// thousands of symbols cannot overflow the goroutine stack.
//
// Complexity: Time O(V+E) plus O(L) per emitted cycle of length L;
// Memory O(V).
//
// Errors:
//
//	ErrGraphNil - nil *core.Graph passed to Detect.
package cycles
