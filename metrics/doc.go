// Package metrics computes aggregate statistics over a symbol dependency
// graph: counts, fan-in extremes, root/leaf sets, and the longest
// dependency path.
//
// What:
//
//   - Compute returns a Summary with total symbol and edge counts, the
//     number of levels (max declared level + 1), maximum and average
//     dependency fan-in, root nodes (zero dependencies) and leaf nodes
//     (zero dependents) with sorted name lists, and the longest path
//     length in edges via memoized depth-first search.
//
// The longest-path walk is iterative and guards against revisiting a node
// already on its traversal stack, so metrics stay well-defined even when
// the graph is known to be cyclic (cycle edges simply do not extend the
// path). No pass/fail thresholds live here — e.g. "fan-in too high" is a
// caller policy, surfaced by the validate package as warnings only.
//
// Complexity: Time O(V+E) with memoization, Memory O(V).
//
// Errors:
//
//	ErrGraphNil - nil *core.Graph passed to Compute.
package metrics
