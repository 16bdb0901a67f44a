// Package independence verifies caller-supplied independence claims
// against the actual reachability of a symbol dependency graph.
//
// What:
//
//   - Claim: an assertion that two symbols have no dependency relationship
//     in either direction. Claims are inputs, never derived from the graph.
//   - Check: for each claim, two breadth-first searches over forward
//     adjacency (one per direction), each bounded by the node count so it
//     terminates even when cycles exist elsewhere in the graph. The claim
//     holds iff neither direction has a path. On mismatch the shortest
//     offending path is reconstructed from BFS parent pointers for
//     diagnostics.
//
// Why:
//   - Design documents assert that certain concepts are unrelated;
//     contradicting edges creep in silently. This check turns those
//     assertions into verifiable records.
//
// The check is advisory: a failed claim becomes an error in the aggregate
// validation result but never blocks or short-circuits other analyses.
// Symbols named by a claim but absent from the graph are trivially
// unreachable, so such claims evaluate with actual == true.
//
// Complexity: Time O(k·(V+E)) for k claims, Memory O(V).
//
// Errors:
//
//	ErrGraphNil - nil *core.Graph passed to Check.
package independence
