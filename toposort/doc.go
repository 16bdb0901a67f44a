// Package toposort computes a deterministic computation order for a
// symbol dependency graph using Kahn's algorithm.
//
// What:
//
//   - Sort: in-degree counting over declared dependencies, a ready queue
//     seeded with zero-dependency nodes, and a fixed tie-break among
//     simultaneously-ready nodes — lowest level first, then lexicographic
//     name — so two runs over the same graph always emit the same order
//     (diffable output).
//
// Why:
//   - Consumers evaluate symbols bottom-up; the order must list every
//     dependency strictly before its dependent.
//
// Precondition:
//   - Sort is only meaningful on an acyclic graph. When a cycle prevents
//     draining the ready queue, Sort returns ErrCycleDetected and no
//     partial order — the orchestrator maps that to an empty
//     computationOrder rather than a best-effort one.
//
// Placeholder nodes (referenced but undefined dependencies) participate
// with an effective level of 0, since they declare no dependencies of
// their own.
//
// Complexity: Time O((V+E) log V) — heap-ordered ready set; Memory O(V).
//
// Errors:
//
//	ErrGraphNil       - nil *core.Graph passed to Sort.
//	ErrCycleDetected  - the graph contains at least one dependency cycle.
package toposort
