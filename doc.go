// Package symgraph validates symbol dependency hierarchies before anything
// computes over them.
//
// A registry of named symbols — constants, operations, sequences,
// decompositions, properties — declares for each symbol a level (tier) and
// a set of prerequisite symbols. symgraph builds the dependency graph from
// that registry and verifies, in one synchronous pass, everything that can
// go wrong with it:
//
//   - core:          the Graph value — registry, adjacency, placeholders
//   - cycles:        circular-dependency detection (iterative DFS)
//   - toposort:      deterministic computation order (Kahn + tie-break)
//   - levels:        strict level-monotonicity checking
//   - independence:  caller-supplied independence claims vs. reachability
//   - metrics:       fan-in, roots/leaves, longest path, counts
//   - validate:      the fixed pipeline aggregating one ValidationResult
//   - viz:           pure Mermaid-text adapter over the graph
//   - seed:          the built-in Fibonacci-domain table and a YAML loader
//
// Design rules the packages share: the graph is an explicit owned value
// (no singletons), every error of the taxonomy is accumulated rather than
// thrown, traversals are iterative so deep chains cannot overflow the
// stack, and every enumeration is sorted so two runs over the same graph
// produce byte-identical results.
//
// Start with validate.Run:
//
//	g := seed.Builtin()
//	res, err := validate.Run(g, validate.WithClaims(seed.BuiltinClaims()...))
//
// res is plain structured data — JSON-serializable by construction — and
// res.Valid is simply "no errors were found".
package symgraph
