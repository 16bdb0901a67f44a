// Package core provides the in-memory symbol dependency graph that every
// checker in symgraph consumes: named symbols with a level (tier), a
// category, and a declared dependency set, plus the forward and reverse
// adjacency derived from those declarations.
//
// What:
//
//   - Symbol: a named node with Level, Category, Description and a set of
//     Dependency records (name + presentation-only Relation tag).
//   - Graph: the registry plus derived adjacency. Upsert replaces a symbol
//     definition by name (idempotent); AddSymbol is the positional
//     convenience form. Dependencies that name a symbol never defined are
//     materialized as placeholder nodes so traversal can proceed — their
//     lack of metadata is reported later as a missing-dependency error,
//     never a crash.
//   - Deterministic read surface: Names(), Edges(), DependenciesOf(),
//     DependentsOf() and Missing() all return lexicographically sorted
//     results, so every downstream analysis is reproducible run to run.
//
// Why:
//   - Symbol hierarchies (constants → sequences → derived identities) must
//     be validated before anything computes over them; this package is the
//     single owned value the validators are handed — no ambient registry,
//     no global mutable state.
//
// Concurrency:
//   - A Graph is safe for concurrent reads. Mutation (Upsert/AddSymbol)
//     must not interleave with reads or with a running validation; the
//     internal RWMutex protects map integrity, not cross-call snapshots.
//     Use Clone() to hand a frozen copy to long-lived consumers.
//
// Errors:
//
//	ErrEmptySymbolName  - symbol or dependency name is the empty string.
//	ErrSelfDependency   - a symbol declared itself as a dependency.
//	ErrUnknownCategory  - category outside the closed set.
//	ErrUnknownRelation  - relation tag outside the closed set.
//	ErrSymbolNotFound   - adjacency query for a name not in the graph.
package core
