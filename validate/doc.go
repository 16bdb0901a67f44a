// Package validate orchestrates every symgraph checker over one graph and
// aggregates a single ValidationResult.
//
// Pipeline (fixed, no branching back):
//
//	DetectCycles → (TopologicalSort iff acyclic, else empty order) →
//	LevelCheck → MissingDependencyScan → IndependenceCheck → Metrics →
//	Aggregate
//
// Every step except the gated sort always runs and always contributes,
// even when earlier steps found errors: the engine reports every
// detectable problem in one pass instead of failing fast. The run is a
// pure function of the graph plus the supplied independence claims — no
// intermediate state survives it.
//
// Error taxonomy (all non-fatal, all accumulated):
//
//   - KindCycle: one issue per discovered circular dependency chain.
//   - KindLevelViolation: a dependency at a level ≥ its dependent's.
//   - KindMissingDependency: a referenced name with no definition.
//   - KindInvalidIndependenceClaim: a claim contradicted by reachability.
//
// Warnings (advisory, never affect Valid): unusually high dependency
// fan-in, enabled via WithFanInWarnThreshold — a caller policy, not an
// engine judgment.
//
// Valid is simply len(Errors) == 0. The Result is plain structured data,
// JSON-serializable by construction; callers read it and discard it.
//
// Errors:
//
//	ErrGraphNil - nil *core.Graph passed to Run.
package validate
