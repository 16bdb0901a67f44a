// Package levels checks the level-monotonicity invariant of a symbol
// dependency graph: every dependency must sit on a strictly lower level
// than the symbol declaring it.
//
// The check is exhaustive — it never stops at the first failure — and is
// independent of acyclicity: an acyclic graph can still violate level
// ordering when a dependency was tagged with a tier at or above its
// dependent's. Each violation names both symbols and both levels.
//
// Edges whose dependency is an undefined placeholder are skipped here;
// those surface as missing-dependency errors instead of a spurious
// violation against a level nobody declared.
//
// Complexity: Time O(V+E), Memory O(1) beyond the violation list.
//
// Errors:
//
//	ErrGraphNil - nil *core.Graph passed to Check.
package levels
