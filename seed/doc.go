// Package seed supplies symbol registries to the validation engine: the
// built-in Fibonacci-domain table the engine originally guarded, and a
// YAML loader for external tables.
//
// What:
//
//   - Builtin: the reference hierarchy — irrational constants at level 0,
//     the Fibonacci and Lucas sequences at level 1, decompositions and
//     identities above them. Only the metadata ships here; the numeric
//     computations those symbols describe live outside this module.
//   - BuiltinClaims: the independence assertions maintained alongside the
//     table.
//   - Load / LoadFile: parse a YAML document with `symbols` and `claims`
//     lists into a core.Graph plus claims. Dependencies accept either a
//     bare name (relation defaults to "requires") or a {name, relation}
//     mapping. Categories and relations are validated against their
//     closed sets; levels must be non-negative.
//
// Errors:
//
//	ErrNegativeLevel - a symbol declared a level below zero.
//	Parse failures wrap yaml.v3 errors and the core sentinel errors
//	(core.ErrUnknownCategory, core.ErrUnknownRelation, ...), so callers
//	can branch with errors.Is.
package seed
