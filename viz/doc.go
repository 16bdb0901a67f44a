// Package viz renders a symbol dependency graph as Mermaid flowchart
// text: nodes grouped by level, shapes chosen by category, edge arrows
// styled by relation tag.
//
// Render is a pure function — identical graphs produce byte-identical
// output (levels ascending, names sorted within each group, edges sorted
// by endpoints), which makes the result snapshot-testable.
//
// The adapter consumes only {name, level, category} node records and
// {from, to, relation} edge records from core; no rendering concern leaks
// back into the validation algorithms, and no algorithm consults a
// relation tag.
package viz
