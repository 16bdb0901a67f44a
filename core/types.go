// Package core defines the Symbol, Dependency, Edge and Graph types,
// the closed Category and Relation enumerations, and the sentinel errors
// shared by the symgraph checkers.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrEmptySymbolName indicates a symbol or dependency name was empty.
	ErrEmptySymbolName = errors.New("core: symbol name is empty")

	// ErrSelfDependency indicates a symbol declared itself as a dependency.
	ErrSelfDependency = errors.New("core: symbol depends on itself")

	// ErrUnknownCategory indicates a category outside the closed set.
	ErrUnknownCategory = errors.New("core: unknown category")

	// ErrUnknownRelation indicates a relation tag outside the closed set.
	ErrUnknownRelation = errors.New("core: unknown relation")

	// ErrSymbolNotFound indicates a query referenced a name not in the graph.
	ErrSymbolNotFound = errors.New("core: symbol not found")
)

// Category classifies a symbol. The set is closed: validation and the
// visualizer both rely on exhaustive handling of these five values.
type Category string

const (
	// CategoryConstant marks a ground value (level-0 material, typically).
	CategoryConstant Category = "constant"

	// CategoryOperation marks a computation over other symbols.
	CategoryOperation Category = "operation"

	// CategorySequence marks an indexed family of values.
	CategorySequence Category = "sequence"

	// CategoryDecomposition marks a representation in terms of a sequence.
	CategoryDecomposition Category = "decomposition"

	// CategoryProperty marks a derived identity or invariant.
	CategoryProperty Category = "property"
)

// Valid reports whether c is one of the five closed categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryConstant, CategoryOperation, CategorySequence,
		CategoryDecomposition, CategoryProperty:
		return true
	}
	return false
}

// ParseCategory converts text (e.g. from a seed table) into a Category.
// Returns ErrUnknownCategory for anything outside the closed set.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// Relation tags a dependency edge for presentation (diagram styling,
// reports). It never participates in any algorithmic decision.
type Relation string

const (
	// RelRequires is the default relation for a declared dependency.
	RelRequires Relation = "requires"

	// RelUses marks a non-structural usage of the dependency.
	RelUses Relation = "uses"

	// RelDerivesFrom marks a symbol obtained from the dependency.
	RelDerivesFrom Relation = "derives-from"

	// RelEquivalentTo marks two formulations of the same concept.
	RelEquivalentTo Relation = "equivalent-to"
)

// Valid reports whether r is one of the four closed relations.
func (r Relation) Valid() bool {
	switch r {
	case RelRequires, RelUses, RelDerivesFrom, RelEquivalentTo:
		return true
	}
	return false
}

// ParseRelation converts text into a Relation; the empty string maps to
// RelRequires. Returns ErrUnknownRelation for anything else.
func ParseRelation(s string) (Relation, error) {
	if s == "" {
		return RelRequires, nil
	}
	r := Relation(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRelation, s)
	}
	return r, nil
}

// Dependency names a prerequisite symbol together with its presentation tag.
type Dependency struct {
	// Name is the prerequisite symbol's identifier.
	Name string

	// Relation styles the edge in diagrams; RelRequires when unset.
	Relation Relation
}

// Symbol is a registry entry: one named node of the dependency hierarchy.
//
// Name uniquely identifies the symbol within its Graph. Level is the
// non-negative tier; every dependency must sit strictly below it (checked
// by the levels package, not here). Description is free text and carries
// no semantics.
type Symbol struct {
	Name         string
	Level        int
	Category     Category
	Description  string
	Dependencies []Dependency
}

// Edge is one derived dependency edge: From is the prerequisite, To the
// symbol that declared it. Relation mirrors the declaring Dependency.
type Edge struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	Relation Relation `json:"relation"`
}

// Graph is the symbol registry plus derived adjacency.
//
// forward maps dependency → set of dependents; reverse maps symbol →
// dependency → relation tag. nodes holds every known name, including
// placeholders auto-created for referenced-but-undefined dependencies.
type Graph struct {
	mu sync.RWMutex

	symbols map[string]*Symbol            // defined symbols only
	nodes   map[string]struct{}           // all names, placeholders included
	forward map[string]map[string]struct{} // dependency → dependents
	reverse map[string]map[string]Relation // symbol → dependency → relation
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		symbols: make(map[string]*Symbol),
		nodes:   make(map[string]struct{}),
		forward: make(map[string]map[string]struct{}),
		reverse: make(map[string]map[string]Relation),
	}
}
