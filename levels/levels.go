// Package levels validates strict level ordering across dependency edges.
package levels

import (
	"errors"

	"github.com/katalvlaran/symgraph/core"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to Check.
var ErrGraphNil = errors.New("levels: graph is nil")

// Violation records one edge that breaks the monotonicity invariant:
// DependencyLevel >= SymbolLevel.
type Violation struct {
	Symbol          string `json:"symbol"`
	SymbolLevel     int    `json:"symbolLevel"`
	Dependency      string `json:"dependency"`
	DependencyLevel int    `json:"dependencyLevel"`
}

// Check scans every dependency edge of g and returns all violations of
// level(dependency) < level(symbol), in sorted (symbol, dependency) order.
// Edges involving undefined placeholders are skipped. A nil violation
// slice means the invariant holds everywhere.
func Check(g *core.Graph) ([]Violation, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var violations []Violation
	for _, name := range g.Names() {
		sym, ok := g.Symbol(name)
		if !ok {
			continue // placeholder: no declared level to compare
		}
		deps, err := g.DependenciesOf(name)
		if err != nil {
			return nil, err
		}
		for _, dep := range deps {
			depLevel, defined := g.LevelOf(dep)
			if !defined {
				continue // missing dependency, reported elsewhere
			}
			if depLevel >= sym.Level {
				violations = append(violations, Violation{
					Symbol:          name,
					SymbolLevel:     sym.Level,
					Dependency:      dep,
					DependencyLevel: depLevel,
				})
			}
		}
	}
	return violations, nil
}
