// Package validate runs the fixed checking pipeline and aggregates a
// Result.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/symgraph/core"
	"github.com/katalvlaran/symgraph/cycles"
	"github.com/katalvlaran/symgraph/independence"
	"github.com/katalvlaran/symgraph/levels"
	"github.com/katalvlaran/symgraph/metrics"
	"github.com/katalvlaran/symgraph/toposort"
)

// Run validates g in one synchronous pass and returns a fresh Result.
//
// The four issue kinds are non-fatal and accumulated; Run never aborts on
// them. The returned error is reserved for a nil graph or an internal
// traversal failure, both of which mean no Result could be produced.
func Run(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Validate input and apply options.
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	res := &Result{
		ComputationOrder: []string{},
		Cycles:           [][]string{},
	}

	// 2) DetectCycles.
	hasCycles, found, err := cycles.Detect(g)
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	if hasCycles {
		res.Cycles = found
		for _, cycle := range found {
			res.Errors = append(res.Errors, Issue{
				Kind:     KindCycle,
				Severity: SeverityError,
				Symbols:  cycle,
				Message:  fmt.Sprintf("circular dependency: %s", strings.Join(cycle, " -> ")),
			})
		}
	}

	// 3) TopologicalSort, gated on cycle-freedom. No best-effort order:
	//    a cyclic graph keeps computationOrder empty by definition.
	if !hasCycles {
		order, serr := toposort.Sort(g)
		if serr != nil {
			// Detect said acyclic, so only internal failures land here.
			if !errors.Is(serr, toposort.ErrCycleDetected) {
				return nil, fmt.Errorf("validate: %w", serr)
			}
		} else {
			res.ComputationOrder = order
		}
	}

	// 4) LevelCheck (exhaustive, independent of acyclicity).
	violations, err := levels.Check(g)
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	for _, v := range violations {
		res.Errors = append(res.Errors, Issue{
			Kind:     KindLevelViolation,
			Severity: SeverityError,
			Symbols:  []string{v.Symbol, v.Dependency},
			Message: fmt.Sprintf("%s (level %d) depends on %s (level %d); dependency level must be strictly lower",
				v.Symbol, v.SymbolLevel, v.Dependency, v.DependencyLevel),
		})
	}

	// 5) MissingDependencyScan: one issue per (dependent → missing) edge.
	for _, missing := range g.Missing() {
		dependents, derr := g.DependentsOf(missing)
		if derr != nil {
			return nil, fmt.Errorf("validate: DependentsOf(%q): %w", missing, derr)
		}
		for _, dependent := range dependents {
			res.Errors = append(res.Errors, Issue{
				Kind:     KindMissingDependency,
				Severity: SeverityError,
				Symbols:  []string{dependent, missing},
				Message:  fmt.Sprintf("%s depends on %s, which is never defined", dependent, missing),
			})
		}
	}

	// 6) IndependenceCheck (advisory; failed claims are errors but never
	//    block the remaining analyses).
	outcomes, err := independence.Check(g, o.claims)
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	res.Independence = outcomes
	for _, out := range outcomes {
		if out.Valid {
			continue
		}
		msg := fmt.Sprintf("%s and %s claimed independent, but a dependency path exists: %s",
			out.Claim.SymbolA, out.Claim.SymbolB, strings.Join(out.Path, " -> "))
		if !out.Claim.Independent {
			msg = fmt.Sprintf("%s and %s claimed dependent, but no dependency path exists in either direction",
				out.Claim.SymbolA, out.Claim.SymbolB)
		}
		res.Errors = append(res.Errors, Issue{
			Kind:     KindInvalidIndependenceClaim,
			Severity: SeverityError,
			Symbols:  []string{out.Claim.SymbolA, out.Claim.SymbolB},
			Message:  msg,
		})
	}

	// 7) Metrics, plus the advisory fan-in warning when enabled.
	summary, err := metrics.Compute(g)
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	res.Metrics = summary
	if o.fanInWarnAt > 0 {
		for _, name := range g.Names() {
			deps, derr := g.DependenciesOf(name)
			if derr != nil {
				return nil, fmt.Errorf("validate: DependenciesOf(%q): %w", name, derr)
			}
			if len(deps) > o.fanInWarnAt {
				res.Warnings = append(res.Warnings, Issue{
					Kind:     KindHighFanIn,
					Severity: SeverityWarning,
					Symbols:  []string{name},
					Message:  fmt.Sprintf("%s declares %d dependencies (threshold %d)", name, len(deps), o.fanInWarnAt),
				})
			}
		}
	}

	// 8) Aggregate.
	res.Valid = len(res.Errors) == 0
	return res, nil
}
