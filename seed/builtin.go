// File: builtin.go
// Role: The reference symbol table and its independence claims.
package seed

import (
	"fmt"

	"github.com/katalvlaran/symgraph/core"
	"github.com/katalvlaran/symgraph/independence"
)

// builtinTable is the Fibonacci-domain hierarchy. Levels tier the
// symbols: constants ground everything, sequences derive from constants,
// decompositions and identities build on sequences.
var builtinTable = []core.Symbol{
	{
		Name:        "golden_ratio",
		Level:       0,
		Category:    core.CategoryConstant,
		Description: "φ = (1 + √5) / 2, the positive root of x² = x + 1",
	},
	{
		Name:        "conjugate_ratio",
		Level:       0,
		Category:    core.CategoryConstant,
		Description: "ψ = (1 − √5) / 2, the negative root of x² = x + 1",
	},
	{
		Name:        "sqrt_five",
		Level:       0,
		Category:    core.CategoryConstant,
		Description: "√5 = φ − ψ, the Binet normalizer",
	},
	{
		Name:        "fibonacci",
		Level:       1,
		Category:    core.CategorySequence,
		Description: "F(n) = (φⁿ − ψⁿ) / √5",
		Dependencies: []core.Dependency{
			{Name: "golden_ratio", Relation: core.RelDerivesFrom},
			{Name: "conjugate_ratio", Relation: core.RelDerivesFrom},
			{Name: "sqrt_five", Relation: core.RelUses},
		},
	},
	{
		Name:        "lucas",
		Level:       1,
		Category:    core.CategorySequence,
		Description: "L(n) = φⁿ + ψⁿ",
		Dependencies: []core.Dependency{
			{Name: "golden_ratio", Relation: core.RelDerivesFrom},
			{Name: "conjugate_ratio", Relation: core.RelDerivesFrom},
		},
	},
	{
		Name:        "zeckendorf",
		Level:       2,
		Category:    core.CategoryDecomposition,
		Description: "unique sum of non-consecutive Fibonacci numbers",
		Dependencies: []core.Dependency{
			{Name: "fibonacci", Relation: core.RelRequires},
		},
	},
	{
		Name:        "cassini_identity",
		Level:       2,
		Category:    core.CategoryProperty,
		Description: "F(n−1)·F(n+1) − F(n)² = (−1)ⁿ",
		Dependencies: []core.Dependency{
			{Name: "fibonacci", Relation: core.RelRequires},
		},
	},
	{
		Name:        "golden_power",
		Level:       2,
		Category:    core.CategoryOperation,
		Description: "φⁿ = F(n)·φ + F(n−1)",
		Dependencies: []core.Dependency{
			{Name: "fibonacci", Relation: core.RelRequires},
			{Name: "golden_ratio", Relation: core.RelUses},
		},
	},
	{
		Name:        "negafibonacci",
		Level:       2,
		Category:    core.CategorySequence,
		Description: "F(−n) = (−1)ⁿ⁺¹·F(n)",
		Dependencies: []core.Dependency{
			{Name: "fibonacci", Relation: core.RelDerivesFrom},
		},
	},
	{
		Name:        "zeckendorf_shift",
		Level:       3,
		Category:    core.CategoryOperation,
		Description: "Fibonacci multiplication via Zeckendorf index shifting",
		Dependencies: []core.Dependency{
			{Name: "zeckendorf", Relation: core.RelRequires},
		},
	},
	{
		Name:        "catalan_identity",
		Level:       3,
		Category:    core.CategoryProperty,
		Description: "F(n)² − F(n−r)·F(n+r) = (−1)ⁿ⁻ʳ·F(r)², Cassini generalized",
		Dependencies: []core.Dependency{
			{Name: "fibonacci", Relation: core.RelRequires},
			{Name: "cassini_identity", Relation: core.RelDerivesFrom},
		},
	},
	{
		Name:        "pisano_period",
		Level:       3,
		Category:    core.CategoryProperty,
		Description: "period of F(n) mod m",
		Dependencies: []core.Dependency{
			{Name: "fibonacci", Relation: core.RelRequires},
		},
	},
}

// Builtin returns a fresh graph holding the reference table. The table is
// static and known-consistent; a construction failure is a programmer
// error in this file, hence the panic (template.Must style).
func Builtin() *core.Graph {
	g := core.NewGraph()
	for _, sym := range builtinTable {
		if err := g.Upsert(sym); err != nil {
			panic(fmt.Sprintf("seed: builtin table is inconsistent: %v", err))
		}
	}
	return g
}

// BuiltinClaims returns the independence assertions maintained alongside
// the table: sibling branches that must never grow a dependency path.
func BuiltinClaims() []independence.Claim {
	return []independence.Claim{
		{SymbolA: "lucas", SymbolB: "zeckendorf", Independent: true},
		{SymbolA: "zeckendorf", SymbolB: "cassini_identity", Independent: true},
		{SymbolA: "golden_power", SymbolB: "pisano_period", Independent: true},
		{SymbolA: "negafibonacci", SymbolB: "lucas", Independent: true},
	}
}
