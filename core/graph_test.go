package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symgraph/core"
)

// TestAddSymbol_Basic verifies registration, node creation and adjacency.
func TestAddSymbol_Basic(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddSymbol("phi", 0, nil, core.CategoryConstant, "golden ratio"))
	require.NoError(t, g.AddSymbol("fibonacci", 1, []string{"phi"}, core.CategorySequence, "F(n)"))

	assert.Equal(t, []string{"fibonacci", "phi"}, g.Names()) // sorted
	assert.True(t, g.Defined("phi"))
	assert.True(t, g.Defined("fibonacci"))

	dependents, err := g.DependentsOf("phi")
	require.NoError(t, err)
	assert.Equal(t, []string{"fibonacci"}, dependents)

	deps, err := g.DependenciesOf("fibonacci")
	require.NoError(t, err)
	assert.Equal(t, []string{"phi"}, deps)
}

// TestAddSymbol_PlaceholderForUndefinedDependency ensures a referenced but
// undefined dependency becomes a traversable placeholder, not a failure.
func TestAddSymbol_PlaceholderForUndefinedDependency(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddSymbol("zeckendorf", 2, []string{"fibonacci"}, core.CategoryDecomposition, ""))

	assert.Equal(t, []string{"fibonacci", "zeckendorf"}, g.Names())
	assert.False(t, g.Defined("fibonacci"))
	assert.Equal(t, []string{"fibonacci"}, g.Missing())

	// Placeholder participates in adjacency.
	dependents, err := g.DependentsOf("fibonacci")
	require.NoError(t, err)
	assert.Equal(t, []string{"zeckendorf"}, dependents)
}

// TestUpsert_RejectsInvalidRecords covers every validation sentinel.
func TestUpsert_RejectsInvalidRecords(t *testing.T) {
	g := core.NewGraph()

	err := g.AddSymbol("", 0, nil, core.CategoryConstant, "")
	assert.ErrorIs(t, err, core.ErrEmptySymbolName)

	err = g.AddSymbol("loop", 1, []string{"loop"}, core.CategoryOperation, "")
	assert.ErrorIs(t, err, core.ErrSelfDependency)

	err = g.AddSymbol("odd", 1, nil, core.Category("mystery"), "")
	assert.ErrorIs(t, err, core.ErrUnknownCategory)

	err = g.Upsert(core.Symbol{
		Name:         "tagged",
		Level:        1,
		Category:     core.CategoryOperation,
		Dependencies: []core.Dependency{{Name: "phi", Relation: core.Relation("touches")}},
	})
	assert.ErrorIs(t, err, core.ErrUnknownRelation)

	// Failed upserts leave the graph untouched.
	assert.Empty(t, g.Names())
}

// TestUpsert_ReplacesDefinition verifies re-adding a name swaps the
// dependency set and cleans up stale edges plus orphaned placeholders.
func TestUpsert_ReplacesDefinition(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddSymbol("phi", 0, nil, core.CategoryConstant, ""))
	require.NoError(t, g.AddSymbol("lucas", 1, []string{"phi", "ghost"}, core.CategorySequence, ""))
	assert.Equal(t, []string{"ghost"}, g.Missing())

	// Redefine lucas without the ghost dependency.
	require.NoError(t, g.AddSymbol("lucas", 1, []string{"phi"}, core.CategorySequence, "L(n)"))

	// The orphaned placeholder disappears with its last edge.
	assert.Empty(t, g.Missing())
	assert.Equal(t, []string{"lucas", "phi"}, g.Names())

	deps, err := g.DependenciesOf("lucas")
	require.NoError(t, err)
	assert.Equal(t, []string{"phi"}, deps)

	sym, ok := g.Symbol("lucas")
	require.True(t, ok)
	assert.Equal(t, "L(n)", sym.Description)
}

// TestUpsert_Idempotent confirms a repeated identical upsert is a no-op.
func TestUpsert_Idempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddSymbol("phi", 0, nil, core.CategoryConstant, ""))
	require.NoError(t, g.AddSymbol("fib", 1, []string{"phi"}, core.CategorySequence, ""))
	require.NoError(t, g.AddSymbol("fib", 1, []string{"phi"}, core.CategorySequence, ""))

	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
}

// TestEdges_SortedWithRelations checks edge records carry relation tags
// and come out in (From, To) order.
func TestEdges_SortedWithRelations(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Upsert(core.Symbol{
		Name:     "fibonacci",
		Level:    1,
		Category: core.CategorySequence,
		Dependencies: []core.Dependency{
			{Name: "psi", Relation: core.RelDerivesFrom},
			{Name: "phi", Relation: core.RelDerivesFrom},
		},
	}))
	require.NoError(t, g.AddSymbol("cassini", 2, []string{"fibonacci"}, core.CategoryProperty, ""))

	assert.Equal(t, []core.Edge{
		{From: "fibonacci", To: "cassini", Relation: core.RelRequires},
		{From: "phi", To: "fibonacci", Relation: core.RelDerivesFrom},
		{From: "psi", To: "fibonacci", Relation: core.RelDerivesFrom},
	}, g.Edges())
}

// TestQueries_UnknownName exercises the not-found sentinel.
func TestQueries_UnknownName(t *testing.T) {
	g := core.NewGraph()
	_, err := g.DependentsOf("nope")
	assert.ErrorIs(t, err, core.ErrSymbolNotFound)
	_, err = g.DependenciesOf("nope")
	assert.ErrorIs(t, err, core.ErrSymbolNotFound)

	_, ok := g.LevelOf("nope")
	assert.False(t, ok)
}

// TestClone_Independent verifies mutating the clone leaves the original
// untouched and vice versa.
func TestClone_Independent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddSymbol("phi", 0, nil, core.CategoryConstant, ""))
	require.NoError(t, g.AddSymbol("fib", 1, []string{"phi"}, core.CategorySequence, ""))

	c := g.Clone()
	require.NoError(t, c.AddSymbol("lucas", 1, []string{"phi"}, core.CategorySequence, ""))

	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 3, c.NodeCount())
	assert.Equal(t, g.Edges(), g.Clone().Edges())
}

// TestParseCategory_ParseRelation covers text round-trips for seed tables.
func TestParseCategory_ParseRelation(t *testing.T) {
	cat, err := core.ParseCategory("decomposition")
	require.NoError(t, err)
	assert.Equal(t, core.CategoryDecomposition, cat)

	_, err = core.ParseCategory("widget")
	assert.ErrorIs(t, err, core.ErrUnknownCategory)

	rel, err := core.ParseRelation("")
	require.NoError(t, err)
	assert.Equal(t, core.RelRequires, rel)

	rel, err = core.ParseRelation("equivalent-to")
	require.NoError(t, err)
	assert.Equal(t, core.RelEquivalentTo, rel)

	_, err = core.ParseRelation("near")
	assert.ErrorIs(t, err, core.ErrUnknownRelation)
}
