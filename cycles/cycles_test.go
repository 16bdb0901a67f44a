package cycles_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symgraph/core"
	"github.com/katalvlaran/symgraph/cycles"
)

// chain registers syms so each depends on the previous one, levels ascending.
func chain(t *testing.T, g *core.Graph, syms ...string) {
	t.Helper()
	for i, s := range syms {
		var deps []string
		if i > 0 {
			deps = []string{syms[i-1]}
		}
		require.NoError(t, g.AddSymbol(s, i, deps, core.CategoryOperation, ""))
	}
}

// TestDetect_NilGraph verifies the nil sentinel.
func TestDetect_NilGraph(t *testing.T) {
	has, cyc, err := cycles.Detect(nil)
	assert.ErrorIs(t, err, cycles.ErrGraphNil)
	assert.False(t, has)
	assert.Nil(t, cyc)
}

// TestDetect_EmptyGraph treats an empty graph as cycle-free.
func TestDetect_EmptyGraph(t *testing.T) {
	has, cyc, err := cycles.Detect(core.NewGraph())
	require.NoError(t, err)
	assert.False(t, has)
	assert.Nil(t, cyc)
}

// TestDetect_AcyclicChain ensures a linear hierarchy reports no cycles.
func TestDetect_AcyclicChain(t *testing.T) {
	g := core.NewGraph()
	chain(t, g, "phi", "fibonacci", "zeckendorf", "cassini")

	has, cyc, err := cycles.Detect(g)
	require.NoError(t, err)
	assert.False(t, has)
	assert.Empty(t, cyc)
}

// TestDetect_TwoNodeCycle covers the mutual-dependency case: the loop is
// reported once, closed by repeating the entry node.
func TestDetect_TwoNodeCycle(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddSymbol("x", 0, []string{"y"}, core.CategoryOperation, ""))
	require.NoError(t, g.AddSymbol("y", 0, []string{"x"}, core.CategoryOperation, ""))

	has, cyc, err := cycles.Detect(g)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"x", "y", "x"}}, cyc)
}

// TestDetect_ThreeNodeCycle verifies deterministic discovery from the
// lexicographically first node.
func TestDetect_ThreeNodeCycle(t *testing.T) {
	g := core.NewGraph()
	// Dependency edges c→a, a→b, b→c: one directed 3-cycle.
	require.NoError(t, g.AddSymbol("a", 0, []string{"c"}, core.CategoryOperation, ""))
	require.NoError(t, g.AddSymbol("b", 1, []string{"a"}, core.CategoryOperation, ""))
	require.NoError(t, g.AddSymbol("c", 2, []string{"b"}, core.CategoryOperation, ""))

	has, cyc, err := cycles.Detect(g)
	require.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"a", "b", "c", "a"}}, cyc)
}

// TestDetect_DisjointCycles ensures traversal restarts find every
// separate loop, and acyclic satellites stay out of the reports.
func TestDetect_DisjointCycles(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddSymbol("a", 0, []string{"b"}, core.CategoryOperation, ""))
	require.NoError(t, g.AddSymbol("b", 0, []string{"a"}, core.CategoryOperation, ""))
	require.NoError(t, g.AddSymbol("p", 0, []string{"r"}, core.CategoryOperation, ""))
	require.NoError(t, g.AddSymbol("q", 1, []string{"p"}, core.CategoryOperation, ""))
	require.NoError(t, g.AddSymbol("r", 2, []string{"q"}, core.CategoryOperation, ""))
	require.NoError(t, g.AddSymbol("solo", 0, nil, core.CategoryConstant, ""))

	has, cyc, err := cycles.Detect(g)
	require.NoError(t, err)
	assert.True(t, has)
	require.Len(t, cyc, 2)
	assert.Equal(t, []string{"a", "b", "a"}, cyc[0])
	assert.Equal(t, []string{"p", "q", "r", "p"}, cyc[1])
}

// TestDetect_CycleWithTail reports the loop without the acyclic prefix
// that led into it.
func TestDetect_CycleWithTail(t *testing.T) {
	g := core.NewGraph()
	// entry → m → n → m : the tail "entry" is not part of the loop.
	require.NoError(t, g.AddSymbol("m", 1, []string{"entry", "n"}, core.CategoryOperation, ""))
	require.NoError(t, g.AddSymbol("n", 2, []string{"m"}, core.CategoryOperation, ""))
	require.NoError(t, g.AddSymbol("entry", 0, nil, core.CategoryConstant, ""))

	has, cyc, err := cycles.Detect(g)
	require.NoError(t, err)
	assert.True(t, has)
	require.Len(t, cyc, 1)
	assert.Equal(t, []string{"m", "n", "m"}, cyc[0])
}

// TestDetect_Deterministic runs detection twice on the same graph and
// expects byte-identical reports.
func TestDetect_Deterministic(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddSymbol("a", 0, []string{"c"}, core.CategoryOperation, ""))
	require.NoError(t, g.AddSymbol("b", 1, []string{"a"}, core.CategoryOperation, ""))
	require.NoError(t, g.AddSymbol("c", 2, []string{"b"}, core.CategoryOperation, ""))

	_, first, err := cycles.Detect(g)
	require.NoError(t, err)
	_, second, err := cycles.Detect(g)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestDetect_DeepChainIterative guards the explicit-stack implementation:
// a chain far deeper than any comfortable recursion depth must not panic.
func TestDetect_DeepChainIterative(t *testing.T) {
	g := core.NewGraph()
	const depth = 50_000
	prev := ""
	for i := 0; i < depth; i++ {
		name := fmt.Sprintf("s%06d", i)
		var deps []string
		if prev != "" {
			deps = []string{prev}
		}
		require.NoError(t, g.AddSymbol(name, i, deps, core.CategoryOperation, ""))
		prev = name
	}

	has, cyc, err := cycles.Detect(g)
	require.NoError(t, err)
	assert.False(t, has)
	assert.Empty(t, cyc)
}
