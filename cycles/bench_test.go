package cycles_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/symgraph/core"
	"github.com/katalvlaran/symgraph/cycles"
)

// buildChainGraph returns a linear dependency chain of n symbols.
func buildChainGraph(n int) *core.Graph {
	g := core.NewGraph()
	prev := ""
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("s%06d", i)
		var deps []string
		if prev != "" {
			deps = []string{prev}
		}
		_ = g.AddSymbol(name, i, deps, core.CategoryOperation, "")
		prev = name
	}
	return g
}

// BenchmarkDetect_Chain measures detection over an acyclic chain.
func BenchmarkDetect_Chain(b *testing.B) {
	for _, n := range []int{100, 1_000, 10_000} {
		g := buildChainGraph(n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, _, err := cycles.Detect(g); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkDetect_Cyclic measures detection when a back-edge closes the
// chain into one long cycle.
func BenchmarkDetect_Cyclic(b *testing.B) {
	const n = 1_000
	g := buildChainGraph(n)
	_ = g.AddSymbol("s000000", 0, []string{fmt.Sprintf("s%06d", n-1)}, core.CategoryOperation, "")

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, _, err := cycles.Detect(g); err != nil {
			b.Fatal(err)
		}
	}
}
