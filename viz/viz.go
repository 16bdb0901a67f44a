// Package viz is the textual diagram adapter over core.Graph.
package viz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/symgraph/core"
)

// arrowFor maps a relation tag to its Mermaid arrow syntax. Presentation
// only; the validation engine never reads these.
func arrowFor(rel core.Relation) string {
	switch rel {
	case core.RelUses:
		return "-.->"
	case core.RelDerivesFrom:
		return "==>"
	case core.RelEquivalentTo:
		return "<-->"
	default: // RelRequires
		return "-->"
	}
}

// nodeFor shapes a node by category: constants round, operations square,
// sequences stadium, decompositions subroutine, properties rhombus.
func nodeFor(name string, cat core.Category) string {
	switch cat {
	case core.CategoryConstant:
		return fmt.Sprintf("%s((%s))", name, name)
	case core.CategorySequence:
		return fmt.Sprintf("%s([%s])", name, name)
	case core.CategoryDecomposition:
		return fmt.Sprintf("%s[[%s]]", name, name)
	case core.CategoryProperty:
		return fmt.Sprintf("%s{%s}", name, name)
	default: // CategoryOperation
		return fmt.Sprintf("%s[%s]", name, name)
	}
}

// Render produces the Mermaid flowchart for g.
//
// Layout: one subgraph per declared level in ascending order, an
// "unresolved" subgraph for placeholder nodes when any exist, then every
// edge sorted by (from, to). Output is byte-identical for identical
// input.
func Render(g *core.Graph) string {
	var b strings.Builder
	b.WriteString("graph TD\n")
	if g == nil {
		return b.String()
	}

	// Group defined symbols by level.
	byLevel := make(map[int][]string)
	var levelKeys []int
	for _, name := range g.Names() {
		sym, ok := g.Symbol(name)
		if !ok {
			continue
		}
		if _, seen := byLevel[sym.Level]; !seen {
			levelKeys = append(levelKeys, sym.Level)
		}
		byLevel[sym.Level] = append(byLevel[sym.Level], name) // Names() sorted
	}
	sort.Ints(levelKeys)

	for _, lvl := range levelKeys {
		fmt.Fprintf(&b, "  subgraph L%d[\"level %d\"]\n", lvl, lvl)
		for _, name := range byLevel[lvl] {
			sym, _ := g.Symbol(name)
			fmt.Fprintf(&b, "    %s\n", nodeFor(name, sym.Category))
		}
		b.WriteString("  end\n")
	}

	// Placeholders: referenced but never defined.
	if missing := g.Missing(); len(missing) > 0 {
		b.WriteString("  subgraph unresolved[\"unresolved\"]\n")
		for _, name := range missing {
			fmt.Fprintf(&b, "    %s[%s]\n", name, name)
		}
		b.WriteString("  end\n")
	}

	// Edges, already sorted by (From, To).
	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "  %s %s %s\n", e.From, arrowFor(e.Relation), e.To)
	}
	return b.String()
}
