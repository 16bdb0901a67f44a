// File: load.go
// Role: YAML ingestion of external symbol tables and claims.
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/symgraph/core"
	"github.com/katalvlaran/symgraph/independence"
)

// ErrNegativeLevel is returned when a loaded symbol declares a level
// below zero.
var ErrNegativeLevel = errors.New("seed: negative level")

// Registry is the result of loading one document: a ready graph plus the
// independence claims declared next to it.
type Registry struct {
	Graph  *core.Graph
	Claims []independence.Claim
}

// document mirrors the YAML layout.
type document struct {
	Symbols []symbolDoc `yaml:"symbols"`
	Claims  []claimDoc  `yaml:"claims"`
}

type symbolDoc struct {
	Name         string   `yaml:"name"`
	Level        int      `yaml:"level"`
	Category     string   `yaml:"category"`
	Description  string   `yaml:"description"`
	Dependencies []depDoc `yaml:"dependencies"`
}

// depDoc accepts either a bare scalar name or a {name, relation} mapping.
type depDoc struct {
	Name     string `yaml:"name"`
	Relation string `yaml:"relation"`
}

// UnmarshalYAML lets a dependency be written as "phi" or as
// {name: phi, relation: derives-from}.
func (d *depDoc) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		d.Name = value.Value
		return nil
	}
	type plain depDoc
	return value.Decode((*plain)(d))
}

type claimDoc struct {
	A           string `yaml:"a"`
	B           string `yaml:"b"`
	Independent bool   `yaml:"independent"`
}

// Load parses one YAML document from r and builds the Registry.
//
// Every symbol is validated on the way in: category and relation tags
// against their closed sets (core sentinels), level non-negativity here.
// Dependencies naming symbols the document never defines become
// placeholders, exactly as with incremental AddSymbol calls; the
// validate package reports them, Load does not.
func Load(r io.Reader) (*Registry, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("seed: read: %w", err)
	}

	var doc document
	if err = yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("seed: parse: %w", err)
	}

	g := core.NewGraph()
	for _, s := range doc.Symbols {
		if s.Level < 0 {
			return nil, fmt.Errorf("%w: symbol %q declares level %d", ErrNegativeLevel, s.Name, s.Level)
		}
		cat, cerr := core.ParseCategory(s.Category)
		if cerr != nil {
			return nil, fmt.Errorf("seed: symbol %q: %w", s.Name, cerr)
		}
		deps := make([]core.Dependency, 0, len(s.Dependencies))
		for _, d := range s.Dependencies {
			rel, rerr := core.ParseRelation(d.Relation)
			if rerr != nil {
				return nil, fmt.Errorf("seed: symbol %q: %w", s.Name, rerr)
			}
			deps = append(deps, core.Dependency{Name: d.Name, Relation: rel})
		}
		if err = g.Upsert(core.Symbol{
			Name:         s.Name,
			Level:        s.Level,
			Category:     cat,
			Description:  s.Description,
			Dependencies: deps,
		}); err != nil {
			return nil, fmt.Errorf("seed: symbol %q: %w", s.Name, err)
		}
	}

	claims := make([]independence.Claim, 0, len(doc.Claims))
	for _, c := range doc.Claims {
		claims = append(claims, independence.Claim{
			SymbolA:     c.A,
			SymbolB:     c.B,
			Independent: c.Independent,
		})
	}
	return &Registry{Graph: g, Claims: claims}, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seed: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}
