package yamldoc

import (
	"go.trai.ch/repin/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// document mirrors the on-disk YAML manifest shape.
type document struct {
	Name     string   `yaml:"name,omitempty"`
	Channels []string `yaml:"channels,omitempty"`

	// Dependencies is a pointer so a document missing the key entirely can
	// be distinguished from one with an empty list.
	Dependencies *[]dependency `yaml:"dependencies"`

	Prefix string `yaml:"prefix,omitempty"`
}

// dependency is the union-typed node in the dependencies list: either a
// plain spec string or a mapping whose single key is the pip tag.
type dependency struct {
	spec     string
	pip      []string
	pipBlock bool
}

// UnmarshalYAML implements custom YAML unmarshaling for dependency.
// Accepts either a scalar spec string or a single-key pip mapping whose
// value is a list of strings. Anything else is a malformed declaration.
func (d *dependency) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if err := node.Decode(&d.spec); err != nil {
			return zerr.With(domain.ErrMalformedDeclaration, "line", node.Line)
		}
		return nil

	case yaml.MappingNode:
		var block map[string][]string
		if err := node.Decode(&block); err != nil {
			return zerr.With(domain.ErrMalformedDeclaration, "line", node.Line)
		}
		specs, ok := block["pip"]
		if !ok || len(block) != 1 {
			return zerr.With(domain.ErrMalformedDeclaration, "line", node.Line)
		}
		d.pip = specs
		d.pipBlock = true
		return nil

	default:
		return zerr.With(domain.ErrMalformedDeclaration, "line", node.Line)
	}
}

// MarshalYAML implements custom YAML marshaling for dependency.
func (d dependency) MarshalYAML() (any, error) {
	if d.pipBlock {
		return map[string][]string{"pip": d.pip}, nil
	}
	return d.spec, nil
}

// toDomain converts the parsed document into a domain manifest value.
func (doc *document) toDomain() *domain.Manifest {
	deps := make([]domain.Declaration, 0, len(*doc.Dependencies))
	for _, d := range *doc.Dependencies {
		if d.pipBlock {
			deps = append(deps, domain.PipBlock(d.pip))
		} else {
			deps = append(deps, domain.Plain(d.spec))
		}
	}
	return &domain.Manifest{
		Name:         doc.Name,
		Channels:     doc.Channels,
		Dependencies: deps,
		Prefix:       doc.Prefix,
	}
}

// fromDomain converts a domain manifest back into its document shape.
func fromDomain(m *domain.Manifest) document {
	deps := make([]dependency, 0, len(m.Dependencies))
	for _, decl := range m.Dependencies {
		if decl.Kind == domain.KindPipBlock {
			deps = append(deps, dependency{pip: decl.Pip, pipBlock: true})
		} else {
			deps = append(deps, dependency{spec: decl.Spec})
		}
	}
	return document{
		Name:         m.Name,
		Channels:     m.Channels,
		Dependencies: &deps,
		Prefix:       m.Prefix,
	}
}
