// Package domain contains the core domain models and reconciliation logic
// for pinned and unpinned environment manifests.
package domain

// DeclarationKind discriminates the two shapes a dependency entry can take.
type DeclarationKind int

const (
	// KindPlain is a single conda-style spec string, optionally carrying a
	// channel qualifier and version constraint (e.g. "conda-forge::numpy=1.2").
	KindPlain DeclarationKind = iota

	// KindPipBlock is a labeled sub-list of pip-style spec strings sourced
	// from the secondary package index.
	KindPipBlock
)

// Declaration is one entry in a manifest's dependency list. It is a tagged
// variant: either a plain spec string or a pip block. All parsing dispatches
// on Kind rather than inspecting the payload.
type Declaration struct {
	Kind DeclarationKind

	// Spec is the raw declaration string. Valid only for KindPlain.
	Spec string

	// Pip holds the pip block's spec strings. Valid only for KindPipBlock.
	Pip []string
}

// Plain constructs a plain declaration from a raw spec string.
func Plain(spec string) Declaration {
	return Declaration{Kind: KindPlain, Spec: spec}
}

// PipBlock constructs a pip block declaration from a list of spec strings.
func PipBlock(specs []string) Declaration {
	return Declaration{Kind: KindPipBlock, Pip: specs}
}

// Manifest is an in-memory environment document. It is a plain value:
// reconciliation never mutates a manifest, it returns freshly built ones.
type Manifest struct {
	// Name is the environment name. Carried through prune unchanged.
	Name string

	// Channels lists the conda channels. Carried through prune unchanged.
	Channels []string

	// Dependencies is the ordered declaration list. At most one pip block is
	// expected; additional blocks are tolerated and merged on parse.
	Dependencies []Declaration

	// Prefix is the environment locator of the pinned document. It is not
	// part of the reconciliation contract and is dropped by prune.
	Prefix string
}
