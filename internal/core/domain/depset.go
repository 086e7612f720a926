package domain

// DepSet holds the canonical package names of one or more manifests, split
// by package-source channel. The conda and pip namespaces are fully
// independent: the same name may appear in both without conflict.
type DepSet struct {
	Conda map[string]bool
	Pip   map[string]bool
}

// NewDepSet returns an empty DepSet.
func NewDepSet() DepSet {
	return DepSet{
		Conda: make(map[string]bool),
		Pip:   make(map[string]bool),
	}
}

// ParseDeps canonicalizes a manifest's declaration list into its per-channel
// name sets. Plain declarations accumulate into the conda set, pip block
// contents into the pip set. Multiple pip blocks are merged permissively.
func ParseDeps(declarations []Declaration) DepSet {
	s := NewDepSet()
	for _, dep := range declarations {
		switch dep.Kind {
		case KindPipBlock:
			for _, spec := range dep.Pip {
				s.Pip[ExtractName(spec)] = true
			}
		case KindPlain:
			s.Conda[ExtractName(dep.Spec)] = true
		}
	}
	return s
}

// Union returns a new DepSet containing every name present in either set.
// Neither input is modified.
func (s DepSet) Union(other DepSet) DepSet {
	u := NewDepSet()
	for name := range s.Conda {
		u.Conda[name] = true
	}
	for name := range other.Conda {
		u.Conda[name] = true
	}
	for name := range s.Pip {
		u.Pip[name] = true
	}
	for name := range other.Pip {
		u.Pip[name] = true
	}
	return u
}

// unionAll parses every manifest and folds the results into one DepSet.
func unionAll(manifests []Manifest) DepSet {
	u := NewDepSet()
	for _, m := range manifests {
		u = u.Union(ParseDeps(m.Dependencies))
	}
	return u
}
