package domain

import (
	"slices"
	"strings"
)

// Report is the outcome of a Check run. The orphan slices are sorted so
// repeated runs over unchanged inputs render identically.
type Report struct {
	// OrphanedConda lists pinned conda names absent from the unpinned union.
	OrphanedConda []string

	// OrphanedPip lists pinned pip names absent from the unpinned union.
	OrphanedPip []string
}

// Clean reports whether the pinned manifest is fully covered by the
// unpinned manifests.
func (r Report) Clean() bool {
	return len(r.OrphanedConda) == 0 && len(r.OrphanedPip) == 0
}

// Render formats the orphan listing for human consumption, grouped by
// channel. Returns the empty string for a clean report.
func (r Report) Render() string {
	if r.Clean() {
		return ""
	}

	var b strings.Builder
	b.WriteString("ERROR: Found pinned packages without a corresponding entry\n")
	b.WriteString("in any unpinned manifest.\n")
	b.WriteString("\n")
	b.WriteString("Add the package to the appropriate unpinned manifest, then run\n")
	b.WriteString("'repin prune' to regenerate the pinned manifest.\n")
	b.WriteString("\n")

	if len(r.OrphanedConda) > 0 {
		b.WriteString("Orphaned conda packages:\n")
		for _, pkg := range r.OrphanedConda {
			b.WriteString("  - " + pkg + "\n")
		}
	}
	if len(r.OrphanedPip) > 0 {
		b.WriteString("Orphaned pip packages:\n")
		for _, pkg := range r.OrphanedPip {
			b.WriteString("  - " + pkg + "\n")
		}
	}
	return b.String()
}

// Check compares the pinned manifest's canonical name sets against the union
// of the unpinned manifests' sets and reports every pinned name with no
// unpinned counterpart in the same channel. It is a pure function: no
// manifest is mutated and nothing is written.
func Check(pinned Manifest, unpinned []Manifest) Report {
	pinnedSet := ParseDeps(pinned.Dependencies)
	union := unionAll(unpinned)

	return Report{
		OrphanedConda: difference(pinnedSet.Conda, union.Conda),
		OrphanedPip:   difference(pinnedSet.Pip, union.Pip),
	}
}

// Prune rebuilds the pinned manifest keeping only declarations whose
// canonical name appears in the unpinned union for the same channel.
// Declaration strings are preserved verbatim; membership is the only thing
// filtered. The result is deduplicated and sorted, the pip block is omitted
// when empty, and the environment locator is dropped.
func Prune(pinned Manifest, unpinned []Manifest) Manifest {
	union := unionAll(unpinned)

	// Split the pinned declarations by channel, keeping raw strings intact.
	var condaSpecs, pipSpecs []string
	for _, dep := range pinned.Dependencies {
		switch dep.Kind {
		case KindPipBlock:
			pipSpecs = append(pipSpecs, dep.Pip...)
		case KindPlain:
			condaSpecs = append(condaSpecs, dep.Spec)
		}
	}

	keptConda := filterSpecs(condaSpecs, union.Conda)
	keptPip := filterSpecs(pipSpecs, union.Pip)

	deps := make([]Declaration, 0, len(keptConda)+1)
	for _, spec := range keptConda {
		deps = append(deps, Plain(spec))
	}
	if len(keptPip) > 0 {
		deps = append(deps, PipBlock(keptPip))
	}

	return Manifest{
		Name:         pinned.Name,
		Channels:     slices.Clone(pinned.Channels),
		Dependencies: deps,
	}
}

// filterSpecs keeps the spec strings whose extracted name is in names, then
// deduplicates by full string value and sorts for diff-stable output.
func filterSpecs(specs []string, names map[string]bool) []string {
	var kept []string
	for _, spec := range specs {
		if names[ExtractName(spec)] {
			kept = append(kept, spec)
		}
	}
	slices.Sort(kept)
	return slices.Compact(kept)
}

// difference returns the sorted elements of a not present in b.
func difference(a, b map[string]bool) []string {
	var diff []string
	for name := range a {
		if !b[name] {
			diff = append(diff, name)
		}
	}
	slices.Sort(diff)
	return diff
}
