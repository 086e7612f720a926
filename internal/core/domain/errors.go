package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingDependencies is returned when a manifest document has no
	// dependencies key.
	ErrMissingDependencies = zerr.New("manifest has no dependencies key")

	// ErrMalformedDeclaration is returned when a dependency entry is neither
	// a plain string nor a pip block with a list of strings.
	ErrMalformedDeclaration = zerr.New("malformed dependency declaration")

	// ErrNoUnpinnedManifests is returned when an operation is invoked without
	// at least one unpinned manifest to reconcile against.
	ErrNoUnpinnedManifests = zerr.New("no unpinned manifests specified")

	// ErrDriftDetected is returned by the check operation when the pinned
	// manifest contains packages absent from the unpinned manifests. It marks
	// an expected outcome, not a tool failure; callers map it to an exit code.
	ErrDriftDetected = zerr.New("pinned manifest has drifted from unpinned manifests")
)
