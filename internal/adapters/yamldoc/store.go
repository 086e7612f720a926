// Package yamldoc implements the manifest document store over YAML files.
package yamldoc

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/repin/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Store implements ports.DocumentStore using YAML documents on disk.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads and parses the manifest at the given path. Structural
// validation happens here: the reconciliation core never receives a
// partially valid manifest.
func (s *Store) Load(path string) (*domain.Manifest, error) {
	//nolint:gosec // path is provided by user
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse manifest"), "path", path)
	}

	if doc.Dependencies == nil {
		return nil, zerr.With(domain.ErrMissingDependencies, "path", path)
	}

	return doc.toDomain(), nil
}

// Save writes the manifest to the given path. When the encoded document is
// byte-identical to the existing file the write is skipped, so repeated
// prunes leave mtimes untouched.
func (s *Store) Save(path string, m *domain.Manifest) error {
	data, err := yaml.Marshal(fromDomain(m))
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to encode manifest"), "path", path)
	}

	existing, err := os.ReadFile(filepath.Clean(path)) //nolint:gosec // path is provided by user
	switch {
	case err == nil:
		if xxhash.Sum64(existing) == xxhash.Sum64(data) {
			return nil
		}
	case !errors.Is(err, fs.ErrNotExist):
		return zerr.With(zerr.Wrap(err, "failed to read existing manifest"), "path", path)
	}

	//nolint:gosec // manifest files are world-readable by convention
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write manifest"), "path", path)
	}
	return nil
}
