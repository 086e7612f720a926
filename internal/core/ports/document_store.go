package ports

import "go.trai.ch/repin/internal/core/domain"

// DocumentStore defines the interface for reading and writing manifest
// documents. The core only ever sees fully parsed, structurally valid
// manifests; all document I/O and validation lives behind this port.
//
//go:generate mockgen -source=document_store.go -destination=mocks/mock_document_store.go -package=mocks
type DocumentStore interface {
	// Load reads and parses the manifest document at the given path.
	Load(path string) (*domain.Manifest, error)

	// Save writes the manifest document to the given path, replacing any
	// existing content.
	Save(path string, m *domain.Manifest) error
}
