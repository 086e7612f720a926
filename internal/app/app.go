// Package app implements the application layer for repin.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/repin/internal/core/domain"
	"go.trai.ch/repin/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	store  ports.DocumentStore
	logger ports.Logger
}

// New creates a new App instance.
func New(store ports.DocumentStore, logger ports.Logger) *App {
	return &App{
		store:  store,
		logger: logger,
	}
}

// Check loads the pinned and unpinned manifests and reports every pinned
// package with no corresponding unpinned entry. It never writes anything.
func (a *App) Check(ctx context.Context, pinnedPath string, unpinnedPaths []string) (domain.Report, error) {
	pinned, unpinned, err := a.loadAll(ctx, pinnedPath, unpinnedPaths)
	if err != nil {
		return domain.Report{}, err
	}

	return domain.Check(*pinned, unpinned), nil
}

// Prune rebuilds the pinned manifest keeping only packages declared in the
// unpinned manifests and writes the result back through the document store.
func (a *App) Prune(ctx context.Context, pinnedPath string, unpinnedPaths []string) error {
	pinned, unpinned, err := a.loadAll(ctx, pinnedPath, unpinnedPaths)
	if err != nil {
		return err
	}

	pruned := domain.Prune(*pinned, unpinned)
	if err := a.store.Save(pinnedPath, &pruned); err != nil {
		return zerr.Wrap(err, "failed to write pruned manifest")
	}

	a.logger.Info(fmt.Sprintf("pruned %s against %d unpinned manifests", pinnedPath, len(unpinned)))
	return nil
}

// loadAll reads every input document before reconciliation begins. The
// loads run concurrently; reconciliation itself receives fully materialized
// values and holds no references back into the store.
func (a *App) loadAll(ctx context.Context, pinnedPath string, unpinnedPaths []string) (*domain.Manifest, []domain.Manifest, error) {
	if len(unpinnedPaths) == 0 {
		return nil, nil, domain.ErrNoUnpinnedManifests
	}

	g, _ := errgroup.WithContext(ctx)

	var pinned *domain.Manifest
	g.Go(func() error {
		m, err := a.store.Load(pinnedPath)
		if err != nil {
			return zerr.Wrap(err, "failed to load pinned manifest")
		}
		pinned = m
		return nil
	})

	unpinned := make([]domain.Manifest, len(unpinnedPaths))
	for i, path := range unpinnedPaths {
		g.Go(func() error {
			m, err := a.store.Load(path)
			if err != nil {
				return zerr.Wrap(err, "failed to load unpinned manifest")
			}
			unpinned[i] = *m
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return pinned, unpinned, nil
}
