package asset

import (
	"fmt"

	"BaristaSimulator/internal/viewpoint"
)

// Source is anything a viewpoint set can be loaded from and saved to.
type Source interface {
	Load() ([]viewpoint.Viewpoint, error)
	Save([]viewpoint.Viewpoint) error
}

// Edit loads the stored set into a store, applies fn and saves the result.
// An empty stored set starts from the defaults. Nothing is saved when fn
// fails.
func Edit(src Source, fn func(*viewpoint.Store) error) ([]viewpoint.Viewpoint, error) {
	views, err := src.Load()
	if err != nil {
		return nil, err
	}

	store := viewpoint.NewStore()
	if !store.LoadFrom(views) {
		store.SeedDefaults()
	}

	if err := fn(store); err != nil {
		return nil, err
	}

	result := store.Snapshot()
	if err := src.Save(result); err != nil {
		return nil, fmt.Errorf("asset: edit: %w", err)
	}
	return result, nil
}
