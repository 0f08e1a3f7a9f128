package memory

import (
	"context"
	"sync"

	"neighborhood-pets/internal/domain/pets"
)

// petRepo comparte un pets.Registry entre requests; el registry no es
// concurrente, así que todo acceso pasa por mu.
type petRepo struct {
	mu  sync.RWMutex
	reg *pets.Registry
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		reg: pets.NewRegistry(),
	}
}

func (r *petRepo) Add(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.reg.Add(p.Name, p.Species, p.Owner)
}

func (r *petRepo) Delete(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reg.Delete(name)
	return nil
}

func (r *petRepo) GetByName(ctx context.Context, name string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.reg.Get(name)
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.reg.Records(), nil
}

func (r *petRepo) ReplaceAll(ctx context.Context, items []pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.reg.Replace(items)
}
