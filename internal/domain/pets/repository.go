package pets

import "context"

// Repository es el almacenamiento del registro. Las implementaciones
// mantienen el nombre único y el orden de inserción.
type Repository interface {
	Add(ctx context.Context, p Pet) error
	// Delete no falla si el nombre no existe.
	Delete(ctx context.Context, name string) error
	GetByName(ctx context.Context, name string) (Pet, error)
	List(ctx context.Context) ([]Pet, error)
	// ReplaceAll reemplaza todo de forma atómica: si falla, no cambia nada.
	ReplaceAll(ctx context.Context, items []Pet) error
}
