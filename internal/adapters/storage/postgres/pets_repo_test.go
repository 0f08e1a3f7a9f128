package postgres

import (
	"context"
	"os"
	"testing"

	"neighborhood-pets/internal/domain/pets"

	"github.com/stretchr/testify/require"
)

// Requiere un Postgres real: PETS_TEST_PG_DSN=postgres://... go test ./...
func openTestDB(t *testing.T) *PetsRepo {
	t.Helper()

	dsn := os.Getenv("PETS_TEST_PG_DSN")
	if dsn == "" {
		t.Skip("PETS_TEST_PG_DSN not set")
	}

	db, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, EnsureSchema(ctx, db))
	_, err = db.ExecContext(ctx, `TRUNCATE pets`)
	require.NoError(t, err)

	return NewPetsRepo(db)
}

func TestPetsRepo_Postgres(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, pets.Pet{Name: "Fido", Species: "Dog", Owner: "Alice"}))
	require.NoError(t, repo.Add(ctx, pets.Pet{Name: "Whiskers", Species: "Cat", Owner: "Bob"}))
	require.ErrorIs(t, repo.Add(ctx, pets.Pet{Name: "Fido", Species: "Cat", Owner: "Eve"}), pets.ErrDuplicateName)

	p, err := repo.GetByName(ctx, "Whiskers")
	require.NoError(t, err)
	require.Equal(t, "Bob", p.Owner)

	require.NoError(t, repo.Delete(ctx, "Fido"))
	_, err = repo.GetByName(ctx, "Fido")
	require.ErrorIs(t, err, pets.ErrNotFound)

	err = repo.ReplaceAll(ctx, []pets.Pet{
		{Name: "A", Species: "Dog", Owner: "x"},
		{Name: "A", Species: "Dog", Owner: "y"},
	})
	require.ErrorIs(t, err, pets.ErrDuplicateName)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []pets.Pet{{Name: "Whiskers", Species: "Cat", Owner: "Bob"}}, items)

	require.NoError(t, repo.ReplaceAll(ctx, []pets.Pet{
		{Name: "Z", Species: "Fish", Owner: "z"},
		{Name: "B", Species: "Bird", Owner: "b"},
	}))
	items, err = repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []pets.Pet{
		{Name: "Z", Species: "Fish", Owner: "z"},
		{Name: "B", Species: "Bird", Owner: "b"},
	}, items)
}
