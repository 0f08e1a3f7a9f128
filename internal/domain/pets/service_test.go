package pets

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoDown = errors.New("repo: down")

type testRepo struct {
	reg  *Registry
	fail bool
}

func newTestRepo() *testRepo {
	return &testRepo{reg: NewRegistry()}
}

func (r *testRepo) Add(ctx context.Context, p Pet) error {
	if r.fail {
		return errRepoDown
	}
	return r.reg.Add(p.Name, p.Species, p.Owner)
}

func (r *testRepo) Delete(ctx context.Context, name string) error {
	if r.fail {
		return errRepoDown
	}
	r.reg.Delete(name)
	return nil
}

func (r *testRepo) GetByName(ctx context.Context, name string) (Pet, error) {
	if r.fail {
		return Pet{}, errRepoDown
	}
	return r.reg.Get(name)
}

func (r *testRepo) List(ctx context.Context) ([]Pet, error) {
	if r.fail {
		return nil, errRepoDown
	}
	return r.reg.Records(), nil
}

func (r *testRepo) ReplaceAll(ctx context.Context, items []Pet) error {
	if r.fail {
		return errRepoDown
	}
	return r.reg.Replace(items)
}

// -------------------------
// Tests
// -------------------------

func TestService_Add_Validates(t *testing.T) {
	svc := NewService(newTestRepo(), nil)
	ctx := context.Background()

	p, err := svc.Add(ctx, AddInput{Name: "Fido", Species: "Dog", Owner: "Alice"})
	require.NoError(t, err)
	require.Equal(t, Pet{Name: "Fido", Species: "Dog", Owner: "Alice"}, p)

	_, err = svc.Add(ctx, AddInput{Name: "   ", Species: "Dog", Owner: "Alice"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Add(ctx, AddInput{Name: "Rex", Species: "", Owner: "Carol"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Add(ctx, AddInput{Name: "Fido", Species: "Cat", Owner: "Eve"})
	require.ErrorIs(t, err, ErrDuplicateName)

	owner, err := svc.Owner(ctx, "Fido")
	require.NoError(t, err)
	require.Equal(t, "Alice", owner)
}

func TestService_Add_KeepsPaddedNamesExact(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	require.NoError(t, repo.reg.Add(" Rex", "Dog", "Carol"))
	svc := NewService(repo, nil)

	p, err := svc.Add(ctx, AddInput{Name: " Rex ", Species: " Dog", Owner: "Dave "})
	require.NoError(t, err)
	require.Equal(t, Pet{Name: " Rex ", Species: " Dog", Owner: "Dave "}, p)

	_, err = svc.Add(ctx, AddInput{Name: " Rex", Species: "Cat", Owner: "Eve"})
	require.ErrorIs(t, err, ErrDuplicateName)

	owner, err := svc.Owner(ctx, " Rex ")
	require.NoError(t, err)
	require.Equal(t, "Dave ", owner)

	_, err = svc.Owner(ctx, "Rex")
	require.ErrorIs(t, err, ErrNotFound)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []Pet{
		{Name: " Rex", Species: "Dog", Owner: "Carol"},
		{Name: " Rex ", Species: " Dog", Owner: "Dave "},
	}, items)
}

func TestService_OwnerAndSpecies(t *testing.T) {
	svc := NewService(newTestRepo(), nil)
	ctx := context.Background()

	for _, in := range []AddInput{
		{Name: "Fido", Species: "Dog", Owner: "Alice"},
		{Name: "Rex", Species: "Dog", Owner: "Carol"},
		{Name: "Whiskers", Species: "Cat", Owner: "Bob"},
	} {
		_, err := svc.Add(ctx, in)
		require.NoError(t, err)
	}

	species, err := svc.Species(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Cat", "Dog"}, species)

	require.NoError(t, svc.Delete(ctx, "Ghost"))
	require.NoError(t, svc.Delete(ctx, "Fido"))

	_, err = svc.Owner(ctx, "Fido")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_SaveThenLoad_IntoFreshService(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pets.json")

	src := NewService(newTestRepo(), nil)
	_, _ = src.Add(ctx, AddInput{Name: "Fido", Species: "Dog", Owner: "Alice"})
	_, _ = src.Add(ctx, AddInput{Name: "Whiskers", Species: "Cat", Owner: "Bob"})
	require.NoError(t, src.SaveToFile(ctx, path))

	dst := NewService(newTestRepo(), nil)
	require.NoError(t, dst.LoadFromFile(ctx, path))

	want, _ := src.List(ctx)
	got, err := dst.List(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, want, got)
}

func TestService_LoadFromFile_InvalidKeepsState(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pets.json")
	require.NoError(t, os.WriteFile(path, []byte(`[["A","Dog","x"],["B","Cat"]]`), 0o644))

	svc := NewService(newTestRepo(), nil)
	_, _ = svc.Add(ctx, AddInput{Name: "Rex", Species: "Dog", Owner: "Carol"})

	err := svc.LoadFromFile(ctx, path)
	require.ErrorIs(t, err, ErrFormat)

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []Pet{{Name: "Rex", Species: "Dog", Owner: "Carol"}}, items)
}

func TestService_RepoErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	repo.fail = true
	svc := NewService(repo, nil)

	_, err := svc.Add(ctx, AddInput{Name: "Fido", Species: "Dog", Owner: "Alice"})
	require.ErrorIs(t, err, errRepoDown)

	_, err = svc.Species(ctx)
	require.ErrorIs(t, err, errRepoDown)

	err = svc.SaveToFile(ctx, filepath.Join(t.TempDir(), "pets.json"))
	require.ErrorIs(t, err, errRepoDown)
}
