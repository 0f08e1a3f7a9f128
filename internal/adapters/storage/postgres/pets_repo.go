package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"neighborhood-pets/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Add(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (name, species, owner)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO NOTHING
	`, p.Name, p.Species, p.Owner)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", pets.ErrDuplicateName, p.Name)
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE name = $1`, name)
	return err
}

func (r *PetsRepo) GetByName(ctx context.Context, name string) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT name, species, owner
		FROM pets
		WHERE name = $1
	`, name)

	var p pets.Pet
	if err := row.Scan(&p.Name, &p.Species, &p.Owner); err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name, species, owner
		FROM pets
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		if err := rows.Scan(&p.Name, &p.Species, &p.Owner); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ReplaceAll valida duplicados antes de abrir la transacción; el swap
// completo (DELETE + INSERTs) es atómico.
func (r *PetsRepo) ReplaceAll(ctx context.Context, items []pets.Pet) error {
	if err := pets.NewRegistry().Replace(items); err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM pets`); err != nil {
		return err
	}
	for _, p := range items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO pets (name, species, owner) VALUES ($1, $2, $3)
		`, p.Name, p.Species, p.Owner); err != nil {
			return err
		}
	}
	return tx.Commit()
}
