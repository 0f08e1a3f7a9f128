package pets

import (
	"context"
	"errors"
	"strings"

	"neighborhood-pets/internal/platform/logger"
)

type Service struct {
	repo Repository
	log  logger.Logger
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo: repo,
		log:  log.With(map[string]any{"component": "pets"}),
	}
}

type AddInput struct {
	Name    string
	Species string
	Owner   string
}

func (s *Service) Add(ctx context.Context, in AddInput) (Pet, error) {
	// Los nombres se comparan exactos: TrimSpace sólo para detectar campos vacíos.
	if isBlank(in.Name) || isBlank(in.Species) || isBlank(in.Owner) {
		return Pet{}, ErrInvalidInput
	}
	p := Pet{Name: in.Name, Species: in.Species, Owner: in.Owner}

	if err := s.repo.Add(ctx, p); err != nil {
		if errors.Is(err, ErrDuplicateName) {
			s.log.Warn("duplicate pet name", map[string]any{"name": p.Name})
		}
		return Pet{}, err
	}

	s.log.Info("pet added", map[string]any{"name": p.Name, "species": p.Species})
	return p, nil
}

func (s *Service) Delete(ctx context.Context, name string) error {
	if err := s.repo.Delete(ctx, name); err != nil {
		return err
	}
	s.log.Info("pet deleted", map[string]any{"name": name})
	return nil
}

func (s *Service) Owner(ctx context.Context, name string) (string, error) {
	p, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return "", err
	}
	return p.Owner, nil
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

// Species devuelve las especies distintas, ordenadas.
func (s *Service) Species(ctx context.Context) ([]string, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return distinctSpecies(items), nil
}

// SaveToFile vuelca el repositorio completo al snapshot JSON.
func (s *Service) SaveToFile(ctx context.Context, path string) error {
	items, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	b, err := EncodeJSON(items)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, b); err != nil {
		s.log.Error("snapshot save failed", map[string]any{"path": path, "error": err.Error()})
		return err
	}

	s.log.Info("snapshot saved", map[string]any{"path": path, "count": len(items)})
	return nil
}

// LoadFromFile valida el snapshot completo antes de tocar el repositorio;
// si algo falla, el contenido previo se conserva.
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	b, err := readFile(path)
	if err != nil {
		s.log.Error("snapshot read failed", map[string]any{"path": path, "error": err.Error()})
		return err
	}
	items, err := DecodeJSON(b)
	if err != nil {
		s.log.Warn("snapshot rejected", map[string]any{"path": path, "error": err.Error()})
		return err
	}
	if err := s.repo.ReplaceAll(ctx, items); err != nil {
		return err
	}

	s.log.Info("snapshot loaded", map[string]any{"path": path, "count": len(items)})
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
