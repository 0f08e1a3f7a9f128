package router

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	mem "neighborhood-pets/internal/adapters/storage/memory"
	pg "neighborhood-pets/internal/adapters/storage/postgres"
	lite "neighborhood-pets/internal/adapters/storage/sqlite"
	_ "neighborhood-pets/internal/docs"
	"neighborhood-pets/internal/domain/pets"
	"neighborhood-pets/internal/middleware"
	"neighborhood-pets/internal/platform/config"
	"neighborhood-pets/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, se usa tal cual. Si no, se arma con Repo.
	Service *pets.Service

	// Opcional: si no viene, in-memory.
	Repo pets.Repository

	Logger       logger.Logger
	SnapshotPath string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	svc := opts.Service
	if svc == nil {
		repo := opts.Repo
		if repo == nil {
			repo = mem.NewPetRepo()
		}
		svc = pets.NewService(repo, log)
	}

	pets.RegisterRoutes(r, svc, opts.SnapshotPath)

	return r
}

// OpenRepository arma el backend según config. closeFn libera la conexión
// (no-op para memoria).
func OpenRepository(ctx context.Context, cfg config.DatabaseConfig) (repo pets.Repository, closeFn func() error, err error) {
	noop := func() error { return nil }

	var db *sql.DB
	switch cfg.Driver {
	case config.DriverMemory, "":
		return mem.NewPetRepo(), noop, nil
	case config.DriverPostgres:
		db, err = pg.Open(cfg.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := pg.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("postgres schema: %w", err)
		}
		return pg.NewPetsRepo(db), db.Close, nil
	case config.DriverSQLite:
		db, err = lite.Open(cfg.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		if err := lite.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("sqlite schema: %w", err)
		}
		return lite.NewPetsRepo(db), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
