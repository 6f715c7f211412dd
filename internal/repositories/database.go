package repository

import (
	"database/sql"
	"fmt"

	"github.com/freshmart/supermarket-inventory/internal/config"

	_ "github.com/lib/pq"
)

// Repository owns the shared connection pool and the per-entity repositories
// built on top of it. It is constructed explicitly and passed to whoever needs
// it; there is no package-level pool.
type Repository struct {
	DB       *sql.DB
	Category CategoryRepository
	Item     ItemRepository
}

func New(cfg *config.Config) (*Repository, error) {
	db, err := sql.Open("postgres", cfg.Database.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	// Test the connection to make sure DB is reachable
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repository{
		DB:       db,
		Category: NewCategoryRepo(db),
		Item:     NewItemRepo(db),
	}, nil
}

func (r *Repository) Close() error {
	return r.DB.Close()
}
