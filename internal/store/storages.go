package store

import (
	"context"

	"github.com/vivek7557/meal-pre-ai-agent/internal/config"
	"github.com/vivek7557/meal-pre-ai-agent/internal/logger"
	"github.com/vivek7557/meal-pre-ai-agent/migrations"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository     UserRepository
	MealPlanRepository MealPlanRepository
}

// NewStorages connects to PostgreSQL, applies pending schema migrations, and
// wires the repositories on top of the shared connection pool.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		MealPlanRepository: NewMealPlanRepository(db, log),
	}, nil
}

// Migrate applies all pending schema migrations embedded in the binary.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
