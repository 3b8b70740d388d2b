package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dhairyapractice/Solo-leveling/internal/database/postgres"
	"github.com/dhairyapractice/Solo-leveling/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Hunter repository.Hunter
	Shop   repository.Shop
	Badge  repository.Badge
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Hunter: postgres.NewHunterRepository(dbPool),
		Shop:   postgres.NewShopRepository(dbPool),
		Badge:  postgres.NewBadgeRepository(dbPool),
	}
}
