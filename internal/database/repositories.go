package database

import (
	"database/sql"

	"github.com/fernwood/spotistats/internal/database/repositories"
	"github.com/fernwood/spotistats/internal/database/sqlite"
)

// Repositories holds all repository instances
type Repositories struct {
	History repositories.HistoryRepository
}

// NewRepositories creates all repository instances
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		History: sqlite.NewHistoryRepository(db),
	}
}
