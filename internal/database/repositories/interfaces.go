package repositories

import (
	"context"

	"github.com/fernwood/spotistats/internal/database/models"
)

// HistoryRepository defines listening-history data access methods
type HistoryRepository interface {
	// LoadAll returns every stored event. Row order follows whatever the
	// engine yields; callers must not rely on it.
	LoadAll(ctx context.Context) ([]models.ListeningEvent, error)

	// Insert appends one event row.
	Insert(ctx context.Context, event *models.ListeningEvent) error
}
