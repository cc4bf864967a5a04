package sqlite

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/fernwood/spotistats/internal/database/models"
	"github.com/fernwood/spotistats/internal/database/repositories"
	pkgerrors "github.com/fernwood/spotistats/pkg/errors"
)

// HistoryRepository implements repositories.HistoryRepository
type HistoryRepository struct {
	db *sqlx.DB
}

// NewHistoryRepository creates a new HistoryRepository
func NewHistoryRepository(db *sql.DB) repositories.HistoryRepository {
	return &HistoryRepository{db: sqlx.NewDb(db, "sqlite3")}
}

// LoadAll retrieves every stored listening event. No ORDER BY: row order is
// whatever the engine yields.
func (r *HistoryRepository) LoadAll(ctx context.Context) ([]models.ListeningEvent, error) {
	query := `
		SELECT ts, username, platform, conn_country, ip_addr_decrypted,
			user_agent_decrypted, ms_played, track_name, album_artist_name,
			album_name, track_uri, episode_name, episode_show_name,
			episode_uri, reason_start, reason_end, shuffle, skipped,
			offline, incognito_mode, offline_timestamp
		FROM listening_history
	`

	var events []models.ListeningEvent
	if err := r.db.SelectContext(ctx, &events, query); err != nil {
		return nil, &pkgerrors.StorageError{Op: "load", Err: err}
	}

	return events, nil
}

// Insert appends one event row. All columns are bound by name so the insert
// stays correct if the schema gains columns in a later migration.
func (r *HistoryRepository) Insert(ctx context.Context, event *models.ListeningEvent) error {
	query := `
		INSERT INTO listening_history (
			ts, username, platform, conn_country, ip_addr_decrypted,
			user_agent_decrypted, ms_played, track_name, album_artist_name,
			album_name, track_uri, episode_name, episode_show_name,
			episode_uri, reason_start, reason_end, shuffle, skipped,
			offline, incognito_mode, offline_timestamp
		) VALUES (
			:ts, :username, :platform, :conn_country, :ip_addr_decrypted,
			:user_agent_decrypted, :ms_played, :track_name, :album_artist_name,
			:album_name, :track_uri, :episode_name, :episode_show_name,
			:episode_uri, :reason_start, :reason_end, :shuffle, :skipped,
			:offline, :incognito_mode, :offline_timestamp
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		return &pkgerrors.StorageError{Op: "insert", Record: event, Err: err}
	}

	return nil
}
