// Package analytics owns the in-memory working set of listening events for
// one run: loaded from the store at construction, extended by merging parsed
// export files, queried for per-artist totals and flushed back to the store.
package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fernwood/spotistats/internal/database/models"
	"github.com/fernwood/spotistats/internal/database/repositories"
)

// Sentinels for the empty working set: the loaded-range snapshot starts out
// inverted (max below every real timestamp, min above every real timestamp).
var (
	minInstant = time.Time{}
	maxInstant = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)
)

// ArtistPlaytime is one row of a ranking: total milliseconds played per artist.
type ArtistPlaytime struct {
	Artist   string
	MsPlayed uint64
}

// Analytics holds the working set for one process run. The store remains the
// only durable owner; the working set is discarded when the process exits.
type Analytics struct {
	repo    repositories.HistoryRepository
	logger  *logrus.Logger
	history []models.ListeningEvent

	// maxTS and minTS are a snapshot over the history loaded at
	// construction. Merge never re-derives them.
	maxTS time.Time
	minTS time.Time
}

// New loads all stored events into a working set and snapshots the loaded
// time range.
func New(ctx context.Context, repo repositories.HistoryRepository, log *logrus.Logger) (*Analytics, error) {
	history, err := repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading stored history: %w", err)
	}

	maxTS, minTS := minInstant, maxInstant
	for i := range history {
		if history[i].TS.After(maxTS) {
			maxTS = history[i].TS
		}
		if history[i].TS.Before(minTS) {
			minTS = history[i].TS
		}
	}

	log.WithField("events", len(history)).Info("Listening history loaded")

	return &Analytics{
		repo:    repo,
		logger:  log,
		history: history,
		maxTS:   maxTS,
		minTS:   minTS,
	}, nil
}

// Merge appends already-parsed events to the working set. No deduplication
// against existing content, and the loaded-range snapshot stays fixed.
func (a *Analytics) Merge(events []models.ListeningEvent) {
	a.history = append(a.history, events...)
}

// Len returns the number of events currently in the working set.
func (a *Analytics) Len() int {
	return len(a.history)
}

// Persist writes each event whose timestamp is after the loaded maximum AND
// before the loaded minimum. With a non-empty loaded set that range is empty,
// so nothing is written; only a first run against an empty store, where the
// snapshot is inverted, admits events. PersistNew implements the
// outside-the-range variant.
//
// The first write error aborts the loop. Earlier writes stay committed; no
// transaction wraps the loop.
func (a *Analytics) Persist(ctx context.Context) error {
	written := 0
	for i := range a.history {
		e := &a.history[i]
		if !(e.TS.After(a.maxTS) && e.TS.Before(a.minTS)) {
			continue
		}
		if err := a.repo.Insert(ctx, e); err != nil {
			return fmt.Errorf("persisting history: %w", err)
		}
		written++
	}

	a.logger.WithField("written", written).Info("Listening history persisted")
	return nil
}

// PersistNew writes each event whose timestamp falls outside the loaded time
// range, supporting incremental re-imports without duplicating rows already
// seen. Events timestamped inside the loaded range are assumed persisted and
// skipped. Same commit semantics as Persist.
func (a *Analytics) PersistNew(ctx context.Context) error {
	written := 0
	for i := range a.history {
		e := &a.history[i]
		if !(e.TS.After(a.maxTS) || e.TS.Before(a.minTS)) {
			continue
		}
		if err := a.repo.Insert(ctx, e); err != nil {
			return fmt.Errorf("persisting history: %w", err)
		}
		written++
	}

	a.logger.WithField("written", written).Info("New listening history persisted")
	return nil
}

// TopArtists ranks artists by total milliseconds played, descending. Events
// without an artist name (podcast episodes) are excluded. Totals saturate at
// the maximum uint64 instead of wrapping. Tie order is unspecified.
func (a *Analytics) TopArtists() []ArtistPlaytime {
	totals := make(map[string]uint64)
	for i := range a.history {
		e := &a.history[i]
		if e.AlbumArtistName == nil {
			continue
		}
		totals[*e.AlbumArtistName] = saturatingAdd(totals[*e.AlbumArtistName], e.MsPlayed)
	}

	ranked := make([]ArtistPlaytime, 0, len(totals))
	for artist, total := range totals {
		ranked = append(ranked, ArtistPlaytime{Artist: artist, MsPlayed: total})
	}
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].MsPlayed > ranked[j].MsPlayed
	})

	return ranked
}

// TopNArtists returns the first n entries of TopArtists. n past the end
// yields the full ranking; n = 0 yields an empty one.
func (a *Analytics) TopNArtists(n int) []ArtistPlaytime {
	ranked := a.TopArtists()
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

func saturatingAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}
