// Package importer reads extended streaming history export files (UTF-8 JSON
// arrays of listening events) and merges them into the analytics working set.
package importer

import (
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"github.com/fernwood/spotistats/internal/core/analytics"
	"github.com/fernwood/spotistats/internal/database/models"
	pkgerrors "github.com/fernwood/spotistats/pkg/errors"
)

type Importer struct {
	analytics *analytics.Analytics
	logger    *logrus.Logger
}

func New(a *analytics.Analytics, log *logrus.Logger) *Importer {
	return &Importer{analytics: a, logger: log}
}

// ImportFile parses one export file and merges its events. Nothing is merged
// when the file fails to read or decode.
func (imp *Importer) ImportFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &pkgerrors.IOError{Path: path, Err: err}
	}

	var events []models.ListeningEvent
	if err := json.Unmarshal(data, &events); err != nil {
		return &pkgerrors.ParseError{Path: path, Err: err}
	}

	imp.analytics.Merge(events)

	imp.logger.WithFields(logrus.Fields{
		"path":   path,
		"events": len(events),
	}).Info("Export file merged")

	return nil
}

// ImportDir imports every .json file in dir, one at a time. Subdirectories
// and files with other extensions are skipped with a log line. The first
// failing file aborts the whole operation; its error propagates unchanged.
func (imp *Importer) ImportDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return &pkgerrors.IOError{Path: dir, Err: err}
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			imp.logger.WithField("path", path).Info("Ignoring directory")
			continue
		}
		if filepath.Ext(entry.Name()) != ".json" {
			imp.logger.WithField("path", path).Info("Ignoring non-json file")
			continue
		}

		if err := imp.ImportFile(path); err != nil {
			return err
		}
	}

	return nil
}
