package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/migrations"
)

const (
	busyRetries = 5
	busyBackoff = 20 * time.Millisecond
)

// DB wraps the SQLite connection pool together with the error classifier
// used to decide whether a failed write is worth repeating.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// execRetrying runs a write statement and repeats it while the classifier
// reports a transient lock error.
func (db *DB) execRetrying(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var result sql.Result

	backoff := retry.WithMaxRetries(busyRetries, retry.NewExponential(busyBackoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		res, err := db.DB.ExecContext(ctx, query, args...)
		if err != nil {
			if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
				return retry.RetryableError(err)
			}
			return err
		}
		result = res
		return nil
	})

	return result, err
}
