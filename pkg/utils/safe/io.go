package safe

import (
	"database/sql"
	"errors"
	"io"
	"log/slog"

	"github.com/m-mizutani/gitminer/pkg/utils/logging"
)

// Close safely closes the resource and logs error if any
func Close(closer io.Closer) {
	if closer != nil {
		if err := closer.Close(); err != nil {
			if err == io.EOF {
				return
			}
			logging.Default().Warn("Fail to close resource", slog.Any("error", err))
		}
	}
}

// Rollback safely rolls back the transaction and logs error if any. It is a
// no-op for a committed transaction.
func Rollback(tx *sql.Tx) {
	if tx != nil {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			logging.Default().Warn("Fail to rollback transaction", slog.Any("error", err))
		}
	}
}
