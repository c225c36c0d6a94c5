package storeprobe

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// IsIndexConflictErrorSQLite recognizes SQLite's unique-constraint
// violation on the composite UNIQUE(group_columns, fi_column) index
// spec.md §6 requires, by inspecting the driver's structured error code
// rather than matching on its message text (§9: "key on the store's
// structured error payload... not message substring").
func IsIndexConflictErrorSQLite(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.Code == sqlite3.ErrConstraint &&
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
