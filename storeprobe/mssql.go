package storeprobe

import (
	"errors"

	mssql "github.com/denisenkom/go-mssqldb"
)

// SQL Server error numbers for the two forms a unique-index violation
// can take: a duplicate key (2627) and a duplicate row under a unique
// index that isn't a primary key (2601).
const (
	mssqlDuplicateKey = 2627
	mssqlDuplicateRow = 2601
)

// IsIndexConflictErrorMSSQL recognizes SQL Server's unique-constraint
// violation via the driver's structured mssql.Error.Number, never by
// matching the message text.
func IsIndexConflictErrorMSSQL(err error) bool {
	var sqlErr mssql.Error
	if !errors.As(err, &sqlErr) {
		return false
	}
	return sqlErr.Number == mssqlDuplicateKey || sqlErr.Number == mssqlDuplicateRow
}
