package storeprobe

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// mysqlDupEntry is MySQL's error number for ER_DUP_ENTRY.
const mysqlDupEntry = 1062

// IsIndexConflictErrorMySQL recognizes MySQL's unique-constraint
// violation via the driver's structured *mysql.MySQLError.Number, never
// by matching the message text.
func IsIndexConflictErrorMySQL(err error) bool {
	var myErr *mysql.MySQLError
	if !errors.As(err, &myErr) {
		return false
	}
	return myErr.Number == mysqlDupEntry
}
