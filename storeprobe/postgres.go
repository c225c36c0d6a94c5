package storeprobe

import (
	"errors"

	"github.com/lib/pq"
)

// postgresUniqueViolation is PostgreSQL's SQLSTATE for unique_violation.
const postgresUniqueViolation = "23505"

// IsIndexConflictErrorPostgres recognizes Postgres's unique-constraint
// violation via the driver's structured *pq.Error.Code, never by
// matching the message text.
func IsIndexConflictErrorPostgres(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == postgresUniqueViolation
}
