// Package storeprobe implements spec.md §4.6's store-probe adapter (C6):
// the one component of this library that talks to an external ordered
// store. It depends on the core fraci package but never the reverse, and
// it depends only on database/sql's interfaces — opening, pooling, and
// migrating a connection is left entirely to the caller.
package storeprobe

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// FieldValue is the value half of one column/value pair. Null
// distinguishes an explicit SQL NULL comparison (IS NULL) from an
// equality comparison against Value; Value is ignored when Null is true.
type FieldValue struct {
	Value any
	Null  bool
}

// Val wraps v as an equality comparison.
func Val(v any) FieldValue { return FieldValue{Value: v} }

// NullValue is the explicit-null comparison, IS NULL.
func NullValue() FieldValue { return FieldValue{Null: true} }

// Values is a caller-supplied column -> value map, checked against a
// Binding's fixed GroupColumns/CursorColumns schema at predicate-build
// time. It is the "user-supplied value object" spec.md §4.6 step 1
// contrasts with the configuration schema: Values alone, with no schema
// to check it against, would let a caller's typo or omitted field
// silently narrow (or widen) a query. Only predicateClause, which always
// consults the schema, may turn Values into SQL.
type Values map[string]FieldValue

// Binding ties a fractional-index column to the table, and to the fixed
// group/cursor column schema, that together locate rows within it, per
// §4.6's bind(handle, table, fi_column, group_columns, cursor_columns).
// GroupColumns and CursorColumns are configuration, decided once when the
// binding is constructed — never derived from a per-call Values map.
type Binding struct {
	DB            *sql.DB
	Table         string
	FIColumn      string
	GroupColumns  []string
	CursorColumns []string
}

// Bind constructs a Binding against a fixed group/cursor column schema.
// It performs no I/O and cannot fail: the table/column names and the db
// handle are trusted configuration, not user input, matching spec.md
// §4.6's schema-not-value-object posture.
func Bind(db *sql.DB, table, fiColumn string, groupColumns, cursorColumns []string) *Binding {
	return &Binding{
		DB:            db,
		Table:         table,
		FIColumn:      fiColumn,
		GroupColumns:  groupColumns,
		CursorColumns: cursorColumns,
	}
}

// predicateClause renders columns as a conjoined WHERE fragment, looking
// up each column's value in values. A schema with no columns renders the
// constant-true predicate "1 = 1" (a deliberately ungrouped binding). But
// if the schema names even one column that values does not supply, the
// whole predicate — every column, not just the missing one — renders as
// the constant-false "1 = 0": per §4.6 step 1's security invariant, "a
// missing field becomes a hard false rather than a wildcard." This is why
// Values is checked against columns here rather than iterated on its own:
// iterating Values directly would silently drop an omitted field from the
// WHERE clause instead of failing the whole predicate closed.
func predicateClause(columns []string, values Values) (string, []any) {
	if len(columns) == 0 {
		return "1 = 1", nil
	}
	clauses := make([]string, len(columns))
	args := make([]any, 0, len(columns))
	for i, col := range columns {
		v, ok := values[col]
		if !ok {
			return "1 = 0", nil
		}
		if v.Null {
			clauses[i] = fmt.Sprintf("%s IS NULL", col)
			continue
		}
		clauses[i] = fmt.Sprintf("%s = ?", col)
		args = append(args, v.Value)
	}
	return strings.Join(clauses, " AND "), args
}

func (b *Binding) groupClause(group Values) (string, []any) {
	return predicateClause(b.GroupColumns, group)
}

func (b *Binding) cursorClause(cursor Values) (string, []any) {
	return predicateClause(b.CursorColumns, cursor)
}

func conjoin(groupClause string, groupArgs []any, cursorClause string, cursorArgs []any) (string, []any) {
	clause := groupClause
	args := append([]any{}, groupArgs...)
	if cursorClause != "" {
		clause = clause + " AND " + cursorClause
		args = append(args, cursorArgs...)
	}
	return clause, args
}

func (b *Binding) queryOne(ctx context.Context, where string, args []any) (string, bool, error) {
	row := b.DB.QueryRowContext(ctx,
		fmt.Sprintf("SELECT %s FROM %s WHERE %s LIMIT 1", b.FIColumn, b.Table, where), args...)
	var fi string
	if err := row.Scan(&fi); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, err
	}
	return fi, true, nil
}

func (b *Binding) queryRangeFrom(ctx context.Context, where string, args []any, cursorFI string, ascending bool, limit int) ([]string, error) {
	op := ">="
	order := "ASC"
	if !ascending {
		op = "<="
		order = "DESC"
	}
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s AND %s %s ? ORDER BY %s %s LIMIT %d",
		b.FIColumn, b.Table, where, b.FIColumn, op, b.FIColumn, order, limit)
	queryArgs := append(append([]any{}, args...), cursorFI)
	rows, err := b.DB.QueryContext(ctx, query, queryArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var fi string
		if err := rows.Scan(&fi); err != nil {
			return nil, err
		}
		out = append(out, fi)
	}
	return out, rows.Err()
}

func (b *Binding) queryEdge(ctx context.Context, where string, args []any, ascending bool) (string, bool, error) {
	order := "ASC"
	if !ascending {
		order = "DESC"
	}
	row := b.DB.QueryRowContext(ctx,
		fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY %s %s LIMIT 1", b.FIColumn, b.Table, where, b.FIColumn, order), args...)
	var fi string
	if err := row.Scan(&fi); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, err
	}
	return fi, true, nil
}
