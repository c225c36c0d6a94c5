package storeprobe

import (
	"context"
	"errors"
)

// ErrCursorNotFound is returned by IndicesForAfter/IndicesForBefore when
// the cursor row does not exist within the given group — spec.md §4.6
// step 4's "if rows is empty the cursor is not in the group → return
// none."
var ErrCursorNotFound = errors.New("storeprobe: cursor not found in group")

// IndicesForFirst returns (nil, lo) where lo is the smallest existing key
// in the group, or (nil, nil) if the group is empty. group is checked
// against the Binding's GroupColumns schema; a column the schema names
// but group does not supply makes the whole lookup match no rows (see
// predicateClause).
func (b *Binding) IndicesForFirst(ctx context.Context, group Values) (lo, hi *string, err error) {
	where, args := b.groupClause(group)
	fi, ok, err := b.queryEdge(ctx, where, args, true)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, nil
	}
	return nil, &fi, nil
}

// IndicesForLast returns (hi, nil) where hi is the largest existing key
// in the group, or (nil, nil) if the group is empty.
func (b *Binding) IndicesForLast(ctx context.Context, group Values) (lo, hi *string, err error) {
	where, args := b.groupClause(group)
	fi, ok, err := b.queryEdge(ctx, where, args, false)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, nil
	}
	return &fi, nil, nil
}

// IndicesForAfter implements spec.md §4.6's algorithm: it locates the
// cursor row, then returns (cursor_key, successor_key_or_null) so the
// caller can generate a key strictly between them.
func (b *Binding) IndicesForAfter(ctx context.Context, group, cursor Values) (lo, hi *string, err error) {
	return b.indicesFor(ctx, group, cursor, true)
}

// IndicesForBefore is IndicesForAfter's mirror: descending order, ≤
// instead of ≥, with the pair reversed so the caller always receives
// (lower, upper).
func (b *Binding) IndicesForBefore(ctx context.Context, group, cursor Values) (lo, hi *string, err error) {
	return b.indicesFor(ctx, group, cursor, false)
}

// indicesFor is the single code path behind IndicesForAfter and
// IndicesForBefore: spec.md's two algorithms differ only in sort
// direction and which side of the returned pair is the cursor, both of
// which are functions of ascending. Predicates are always conjoined as
// "group_predicates AND cursor_predicates", resolving the ordering Open
// Question spec.md §9 flags as inconsistent between its own examples.
func (b *Binding) indicesFor(ctx context.Context, group, cursor Values, ascending bool) (lo, hi *string, err error) {
	groupClause, groupArgs := b.groupClause(group)
	cursorClause, cursorArgs := b.cursorClause(cursor)
	where, args := conjoin(groupClause, groupArgs, cursorClause, cursorArgs)

	cursorFI, ok, err := b.queryOne(ctx, where, args)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, ErrCursorNotFound
	}

	rows, err := b.queryRangeFrom(ctx, groupClause, groupArgs, cursorFI, ascending, 2)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, ErrCursorNotFound
	}

	cursorKey := rows[0]
	var neighbor *string
	if len(rows) > 1 {
		n := rows[1]
		neighbor = &n
	}
	if ascending {
		return &cursorKey, neighbor, nil
	}
	return neighbor, &cursorKey, nil
}
