// Package fraci implements fractional indexing: ordered keys that can be
// inserted between any two existing keys without renumbering neighbors.
//
// # Overview
//
// A fractional index is a short, sortable key assigned to a row so that
// inserting a new row between two existing ones is a local operation: derive
// a key strictly between the neighbors' keys, write it, done. No other row
// is touched. This package provides the key algebra (encode, compare,
// increment, and the midpoint operation that produces a key between two
// neighbors) in two interchangeable representations — human-readable
// character strings and compact byte strings — plus a generator that
// produces a deterministic, restartable stream of retry candidates for use
// against a store enforcing a uniqueness constraint.
//
// # When to Use fraci
//
// fraci is the right tool for:
//   - Collaborative ordered lists: kanban boards, playlists, outline trees
//   - Any single-column "position" field backed by a database index, where
//     concurrent inserts must not require renumbering siblings
//   - Systems that already have a `UNIQUE(group, position)` constraint and
//     need a generator that can retry past collisions on that constraint
//
// # When NOT to Use fraci
//
// fraci is not suitable for:
//   - Absolute positions ("row 17 of 40") — fractional indices only support
//     relative ordering
//   - Workloads needing frequent global renumbering or compaction — this
//     package never renumbers; unbounded fine-grained inserts between the
//     same two neighbors will eventually grow keys toward MaxLength
//   - Anything requiring network I/O, persistence, or transactions inside
//     the algebra itself — see the storeprobe subpackage for the one piece
//     that talks to a database, and bring your own driver/transaction
//     handling around it
//
// # Basic Usage
//
//	f, err := fraci.NewStringFraci[MyColumnBrand](fraci.StringConfig{
//	    DigitBase:  fraci.Base62,
//	    LengthBase: fraci.Base62,
//	})
//	if err != nil {
//	    // alphabet rejected
//	}
//
//	k1, err := f.GenerateKeyBetween(nil, nil) // first key in an empty list
//	k2, err := f.GenerateKeyBetween(&k1, nil)  // append after k1
//	k3, err := f.GenerateKeyBetween(&k1, &k2)  // insert between k1 and k2
//
//	gen := f.Generate(&k1, &k2)
//	for {
//	    candidate, ok := gen.Next()
//	    if !ok {
//	        break // retries exhausted or length budget exceeded
//	    }
//	    // try candidate against the store; on a unique-constraint
//	    // violation, loop and fetch the next candidate
//	}
//
// # Performance Characteristics
//
// All operations in this package are pure; there is no shared mutable
// state beyond the immutable lookup tables built once at construction time
// (see Alphabet). Key length grows only
// when neighbors are arbitrarily close or integers overflow a digit
// position; both cases are explicit, bounded by the configured MaxLength, and
// reported as ErrLengthExceeded rather than silently truncated.
package fraci
