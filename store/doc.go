// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the transactional persistence adapter over the two form
relations, questions(id, ord, description) and options(id, question, ord,
description, selected).

# Transactions

Every mutation that touches more than one row runs through WithTx:

	err := st.WithTx(ctx, "delete question", func(tx *sql.Tx) error {
		// statements against tx
		return nil
	})

Any error from the closure rolls the whole transaction back, so a
delete-and-renumber or a bulk reorder either fully lands or leaves the prior
state untouched. Transactions run at serializable isolation: concurrent
mutations of the same sibling scope cannot both read the old ordinals and
commit conflicting writes - one of them aborts and the abort surfaces as a
*models.PersistenceError. The application holds no locks and no
cross-request state, and never retries on its own. SQLite is serializable
by construction (single writer); the level matters on Postgres, whose
default is READ COMMITTED.

# Statement helpers

Helpers take a Querier, satisfied by both *sql.DB and *sql.Tx, so reads can
run outside a transaction while mutations run inside one. Zero-row writes on
a keyed statement return models.ErrNotFound; driver failures are wrapped in
*models.PersistenceError with the logical statement name and never leak SQL
detail to the collection managers.

# Placeholders

Statements use $n placeholders in strictly sequential order of appearance,
which binds identically under lib/pq and modernc.org/sqlite.
*/
package store
