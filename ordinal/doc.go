// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ordinal maintains gap-free, zero-based orderings over sibling items.

A sibling scope is a set of items that share one ordinal sequence: all
questions of the form, or all options of one question. After every committed
mutation the ordinals of a scope must be exactly {0, ..., k-1}.

# Operations

Append at the tail:

	ord := ordinal.Next(len(currentIDs))

Close the gap left by a deletion (same transaction as the delete):

	newOrds := ordinal.CloseGap(survivorOrds, removedOrd)

Assign fresh ordinals from a client-submitted full ordering:

	assigned, err := ordinal.Replace(currentIDs, submittedIDs)

Replace is strict: the submitted list must be an exact permutation of the
current membership. Unknown, missing, or duplicate ids return an error and
nothing is assigned.

# Purity

The package does no I/O and holds no state. Callers read the current scope
from storage, compute here, and write the result back inside a transaction.
*/
package ordinal
