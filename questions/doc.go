// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package questions contains the collection managers that keep the two-level
question/option hierarchy ordinally consistent.

# Managers

Manager owns the ordered set of top-level questions:

	qm := questions.NewManager(st)
	q, err := qm.Add(ctx)          // append at tail
	err = qm.Delete(ctx, id)       // delete + close gap, one transaction
	err = qm.Reorder(ctx, ids)     // full reorder from client ordering

OptionManager owns each question's ordered option set:

	om := questions.NewOptionManager(st)
	o, err := om.Add(ctx, questionID)
	o, err = om.Edit(ctx, questionID, optionID, &text, &selected)
	err = om.Reorder(ctx, questionID, optionIDs)
	opts, err := om.ReplaceAll(ctx, questionID, items)

# Invariants

After every committed mutation:

 1. question ordinals are exactly {0..N-1}
 2. each question's option ordinals are exactly {0..M-1}
 3. at most one option per question is selected
 4. no option outlives its question

The pure ordinal arithmetic lives in package ordinal; the managers read the
current scope, compute, and write back inside a store transaction, so a
failure anywhere leaves the prior state untouched.

# Reorder Policy

Reorder and Replace are strict: the submitted id list must be an exact
permutation of current membership or the mutation is rejected with
models.ErrValidation before any write.

# Strategies

Options support both incremental mutations (Add/Edit/Delete/Reorder) and the
coarse ReplaceAll, which swaps a question's whole option set for the
client's submitted list. Deployments choose which endpoints their client
uses; both preserve the invariants.
*/
package questions
