// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ordinal

import (
	"fmt"
	"sort"
)

// Next returns the ordinal for an item appended to the tail of a sibling
// scope that currently holds size items. Ordinals are zero-based, so the
// next free slot is exactly size.
func Next(size int) int {
	return size
}

// CloseGap re-indexes the ordinals of the items that survive a deletion.
// ords holds the surviving items' ordinals, removed is the ordinal of the
// deleted item. Every ordinal above the removed one moves down by one, which
// restores a contiguous 0..len(ords)-1 range. Must be applied in the same
// transaction as the delete itself.
func CloseGap(ords []int, removed int) []int {
	out := make([]int, len(ords))
	for i, o := range ords {
		if o > removed {
			o--
		}
		out[i] = o
	}
	return out
}

// Replace assigns a fresh ordinal to every member of a sibling scope from a
// client-submitted full ordering. current is the scope's present membership,
// submitted the desired order. The policy is strict: submitted must be an
// exact permutation of current. Unknown ids, missing ids, and duplicates are
// all rejected, so a stale client list never half-applies.
func Replace(current, submitted []string) (map[string]int, error) {
	if len(submitted) != len(current) {
		return nil, fmt.Errorf("expected %d ids, got %d", len(current), len(submitted))
	}

	members := make(map[string]bool, len(current))
	for _, id := range current {
		members[id] = true
	}

	assigned := make(map[string]int, len(submitted))
	for i, id := range submitted {
		if !members[id] {
			return nil, fmt.Errorf("unknown id %q", id)
		}
		if _, dup := assigned[id]; dup {
			return nil, fmt.Errorf("duplicate id %q", id)
		}
		assigned[id] = i
	}

	// Equal length, all members, no duplicates: full cover is implied.
	return assigned, nil
}

// Contiguous reports whether ords is exactly {0, ..., len(ords)-1} with no
// gaps or duplicates.
func Contiguous(ords []int) bool {
	sorted := make([]int, len(ords))
	copy(sorted, ords)
	sort.Ints(sorted)
	for i, o := range sorted {
		if o != i {
			return false
		}
	}
	return true
}
