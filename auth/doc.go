// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides token generation utilities.

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(8)  // 16 hex characters

IDs are assigned once at creation and never reused; question and option ids
come from the same generator.
*/
package auth
