// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - EditQuestionRequest: text
  - ReorderQuestionsRequest: question_ids (full top-level ordering)
  - EditOptionRequest: text?, selected? (pointers; either may be omitted)
  - ReorderOptionsRequest: option_ids (full ordering of one question's options)
  - ReplaceOptionsRequest: options ([{text, selected}], destructive replace)

# Domain Types

  - Question: id, ord, text, options
  - Option: id, question_id, ord, text, selected

ord is the zero-based position within the sibling scope; after every
committed mutation the ords of a scope are contiguous 0..k-1.

# Errors

The mutation error taxonomy:

  - ErrNotFound: referenced question/option does not exist
  - ErrValidation: malformed or semantically invalid input, rejected before
    any storage write
  - PersistenceError: storage transaction failed; rolled back in full

Handlers map these to 404, 400, and 500 respectively. No mutation is ever
retried automatically.

# Constants

Placeholder text for newly created items:

	DefaultQuestionText = "Question"
	DefaultOptionText   = "Option"
*/
package models
