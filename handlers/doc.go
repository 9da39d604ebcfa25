// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the QForm API.

# Handler Types

Each handler is a struct holding its collection manager dependency:

  - QuestionHandler: question mutations (create, edit, delete, reorder)
  - OptionHandler: option mutations (create, edit/select, delete, reorder,
    replace-all)
  - FormHandler: read-only form state and health

Handlers are created via constructor functions:

	questionHandler := handlers.NewQuestionHandler(qm)

# Mutation Boundary

Handlers validate and coerce the client payload into a typed request from
package models, invoke the manager operation, and return the resulting
canonical state. The ordinal bookkeeping itself lives below, in the
managers; handlers never touch SQL.

	POST   /questions                          → Create (201 Question)
	PUT    /questions/reorder                  → Reorder (204)
	PUT    /questions/{id}                     → Edit (200 Question)
	DELETE /questions/{id}                     → Delete (204)
	POST   /questions/{id}/options             → Create option (201 Option)
	PUT    /questions/{id}/options             → ReplaceAll (200 []Option)
	PUT    /questions/{id}/options/reorder     → Reorder options (204)
	PATCH  /questions/{id}/options/{optionID}  → Edit option (200 Option)
	DELETE /questions/{id}/options/{optionID}  → Delete option (204)

# Error Mapping

	models.ErrValidation      → 400
	models.ErrNotFound        → 404
	anything else (storage)   → 500, detail logged, not exposed
*/
package handlers
