// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the QForm API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health and form state:

	GET /health
	GET /questions

Question mutations:

	POST   /questions          - Append question
	PUT    /questions/reorder  - Full top-level reorder
	PUT    /questions/{id}     - Edit text
	DELETE /questions/{id}     - Delete + close ordinal gap

Option mutations:

	POST   /questions/{id}/options             - Append option
	PUT    /questions/{id}/options             - Replace full option set
	PUT    /questions/{id}/options/reorder     - Full per-question reorder
	PATCH  /questions/{id}/options/{optionID}  - Edit text / selection
	DELETE /questions/{id}/options/{optionID}  - Delete + close ordinal gap

Literal segments win over wildcards in Go 1.22 routing, so
PUT /questions/reorder takes precedence over PUT /questions/{id}.

# Handler Initialization

The router wires the dependency chain:

	st := store.New(db)
	questionManager := questions.NewManager(st)
	optionManager := questions.NewOptionManager(st)

and hands the managers to the handlers. All routes are wrapped in request
logging.
*/
package router
