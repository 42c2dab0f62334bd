// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the NM draw odds API.

# Handler Types

Each handler is a struct with database and metrics dependencies:

  - DrawHandler: draw odds, hunt list, best hunts, bag limits
  - PlanHandler: three-choice application advice

Handlers are built once by the router:

	drawHandler := handlers.NewDrawHandler(db, m)

The computation lives in package draw; handlers validate input, run the
query with the request context and write JSON.

# Errors

Invalid input returns 400 with {"error": "<message>"}:

	Invalid pool
	Invalid type for field <name>
	species_code is required
	gmu is required
	Exactly three choices are required

Database failures return 500 with {"error": "Database error"} and are
logged with the request ID.

# Application Plans

	POST /api/application_plan
	{"pool": "resident", "species_code": "ELK", "choices": ["ELK-1-100", "ELK-1-200", "ELK-1-300"]}

The pool defaults to resident only when the key is absent; "pool": null
and "pool": "" are invalid, as is "?pool=" on the GET endpoints. A body
that is not JSON at all is treated as an empty request, so it fails on the
missing species code. Valid JSON with a wrongly typed field is rejected
with the field name.
*/
package handlers
