// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the EvalProject API.

Routes use Go 1.22+ method patterns on the standard ServeMux:

	GET    /health                  → liveness (auto-sync target)
	GET    /projects                → public listing with aggregates
	GET    /projects/{id}           → project detail
	GET    /projects/{id}/comments  → public comment list
	GET    /projects/{id}/rating    → caller's rating (pre-fill)
	POST   /projects/{id}/rating    → first-time rating
	PUT    /projects/{id}/rating    → revised rating
	GET    /projects/{id}/comment   → caller's comment (pre-fill)
	POST   /projects/{id}/comment   → first comment
	PUT    /projects/{id}/comment   → revised comment
	POST   /projects                → create project (admin)
	PUT    /projects/{id}           → update project (admin)
	DELETE /projects/{id}           → delete project (admin)
	GET    /admin/dashboard         → aggregated stats (admin)

Admin routes require the X-Admin-Key header; everything else is public.
All handlers are wrapped with request logging.
*/
package router
