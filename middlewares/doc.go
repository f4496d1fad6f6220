// Package middlewares provides net/http middleware for the echoes service:
// request-scoped locale negotiation, request IDs, panic recovery, and CORS.
//
// All middleware has the standard func(http.Handler) http.Handler shape and
// composes with any router, including chi:
//
//	r := chi.NewRouter()
//	r.Use(middlewares.RequestID())
//	r.Use(middlewares.Recover(log))
//	r.Use(middlewares.Locale(svc))
package middlewares
