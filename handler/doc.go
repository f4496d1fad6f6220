// Package handler exposes the translation service over HTTP.
//
// Endpoints are declared on a chi router and mounted under /api/echoes:
//
//	h := handler.New(svc, handler.WithLogger(log))
//	r := chi.NewRouter()
//	r.Route("/api/echoes", h.Routes)
//
// All responses are JSON. The translate endpoints fall back to the locale
// negotiated by the middlewares.Locale middleware when the request body does
// not name one.
package handler
