// Package health provides HTTP handlers for liveness and readiness probes.
//
// LivenessHandler always answers OK while the process runs. ReadinessHandler
// executes a set of named Checks in parallel and reports aggregate status,
// optionally tagged with a service name and version.
//
// Handlers respond with plain text by default for probe compatibility, and
// with JSON when the client asks for it (Accept: application/json or
// ?format=json):
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//		"translations": func(ctx context.Context) error {
//			if len(store.Locales()) == 0 {
//				return errors.New("no translations loaded")
//			}
//			return nil
//		},
//	}, health.WithService("echoes", "1.0.0")))
package health
