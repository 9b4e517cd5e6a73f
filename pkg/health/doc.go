// Package health aggregates named dependency checks into a single report and
// exposes the conventional HTTP probe endpoints.
//
// A Registry holds CheckFunc probes registered under unique names. Check runs
// them all (failures do not short-circuit, so the report always covers every
// dependency) and the aggregate status is ok only when each check passed.
// Failing checks are logged through the configured slog.Logger.
//
// # Usage
//
//	reg := health.NewRegistry(health.WithLogger(log))
//	_ = reg.Register("database", func(ctx context.Context) error { return db.Ping(ctx) })
//
//	r := chi.NewRouter()
//	r.Mount("/", reg.Routes()) // GET /healthz, GET /readyz
package health
