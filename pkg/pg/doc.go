// Package pg bootstraps the PostgreSQL connection pool used by the role
// assignment store. It wraps pgx/v5 with a declarative, env-driven Config,
// connection retries with backoff, a health check closure, and error
// classification helpers.
//
// # Usage
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil {
//	    panic(err)
//	}
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    panic(err)
//	}
//	defer pool.Close()
//
//	store := assignments.NewStore(pool)
//
// Schema migrations are intentionally out of scope; the embedding
// application owns the role_assignments schema.
package pg
