// Package pg bootstraps a resilient PostgreSQL layer for the order intake
// service using the pgx/v5 driver: connection pooling from environment
// configuration, a fixed-interval retry loop for startup races against the
// database, goose schema migrations and error classification helpers.
//
// Retrying is linear on purpose: the service sits behind a process manager
// that restarts it, so waiting a fixed interval between a small number of
// attempts is enough to ride out database startup without backoff tuning.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, slog.Default()); err != nil {
//	    return err
//	}
package pg
