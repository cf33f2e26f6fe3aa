package infra

import (
	"context"
	"database/sql"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"github.com/prypal/backend/internal/app/appconfig"
)

func Postgres(conf *appconfig.Config) (*bun.DB, error) {
	pgdb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(conf.PostgresDSN)))

	pgdb.SetMaxOpenConns(conf.PostgresMaxOpenConns)
	pgdb.SetMaxIdleConns(conf.PostgresMaxIdleConns)
	pgdb.SetConnMaxLifetime(conf.PostgresConnMaxLifeTime)
	pgdb.SetConnMaxIdleTime(conf.PostgresConnMaxIdleTime)

	db := bun.NewDB(pgdb, pgdialect.New())
	if conf.BunDebugVerbose {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	// Transient bring-up failures are the adapter's to absorb; everything past
	// this point surfaces backend errors directly to the caller.
	err := retry.Do(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return db.PingContext(ctx)
	}, retry.Attempts(5), retry.OnRetry(func(n uint, err error) {
		log.Warn().Err(err).Uint("attempt", n).Msg("infra: postgres: failed to ping database. retrying")
	}))
	if err != nil {
		return nil, errors.Wrap(err, "infra: postgres: failed to connect")
	}

	return db, nil
}
