package app

import (
	"context"
	"log"
	"os"
	"time"

	"jobmatch/internal/config"
	"jobmatch/internal/database"
	dbpostgres "jobmatch/internal/database/postgres"
	"jobmatch/internal/database/seeder"
	"jobmatch/internal/infrastructure/cache"
	"jobmatch/internal/ws"
)

// Container holds the process-wide dependencies shared by the HTTP server
// and the aggregator.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Logger *log.Logger
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "[jobmatch] ", log.LstdFlags|log.Lmsgprefix)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Database.EnsureSchema {
		runner := seeder.Runner{Seeders: seeder.Defaults()}
		if err := runner.Run(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		Hub:    ws.NewHub(logger),
		Logger: logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
