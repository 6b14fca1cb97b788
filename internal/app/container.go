package app

import (
	"context"
	"log"
	"time"

	"career-compass/internal/config"
	"career-compass/internal/database"
	dbpostgres "career-compass/internal/database/postgres"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/ws"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Logger *log.Logger
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.Default()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	rds := cache.NewRedis(cache.Options{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
	}, logger)

	hub := ws.NewHub(logger)

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  rds,
		Hub:    hub,
		Logger: logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
