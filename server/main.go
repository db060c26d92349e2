package main

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/log"
	"github.com/gofiber/fiber/v3/middleware/logger"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meikuraledutech/automata"
	"github.com/meikuraledutech/automata/api"
	"github.com/meikuraledutech/automata/config"
	"github.com/meikuraledutech/automata/memory"
	"github.com/meikuraledutech/automata/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var store automata.Store
	if cfg.DatabaseURL == "" {
		log.Info("DATABASE_URL is not set, using in-memory store")
		store = memory.New()
	} else {
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("connect: %v", err)
		}
		defer pool.Close()
		store = postgres.New(pool)
	}

	app := fiber.New()
	app.Use(recoverer.New())
	app.Use(logger.New())

	api.New(store, cfg.Options()...).Register(app)

	log.Infof("max DFA states %d, lenient %t", cfg.MaxStates, cfg.Lenient)
	log.Fatal(app.Listen(cfg.ListenAddr))
}
