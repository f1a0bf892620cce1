package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/grigorv/snackshop/internal/database"
	"github.com/grigorv/snackshop/internal/env"
	"github.com/grigorv/snackshop/internal/service"
	"github.com/grigorv/snackshop/internal/session"
	"github.com/grigorv/snackshop/internal/version"
)

var _cfgFile = flag.String("cfg", "", "path to config file")

func main() {
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	err := run(logger)
	if err != nil {
		trace := string(debug.Stack())
		logger.Error(err.Error(), "trace", trace)
		os.Exit(1)
	}
}

type config struct {
	httpHost string
	httpPort int
	db       struct {
		dsn         string
		automigrate bool
	}
	session struct {
		ttl           time.Duration
		sweepInterval time.Duration
	}
}

type application struct {
	config   config
	db       *database.DB
	sessions *session.Registry
	account  *service.Account
	order    *service.Order
	catalog  *service.Catalog
	logger   *slog.Logger
	done     chan struct{}
	wg       sync.WaitGroup
}

func run(logger *slog.Logger) error {
	var cfg config

	if *_cfgFile != "" {
		err := env.Load(*_cfgFile)
		if err != nil {
			return err
		}
	}

	cfg.httpHost = env.GetString("HTTP_HOST", "localhost")
	cfg.httpPort = env.GetInt("HTTP_PORT", 8080)
	cfg.db.dsn = env.GetString("DB_DSN", "postgres:postgres@localhost:5432/postgres")
	cfg.db.automigrate = env.GetBool("DB_AUTOMIGRATE", true)
	cfg.session.ttl = time.Duration(env.GetInt("SESSION_TTL", 3600)) * time.Second
	cfg.session.sweepInterval = time.Duration(env.GetInt("SESSION_SWEEP_INTERVAL", 600)) * time.Second

	showVersion := flag.Bool("version", false, "display version and exit")

	flag.Parse()

	if *showVersion {
		fmt.Printf("version: %s\n", version.Get())
		return nil
	}

	db, err := database.New(cfg.db.dsn, cfg.db.automigrate)
	if err != nil {
		return err
	}
	defer db.Close()

	sessions := session.NewRegistry(session.WithTTL(cfg.session.ttl))

	users := database.NewUserDAO(logger, db)
	orders := database.NewOrderDAO(logger, db)
	lines := database.NewOrderLineDAO(logger, db)
	products := database.NewProductDAO(logger, db)

	app := &application{
		config:   cfg,
		db:       db,
		sessions: sessions,
		account:  service.NewAccount(logger, users, sessions),
		order:    service.NewOrder(logger, sessions, orders, lines),
		catalog:  service.NewCatalog(logger, products),
		logger:   logger,
		done:     make(chan struct{}),
	}

	app.startSessionSweeper()

	return app.serveHTTP()
}

func (app *application) startSessionSweeper() {
	app.wg.Add(1)

	go func() {
		defer app.wg.Done()

		ticker := time.NewTicker(app.config.session.sweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-app.done:
				return
			case <-ticker.C:
				if removed := app.sessions.Sweep(); removed > 0 {
					app.logger.Debug("swept expired sessions", "removed", removed)
				}
			}
		}
	}()
}
