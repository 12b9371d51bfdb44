package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/fundkit/modules/account"
	"github.com/dmitrymomot/fundkit/modules/funding"
	"github.com/dmitrymomot/fundkit/pkg/config"
	"github.com/dmitrymomot/fundkit/pkg/httpserver"
	"github.com/dmitrymomot/fundkit/pkg/logger"
	"github.com/dmitrymomot/fundkit/pkg/mailer"
	"github.com/dmitrymomot/fundkit/pkg/pg"
	"github.com/dmitrymomot/fundkit/pkg/ratelimit"
	"github.com/dmitrymomot/fundkit/pkg/redisconn"
)

type appConfig struct {
	Env             string        `env:"APP_ENV" envDefault:"development"`
	RateLimit       int           `env:"RATE_LIMIT" envDefault:"10"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`

	HTTP  httpserver.Config
	PG    pg.Config
	Redis redisconn.Config
	Mail  mailer.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	var log *slog.Logger
	if cfg.Env == "production" {
		log = logger.New(logger.WithProduction("fundkit"))
	} else {
		log = logger.New(logger.WithDevelopment("fundkit"))
	}
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	pool, err := pg.Connect(ctx, cfg.PG)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, cfg.PG, log); err != nil {
		return err
	}

	redisClient, err := redisconn.Connect(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	limiter, err := ratelimit.NewFixedWindow(
		ratelimit.NewRedisStore(redisClient),
		ratelimit.Config{Limit: cfg.RateLimit, Window: cfg.RateLimitWindow},
	)
	if err != nil {
		return err
	}
	throttle := ratelimit.Middleware(limiter, ratelimit.ByClientIP())

	mail, err := newSender(cfg, log)
	if err != nil {
		return err
	}

	accountSvc := account.NewService(account.NewPGStorage(pool), mail, log)
	fundingSvc := funding.NewService(funding.NewPGStorage(pool), mail, log)

	r := chi.NewRouter()
	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log,
		pg.Healthcheck(pool), redisconn.Healthcheck(redisClient)))
	r.Mount("/accounts", account.NewRouter(accountSvc, log, throttle))
	r.Mount("/funding", funding.NewRouter(fundingSvc, log, throttle))

	return httpserver.New(cfg.HTTP, log).Run(ctx, r)
}

// newSender picks Postmark when credentials are configured and falls
// back to the log sender for local development.
func newSender(cfg appConfig, log *slog.Logger) (mailer.Sender, error) {
	if cfg.Mail.PostmarkServerToken == "" {
		log.Warn("postmark not configured, emails will be logged only")
		return mailer.NewLogSender(log), nil
	}
	return mailer.NewPostmarkSender(cfg.Mail)
}
