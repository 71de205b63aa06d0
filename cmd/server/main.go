package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"compliance-advisor/internal/decision"
	decisionhandler "compliance-advisor/internal/decision/handler"
	decisionmetrics "compliance-advisor/internal/decision/metrics"
	identifierhandler "compliance-advisor/internal/identifier/handler"
	identifiermetrics "compliance-advisor/internal/identifier/metrics"
	"compliance-advisor/internal/platform/config"
	"compliance-advisor/internal/platform/httpserver"
	"compliance-advisor/internal/platform/logger"
	"compliance-advisor/internal/platform/metrics"
	redisclient "compliance-advisor/internal/platform/redis"
	ruleshandler "compliance-advisor/internal/rules/handler"
	rulesmetrics "compliance-advisor/internal/rules/metrics"
	rulesservice "compliance-advisor/internal/rules/service"
	"compliance-advisor/internal/rules/source"
	"compliance-advisor/internal/rules/store"
	httptransport "compliance-advisor/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	rdb, err := redisclient.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}

	var (
		cache  rulesservice.RulesCache
		health httptransport.HealthChecker
	)
	if rdb != nil {
		defer rdb.Close()
		cache = store.NewRedisCache(rdb.Client, cfg.Rules.CacheTTL)
		health = rdb
		log.Info("rules cache backed by redis")
	} else {
		cache = store.NewInMemoryCache(cfg.Rules.CacheTTL)
		log.Info("rules cache held in memory")
	}

	if !cfg.Rules.Configured() {
		log.Warn("rules source credentials missing; serving built-in rules only")
	}
	client := source.New(source.Config{
		BaseURL: cfg.Rules.BaseURL,
		User:    cfg.Rules.User,
		Token:   cfg.Rules.Token,
		Timeout: cfg.Rules.FetchTimeout,
	})

	rules, err := rulesservice.New(client, cache, rulesservice.Documents{
		Transfer:          documentRef(cfg.Rules.Transfer),
		CompanyCountries:  documentRef(cfg.Rules.CompanyCountries),
		CompanyActivities: documentRef(cfg.Rules.CompanyActivities),
	},
		rulesservice.WithLogger(log),
		rulesservice.WithMetrics(rulesmetrics.New()),
	)
	if err != nil {
		return err
	}

	decisions, err := decision.New(rules,
		decision.WithLogger(log),
		decision.WithMetrics(decisionmetrics.New()),
	)
	if err != nil {
		return err
	}

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:  log,
		Metrics: metrics.New(),
		Handlers: []httptransport.Registrar{
			decisionhandler.New(decisions, log),
			identifierhandler.New(log, identifiermetrics.New()),
			ruleshandler.New(rules, log),
		},
		Cache:           health,
		RulesConfigured: cfg.Rules.Configured(),
	})
	srv := httpserver.New(cfg.Server.Addr, router)

	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting compliance-advisor", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func documentRef(d config.DocumentConfig) rulesservice.DocumentRef {
	return rulesservice.DocumentRef{ID: d.ID, Space: d.Space, Title: d.Title}
}
