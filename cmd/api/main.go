package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"dhwani-platform/internal/auth"
	"dhwani-platform/internal/campaigns"
	"dhwani-platform/internal/catalog"
	"dhwani-platform/internal/config"
	"dhwani-platform/internal/contacts"
	"dhwani-platform/internal/httpapi"
	"dhwani-platform/internal/ingest"
	"dhwani-platform/internal/lookup"
	"dhwani-platform/internal/reporting"
	"dhwani-platform/pkg/logger"
	"dhwani-platform/pkg/utils"
)

func main() {
	// Root context that cancels on shutdown
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	log := logger.New(cfg.App.Env)
	slog.SetDefault(log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	authManager, err := auth.NewManager(cfg.Auth)
	if err != nil {
		log.Error("auth init failed", "err", err)
		os.Exit(1)
	}

	db, err := utils.OpenPostgres(rootCtx, "pgx", cfg.PostgresDSN(), utils.PostgresPoolConfig{})
	if err != nil {
		log.Error("postgres init failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	rdb, err := utils.OpenRedis(rootCtx, utils.RedisConfig{Addr: cfg.RedisAddr()})
	if err != nil {
		log.Error("redis init failed", "err", err)
		os.Exit(1)
	}
	defer rdb.Close()

	// Repositories and services
	contactRepo := contacts.NewPostgresRepo(db, rdb, cfg.Cache.PhoneIndexTTL)
	resolver := contacts.NewResolver(contactRepo)

	campaignRepo := campaigns.NewPostgresRepo(db)
	catalogRepo := catalog.NewPostgresRepo(db)

	handlers := httpapi.Handlers{
		Lookup:    lookup.NewService(resolver, campaigns.NewSelector(campaignRepo), catalogRepo),
		Ingest:    ingest.NewService(ingest.NewPostgresRepo(db), resolver, contactRepo),
		Campaigns: campaigns.NewService(campaignRepo),
		Reporting: reporting.NewService(reporting.NewPostgresRepo(db)),
	}

	// Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.Middleware(log))
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"authorization", "x-client-info", "apikey", "content-type"},
		MaxAge:       12 * time.Hour,
	}))

	accountMW := auth.RequireAccount(authManager, auth.NewPostgresKeyStore(db), cfg.Auth.APIKeyPrefix)
	registerRoutes(r, handlers, accountMW, db)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("api listening", "addr", srv.Addr, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "err", err)
			stop()
		}
	}()

	<-rootCtx.Done()
	log.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", "err", err)
	}
}
