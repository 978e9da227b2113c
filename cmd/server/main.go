package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Michaux-Technology/Geco-SchoolPlan/config"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/api/handler"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/api/middleware"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/api/router"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/realtime"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/repository"
	"github.com/Michaux-Technology/Geco-SchoolPlan/internal/service"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/database"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/jwt"
	applogger "github.com/Michaux-Technology/Geco-SchoolPlan/pkg/logger"
	"github.com/Michaux-Technology/Geco-SchoolPlan/pkg/redis"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "chargement de la configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initialisation du logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("démarrage du serveur",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("connexion à la base impossible", zap.Error(err))
	}
	logger.Info("base de données connectée")

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("accès au sql.DB sous-jacent impossible", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("échec des migrations", zap.Error(err))
	}

	// Redis is optional: without it logout simply stops revoking
	// tokens before their natural expiry.
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis indisponible, révocation des tokens désactivée", zap.Error(err))
		rdb = nil
	}

	jwtMgr := jwt.NewManager(&cfg.Auth)
	limiter := middleware.NewLoginLimiter(cfg.Auth.MaxLoginAttempts, cfg.Auth.BlockDuration)

	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, logger)

	hubCtx, stopHub := context.WithCancel(context.Background())
	hub := realtime.NewHub(logger)
	go hub.Run(hubCtx)
	gw := realtime.NewGateway(hub, svc, cfg.Server.CORS.AllowOrigins, logger)

	h := handler.NewHandler(svc, rdb, limiter, logger)
	engine := router.Setup(cfg, h, gw, jwtMgr, rdb, limiter, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("serveur HTTP démarré", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("serveur HTTP en échec", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("signal reçu, arrêt en cours", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("arrêt du serveur en échec", zap.Error(err))
	}

	stopHub()

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("serveur arrêté")
}
