package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/thecadors/fileshare/internal/config"
	"github.com/thecadors/fileshare/internal/file"
	"github.com/thecadors/fileshare/internal/identity"
	"github.com/thecadors/fileshare/internal/logger"
	"github.com/thecadors/fileshare/internal/notify"
	"github.com/thecadors/fileshare/internal/schema"
	"github.com/thecadors/fileshare/internal/server"
	"github.com/thecadors/fileshare/internal/storage"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("load config: " + err.Error())
	}

	log, err := logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		panic("init logger: " + err.Error())
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := storage.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		log.Fatal("connect postgres", zap.Error(err))
	}
	defer dbPool.Close()

	minioClient, err := storage.NewMinIOClient(cfg.MinIO)
	if err != nil {
		log.Fatal("connect minio", zap.Error(err))
	}

	if err := storage.EnsureBucket(ctx, minioClient, cfg.MinIO.Bucket, cfg.MinIO.Region); err != nil {
		log.Fatal("ensure bucket", zap.Error(err))
	}

	validator, err := schema.Load()
	if err != nil {
		log.Fatal("load request schemas", zap.Error(err))
	}

	directory := identity.NewPostgresDirectory(dbPool)
	resolver := identity.NewTokenResolver(directory, cfg.Auth)

	records := file.NewRepository(dbPool)
	objects := file.NewMinIOStore(minioClient, cfg.MinIO.Bucket)
	sender := notify.NewSMTPSender(cfg.SMTP)

	fileService := file.NewService(records, objects, sender, cfg.Share.PresignTTL, log)
	fileHandler := file.NewHandler(fileService, resolver, validator, log)

	router := server.NewRouter(server.Dependencies{
		Config:      cfg,
		DB:          dbPool,
		ObjectStore: minioClient,
		FileHandler: fileHandler,
	})

	httpServer := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("fileshare API listening", zap.String("address", cfg.Server.Address()))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info("shutting down gracefully")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
}
