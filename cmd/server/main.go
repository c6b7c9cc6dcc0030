package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iamumarjaved/padelbridge1/internal/config"
	"github.com/iamumarjaved/padelbridge1/internal/handler"
	"github.com/iamumarjaved/padelbridge1/internal/infra"
	"github.com/iamumarjaved/padelbridge1/internal/repository"
	"github.com/iamumarjaved/padelbridge1/internal/router"
	"github.com/iamumarjaved/padelbridge1/internal/service"
	"github.com/iamumarjaved/padelbridge1/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load configuration")
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL, cfg.Env)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to database")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to redis")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	courtRepo := repository.NewCourtRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	itemRepo := repository.NewItemRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	stockTxRepo := repository.NewStockTransactionRepository(db)

	// Background jobs
	dispatcher := worker.NewDispatcher(rdb)
	mailer := infra.NewMailer(cfg)
	stockAlertWorker := worker.NewStockAlertWorker(mailer, cfg)
	receiptWorker := worker.NewReceiptWorker(bookingRepo, mailer, cfg)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	worker.StartWorkerPool(workerCtx, rdb, cfg.WorkerPoolSize, worker.Handlers{
		StockAlert: stockAlertWorker.Handle,
		Receipt:    receiptWorker.Handle,
	})

	// Services
	authSvc := service.NewAuthService(userRepo, cfg)
	courtSvc := service.NewCourtService(courtRepo)
	categorySvc := service.NewCategoryService(categoryRepo)
	inventorySvc := service.NewInventoryService(itemRepo, categoryRepo, stockTxRepo, dispatcher)
	bookingSvc := service.NewBookingService(bookingRepo, courtRepo, dispatcher)
	saleSvc := service.NewSaleService(saleRepo, bookingRepo, itemRepo, dispatcher)
	reportSvc := service.NewReportService(saleRepo)

	engine := router.New(cfg, router.Handlers{
		Health:     handler.NewHealthHandler(db, rdb),
		Auth:       handler.NewAuthHandler(authSvc),
		Courts:     handler.NewCourtHandler(courtSvc),
		Categories: handler.NewCategoryHandler(categorySvc),
		Inventory:  handler.NewInventoryHandler(inventorySvc, rdb),
		Bookings:   handler.NewBookingHandler(bookingSvc, cfg),
		Sales:      handler.NewSaleHandler(saleSvc),
		Reports:    handler.NewReportHandler(reportSvc),
		PriceCheck: handler.NewPriceCheckHandler(itemRepo, rdb),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	stopWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = rdb.Close()
	log.Info().Msg("bye")
}
