package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	authinfra "github.com/Mouss-42/ReactSituPro-main/pkg/auth/infrastructure"
	authmodel "github.com/Mouss-42/ReactSituPro-main/pkg/auth/domain/model"
	authservice "github.com/Mouss-42/ReactSituPro-main/pkg/auth/domain/service"
	cartmodel "github.com/Mouss-42/ReactSituPro-main/pkg/cart/domain/model"
	cartservice "github.com/Mouss-42/ReactSituPro-main/pkg/cart/domain/service"
	"github.com/Mouss-42/ReactSituPro-main/pkg/cart/infrastructure/storage"
	cataloginfra "github.com/Mouss-42/ReactSituPro-main/pkg/catalog/infrastructure"
	catalogservice "github.com/Mouss-42/ReactSituPro-main/pkg/catalog/domain/service"
	checkoutmodel "github.com/Mouss-42/ReactSituPro-main/pkg/checkout/domain/model"
	checkoutservice "github.com/Mouss-42/ReactSituPro-main/pkg/checkout/domain/service"
	"github.com/Mouss-42/ReactSituPro-main/pkg/checkout/infrastructure/notification"
	"github.com/Mouss-42/ReactSituPro-main/pkg/checkout/infrastructure/payment"
	"github.com/Mouss-42/ReactSituPro-main/pkg/common/infrastructure/event"
	"github.com/Mouss-42/ReactSituPro-main/pkg/config"
	"github.com/Mouss-42/ReactSituPro-main/pkg/database"
	"github.com/Mouss-42/ReactSituPro-main/pkg/transport"
)

const shutdownTimeout = 10 * time.Second

func serve(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log.SetLevel(cfg.Level())
	logger := log.StandardLogger()

	db, err := database.Open(cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	cartStorage, closeStorage, err := newCartStorage(c.Context, cfg, db)
	if err != nil {
		return err
	}
	defer closeStorage()

	pricing, err := cfg.Pricing()
	if err != nil {
		return err
	}

	dispatcher := event.NewDispatcher(logger)
	confirmation := checkoutservice.NewConfirmationService(notification.NewLogSender(logger))
	dispatcher.Subscribe(checkoutmodel.OrderPlaced{}.Type(), confirmation.HandleOrderPlaced)

	cart := cartservice.NewCartStore(cartStorage, dispatcher, logger)
	products := catalogservice.NewProductService(cataloginfra.NewMySQLProductRepository(db), dispatcher)
	auth := authservice.NewAuthService(
		authinfra.NewMySQLUserRepository(db),
		authinfra.NewBcryptPasswordManager(cfg.BcryptCost),
		authinfra.NewJWTIssuer(cfg.JWTSecret, cfg.JWTTTL),
		dispatcher,
	)

	deps := checkoutservice.Dependencies{
		Cart:         cart,
		Processor:    payment.NewSimulatedProcessor(cfg.ProcessingDelay, logger),
		OrderNumbers: newOrderNumbers(cfg),
		Dispatcher:   dispatcher,
		Logger:       logger,
		Pricing:      pricing,
	}

	router := transport.Router(transport.Options{
		Products: products,
		Cart:     cart,
		Auth:     auth,
		NewWizard: func(session authmodel.Session) (checkoutservice.Wizard, error) {
			return checkoutservice.NewWizard(deps, session)
		},
		RequireAuth: cfg.RequireAuth,
		Logger:      logger,
	})

	srv := &http.Server{Addr: cfg.ServeHTTPAddress, Handler: router}
	killSignalChan := getKillSignalChan()

	g, ctx := errgroup.WithContext(c.Context)
	g.Go(func() error {
		log.WithFields(log.Fields{
			"url":     cfg.ServeHTTPAddress,
			"storage": cfg.Storage,
		}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return errors.Wrap(err, "failed to start server")
		}
		return nil
	})
	g.Go(func() error {
		waitForKillSignal(ctx, killSignalChan)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func newCartStorage(ctx context.Context, cfg *config.Config, db *sqlx.DB) (cartmodel.Storage, func(), error) {
	noop := func() {}
	switch cfg.Storage {
	case config.StorageMemory:
		return storage.NewMemoryStorage(), noop, nil
	case config.StorageMySQL:
		return storage.NewMySQLStorage(db), noop, nil
	case config.StorageRedis:
		s := storage.NewRedisStorage(cfg.RedisAddress, cfg.RedisPassword, cfg.RedisDB)
		if err := s.Ping(ctx); err != nil {
			_ = s.Close()
			return nil, nil, errors.Wrap(err, "failed to reach redis")
		}
		return s, func() { _ = s.Close() }, nil
	default:
		return storage.NewFileStorage(cfg.StorageFile), noop, nil
	}
}

func newOrderNumbers(cfg *config.Config) checkoutmodel.OrderNumberGenerator {
	if cfg.OrderNumbers == config.OrderNumbersSequential {
		return checkoutservice.NewSequentialOrderNumbers(0)
	}
	return checkoutservice.RandomOrderNumbers{}
}

func getKillSignalChan() chan os.Signal {
	osKillSignalChan := make(chan os.Signal, 1)
	signal.Notify(osKillSignalChan, os.Interrupt, syscall.SIGTERM)
	return osKillSignalChan
}

func waitForKillSignal(ctx context.Context, killSignalChan <-chan os.Signal) {
	select {
	case killSignal := <-killSignalChan:
		switch killSignal {
		case os.Interrupt:
			log.Info("Got SIGINT...")
		case syscall.SIGTERM:
			log.Info("Got SIGTERM...")
		}
	case <-ctx.Done():
	}
}
