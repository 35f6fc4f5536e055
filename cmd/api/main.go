package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"mavazimarket/internal/auth"
	"mavazimarket/internal/config"
	"mavazimarket/internal/db"
	"mavazimarket/internal/guest"
	"mavazimarket/internal/httpserver"
	"mavazimarket/internal/remote"
	categoryrepo "mavazimarket/internal/repository/category"
	orderrepo "mavazimarket/internal/repository/order"
	productrepo "mavazimarket/internal/repository/product"
	catalogsvc "mavazimarket/internal/service/catalog"
	"mavazimarket/internal/service/merge"
	ordersvc "mavazimarket/internal/service/order"
	"mavazimarket/internal/service/session"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("component", "api").Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	dbpool, err := db.ConnectPostgres(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect postgres")
	}
	defer dbpool.Close()

	redisClient, err := db.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect redis")
	}
	defer redisClient.Close()

	firestoreClient, err := db.ConnectFirestore(ctx, cfg.GCPProjectID, cfg.CredentialsFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect firestore")
	}
	defer firestoreClient.Close()

	authClient, err := db.ConnectFirebaseAuth(ctx, cfg.GCPProjectID, cfg.CredentialsFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect firebase auth")
	}

	guestStore := guest.NewRedis(redisClient, cfg.GuestTTL, logger)
	remoteStore := remote.NewFirestore(firestoreClient, logger)
	merger := merge.New(guestStore, remoteStore, logger)
	sessions := session.NewManager(session.Deps{
		Guest:  guestStore,
		Remote: remoteStore,
		Merger: merger,
		Logger: logger,
	})

	productRepo := productrepo.NewPostgres(dbpool, logger)
	categoryRepo := categoryrepo.NewPostgres(dbpool, logger)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, httpserver.Deps{
		Catalog:     catalogsvc.New(productRepo, categoryRepo),
		Orders:      ordersvc.New(orderRepo, logger),
		Sessions:    sessions,
		Verifier:    auth.NewFirebaseVerifier(authClient),
		AdminAPIKey: cfg.AdminAPIKey,
		CORSOrigins: cfg.CORSAllowOrigins,
		Logger:      logger,
		DB:          dbpool,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("init server")
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		logger.Error().Err(err).Msg("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	} else {
		logger.Info().Msg("server stopped")
	}
}
