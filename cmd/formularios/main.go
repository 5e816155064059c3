package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/viper"

	"github.com/dplaneacion/formularios-mga/internal/api"
	"github.com/dplaneacion/formularios-mga/internal/pkg/constants"
	"github.com/dplaneacion/formularios-mga/internal/pkg/logger"
	"github.com/dplaneacion/formularios-mga/internal/pkg/store"
)

func initConfig() {
	viper.SetDefault(constants.ViperKeyListenAddr, ":8080")
	viper.SetDefault(constants.ViperKeyLogLevel, "info")
	viper.SetDefault(constants.ViperKeyCORSOrigins, []string{"http://localhost:3000"})

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/formularios-mga")
	// la configuración puede venir entera de variables de entorno
	_ = viper.ReadInConfig()
}

func main() {
	initConfig()

	ctx := context.Background()

	if err := logger.Init(viper.GetString(constants.ViperKeyLogLevel)); err != nil {
		logger.Fatal(ctx, err)
	}
	defer logger.Sync()

	dsn := viper.GetString(constants.ViperKeyPostgresDSN)
	if dsn == "" {
		logger.Error(ctx, "postgres_dsn no configurado")
		os.Exit(1)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	err = backoff.Retry(
		func() error { return pool.Ping(ctx) },
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Second), 30),
			ctx,
		),
	)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	if err := store.RunMigrations(dsn); err != nil {
		logger.Fatal(ctx, err)
	}

	apiService, err := api.NewAPIService(store.NewStore(pool))
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go apiService.Serve(viper.GetString(constants.ViperKeyListenAddr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info(ctx, "apagando el servidor")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := apiService.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "shutdown: %v", err)
	}
}
