package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MarcoPoloResearchLab/onematch/backend/internal/auth"
	"github.com/MarcoPoloResearchLab/onematch/backend/internal/config"
	"github.com/MarcoPoloResearchLab/onematch/backend/internal/interests"
	"github.com/MarcoPoloResearchLab/onematch/backend/internal/logging"
	"github.com/MarcoPoloResearchLab/onematch/backend/internal/matches"
	"github.com/MarcoPoloResearchLab/onematch/backend/internal/profiles"
	"github.com/MarcoPoloResearchLab/onematch/backend/internal/server"
	"github.com/MarcoPoloResearchLab/onematch/backend/internal/users"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "onematch-api",
		Short: "OneMatch onboarding and matching backend service",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}

	setupFlags(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupFlags(cmd *cobra.Command) {
	config.ApplyDefaults(viper.GetViper())
	defaults := config.NewViper()
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to configuration file")
	cmd.PersistentFlags().String("http-address", defaults.GetString("http.address"), "HTTP listen address")
	cmd.PersistentFlags().Int("session-ttl-minutes", defaults.GetInt("session.token_ttl_minutes"), "Session token TTL in minutes")
	cmd.PersistentFlags().String("log-level", defaults.GetString("log.level"), "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().Bool("seed", defaults.GetBool("seed.enabled"), "Seed the store with demo members and interests")
	cmd.PersistentFlags().String("signing-secret", "", "Session signing secret (overrides env)")

	bindFlag(cmd, "http.address", "http-address")
	bindFlag(cmd, "session.token_ttl_minutes", "session-ttl-minutes")
	bindFlag(cmd, "log.level", "log-level")
	bindFlag(cmd, "seed.enabled", "seed")
	bindFlag(cmd, "session.signing_secret", "signing-secret")
}

func bindFlag(cmd *cobra.Command, key, flag string) {
	if err := viper.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	if err := viper.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if cfgFile != "" && errors.As(err, &configNotFound) {
			return err
		}
	}

	return nil
}

func runServer(ctx context.Context) error {
	appConfig, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(appConfig.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	store := users.NewStore(users.StoreConfig{Logger: logger})
	catalog := interests.NewCatalog(interests.CatalogConfig{
		Seed:   interests.DefaultInterests(),
		Logger: logger,
	})
	if appConfig.SeedEnabled {
		store.Seed(users.SeedProfiles())
		logger.Info("seeded demo members", zap.Int("count", len(users.SeedProfiles())))
	}

	profileService, err := profiles.NewService(profiles.ServiceConfig{
		Store:   store,
		Catalog: catalog,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	sessionIssuer := auth.NewSessionIssuer(auth.SessionIssuerConfig{
		SigningSecret: []byte(appConfig.SessionSigningKey),
		Issuer:        "onematch-auth",
		Audience:      "onematch-api",
		SessionTTL:    appConfig.SessionTokenTTL,
	})

	handler, err := server.NewHTTPHandler(server.Dependencies{
		Store:          store,
		Catalog:        catalog,
		ProfileService: profileService,
		MatchProvider:  matches.NewProvider(),
		SessionManager: sessionIssuer,
		Events:         server.NewProfileEventDispatcher(),
		Logger:         logger,
	})
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:    appConfig.HTTPAddress,
		Handler: handler,
	}

	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("address", appConfig.HTTPAddress))
		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-signalCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
