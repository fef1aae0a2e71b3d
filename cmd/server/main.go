package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Simplici0/growthboard/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var envFile string

	runServe := func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(v, envFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return serve(cmd.Context(), cfg, newLogger(cfg, os.Stdout))
	}

	root := &cobra.Command{
		Use:           "growthboard",
		Short:         "Company growth predictor dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	root.PersistentFlags().String("host", "", "interface to listen on (env HOST)")
	root.PersistentFlags().String("port", "", "port to listen on (env PORT, default 8080)")
	_ = v.BindPFlag(config.KeyHost, root.PersistentFlags().Lookup("host"))
	_ = v.BindPFlag(config.KeyPort, root.PersistentFlags().Lookup("port"))

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the dashboard web server",
			Args:  cobra.NoArgs,
			RunE:  runServe,
		},
		newCalcCmd(),
	)

	return root
}

func newLogger(cfg config.Config, out io.Writer) zerolog.Logger {
	if cfg.LogFormat == config.LogFormatConsole {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(cfg.LogLevel).With().Timestamp().Logger()
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully within cfg.ShutdownTimeout.
func serve(ctx context.Context, cfg config.Config, logger zerolog.Logger) error {
	srv, err := newServer()
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.routes(logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", httpServer.Addr).Str("env", cfg.Env).Msg("starting server")
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
		logger.Info().Msg("shutdown initiated")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("graceful shutdown failed")
			if err := httpServer.Close(); err != nil {
				return fmt.Errorf("close server: %w", err)
			}
		}
	}

	return nil
}
