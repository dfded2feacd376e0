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

	"github.com/spf13/cobra"

	"github.com/HarshPrajapati4926/Video-Streaming-Platform/internal/config"
	"github.com/HarshPrajapati4926/Video-Streaming-Platform/internal/logging"
	"github.com/HarshPrajapati4926/Video-Streaming-Platform/internal/server"
	"github.com/HarshPrajapati4926/Video-Streaming-Platform/internal/signaling"
)

var (
	flagAddr     string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "relay-server",
	Short: "Signaling relay for one-to-many WebRTC video broadcasts",
	Long: `relay-server coordinates one sender and many viewers: it hands out
rooms, admits viewers (optionally password-gated), relays the WebRTC
handshake between peers and fans playback-sync commands out to every
viewer. Media never passes through it.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&flagAddr, "addr", "", "listen address (default \":8080\", env ADDR)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error (env LOG_LEVEL)")
}

// Health Check endpoint
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Signaling server is healthy."))
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Load(config.Options{
		Addr:     flagAddr,
		LogLevel: flagLogLevel,
	})
	logging.Init(cfg.LogLevel)

	hub := signaling.NewHub()

	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthCheckHandler)
	mux.HandleFunc("/ws", server.ServeWs(hub))

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: mux,
	}

	// Shut down cleanly on SIGINT/SIGTERM.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		slog.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	}()

	slog.Info("starting signaling server", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func main() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
