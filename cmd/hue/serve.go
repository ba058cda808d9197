package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"hue/internal/config"
	"hue/internal/mascot"
	"hue/internal/web"

	"github.com/spf13/cobra"
)

var (
	servePort    string
	serveHost    string
	serveMascots string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the hue HTTP server. It serves color pages backed by the fixed
registry and mascot pages backed by the animal data file.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Define flags
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (overrides config and HUE_PORT)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (overrides config)")
	serveCmd.Flags().StringVar(&serveMascots, "mascots", "", "Path to the animal data file (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	logger := newLogger(cfg)

	addr, err := resolveAddr(cfg)
	if err != nil {
		return err
	}

	sourcePath := cfg.Mascots.Source
	if serveMascots != "" {
		sourcePath = serveMascots
	}

	var source *mascot.Source
	if cfg.Mascots.Cache {
		source = mascot.NewCachedSource(sourcePath)
	} else {
		source = mascot.NewSource(sourcePath)
	}

	server := web.NewServer(web.ServerConfig{
		Addr:          addr,
		EnableMetrics: cfg.Metrics.Enabled,
	}, source, logger)

	// Setup graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		fmt.Printf("hue listening on http://%s\n", addr)
		fmt.Println("Press Ctrl+C to stop")
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error
	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("Server error", map[string]interface{}{
				"error": err.Error(),
			})
			return err
		}
	case sig := <-shutdown:
		logger.Info("Received shutdown signal", map[string]interface{}{
			"signal": sig.String(),
		})

		// Create shutdown context with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Error during shutdown", map[string]interface{}{
				"error": err.Error(),
			})
			return err
		}

		logger.Info("Server stopped gracefully", nil)
	}

	return nil
}

// resolveAddr builds the listen address from the loaded configuration
// and the serve flags. Flags win over config, and config already
// reflects the HUE_PORT and HUE_HOST environment overrides.
func resolveAddr(cfg *config.Config) (string, error) {
	host := cfg.Server.Host
	if serveHost != "" {
		host = serveHost
	}

	port := cfg.Server.Port
	if servePort != "" {
		p, err := strconv.Atoi(servePort)
		if err != nil || p < 1 || p > 65535 {
			return "", fmt.Errorf("invalid port %q", servePort)
		}
		port = p
	}

	return fmt.Sprintf("%s:%d", host, port), nil
}
