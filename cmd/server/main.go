package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GriffinCanCode/gaussvar/internal/infrastructure/config"
	"github.com/GriffinCanCode/gaussvar/internal/infrastructure/server"
)

func main() {
	// Flags override environment configuration
	port := flag.String("port", "", "Server port (overrides PORT)")
	dev := flag.Bool("dev", false, "Development logging")
	thresholds := flag.String("thresholds", "", "Thresholds profile file (.yaml, .yml or .toml)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != "" {
		cfg.Server.Port = *port
	}
	if *dev {
		cfg.Logging.Development = true
		cfg.Logging.Level = "debug"
	}
	if *thresholds != "" {
		th, err := config.LoadThresholdsFile(*thresholds, cfg.Gaussian.Thresholds())
		if err != nil {
			log.Fatalf("Failed to load thresholds: %v", err)
		}
		cfg.Gaussian.ProductCVLimit = th.ProductCVLimit
		cfg.Gaussian.RatioLambda = th.RatioLambda
		cfg.Gaussian.RatioGammaFactor = th.RatioGammaFactor
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Run()
	}()

	select {
	case <-sigChan:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Close(ctx); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}
}
