package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/CristiGvl/picoCPUStat/api"
	"github.com/CristiGvl/picoCPUStat/internal/config"
	"github.com/CristiGvl/picoCPUStat/internal/cpu"
	"github.com/CristiGvl/picoCPUStat/internal/memory"
	"github.com/CristiGvl/picoCPUStat/internal/platform"
	"github.com/CristiGvl/picoCPUStat/internal/snapshot"
	"github.com/CristiGvl/picoCPUStat/internal/temps"
)

func main() {
	// Parse command line flags
	flags := pflag.NewFlagSet("picocpustat", pflag.ExitOnError)
	configPath := flags.String("config", "", "Path to a YAML config file")
	bind := flags.String("bind", "0.0.0.0", "IP address to bind the server to")
	port := flags.Int("port", 8080, "Port to run the server on")
	dump := flags.Bool("dump", false, "Print one snapshot to stdout and exit")
	format := flags.String("format", "json", "Snapshot format for --dump: json, yaml or cbor")
	flags.Parse(os.Args[1:])

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if flags.Changed("bind") {
		cfg.Server.Bind = *bind
	}
	if flags.Changed("port") {
		cfg.Server.Port = *port
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// Unsupported platforms still serve; readers answer with ErrUnsupported
	if err := platform.ValidateSupport(); err != nil {
		log.Printf("Warning: %v", err)
	}

	if *dump {
		if err := dumpSnapshot(cfg, *format); err != nil {
			log.Fatalf("Snapshot failed: %v", err)
		}
		return
	}

	// Create and start the API server
	server, err := api.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		if err := server.Shutdown(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
		os.Exit(0)
	}()

	// Start the server
	log.Printf("Starting picoCPUStat server on %s (proc %s, sys %s)", cfg.Addr(), cfg.Host.Proc, cfg.Host.Sys)
	log.Fatal(server.Start(cfg.Addr()))
}

func dumpSnapshot(cfg *config.Config, name string) error {
	format, err := snapshot.ParseFormat(name)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.RequestTimeout)
	defer cancel()

	roots := cfg.Roots()
	snap, err := snapshot.Collect(ctx, snapshot.Sources{
		CPU:    cpu.NewReaderWithRoots(roots),
		Memory: memory.NewReaderWithRoots(roots),
		Temps:  temps.NewReaderWithRoots(roots),
	})
	if err != nil {
		return err
	}
	for section, msg := range snap.Errors {
		log.Printf("Warning: %s: %s", section, msg)
	}

	return snapshot.Encode(os.Stdout, format, snap)
}
