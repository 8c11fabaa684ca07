// File: cmd/app/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"

	"github.com/brianonbased-dev/holoscript-alphafold-plugin/internal/application"
	"github.com/brianonbased-dev/holoscript-alphafold-plugin/internal/config"
	"github.com/brianonbased-dev/holoscript-alphafold-plugin/internal/domain/ports/adapter"
	"github.com/brianonbased-dev/holoscript-alphafold-plugin/internal/infra/adapters/alphafold"
	"github.com/brianonbased-dev/holoscript-alphafold-plugin/internal/infra/adapters/colabfold"
	"github.com/brianonbased-dev/holoscript-alphafold-plugin/internal/infra/logging"
	"github.com/brianonbased-dev/holoscript-alphafold-plugin/internal/infra/metrics"
	"github.com/brianonbased-dev/holoscript-alphafold-plugin/internal/usecase"
)

func main() {
	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode")
	selfTest := flag.Bool("self-test", false, "print the capability report and exit")
	flag.Parse()
	_ = selfTest // the capability report is also the default behavior

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	metrics.MustRegister()

	// ---- Remote adapter ----
	remote := alphafold.NewClient(cfg.AlphaFold, logger)

	// ---- Local tool adapter ----
	// Availability is resolved here, explicitly, and injected; the core
	// never probes the environment itself.
	var local adapter.LocalPredictor
	if cfg.ColabFold.Enabled {
		bin := cfg.ColabFold.BinPath
		if bin == "" {
			bin = "colabfold_batch"
		}
		if path, lookErr := exec.LookPath(bin); lookErr == nil {
			local = colabfold.New(path, logger)
			fmt.Fprintln(os.Stderr, "ColabFold is available for local prediction")
		}
	}
	if local == nil {
		local = colabfold.NewUnavailable(logger)
		fmt.Fprintln(os.Stderr, "ColabFold not installed. API mode only.")
	}

	bridge := application.NewBridgeFacade(
		usecase.NewPredictionUseCase(remote, local, logger),
		logger,
	)

	caps := bridge.GetCapabilities()
	fmt.Println("AlphaFold Bridge Status:")
	fmt.Printf("  Remote Available: %v\n", caps.RemoteAvailable)
	fmt.Printf("  Local Tool Available: %v\n", caps.LocalToolAvailable)
	fmt.Printf("  Runtime: %s\n", caps.RuntimeVersion)
	fmt.Printf("  Module: %s %s\n", caps.Module, caps.Version)

	if !caps.RemoteAvailable {
		fmt.Fprintln(os.Stderr, "\nTo use the AlphaFold API, set environment variable:")
		fmt.Fprintln(os.Stderr, "  export ALPHAFOLD_API_KEY=your_api_key")
	}
	if !caps.LocalToolAvailable {
		fmt.Fprintln(os.Stderr, "\nTo use local prediction, install ColabFold and set colabfold.bin_path")
	}
}
