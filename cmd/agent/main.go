package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"applens-agent/internal/agent"
	"applens-agent/internal/config"
	"applens-agent/internal/version"
	"applens-agent/pkg/log"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	showHelp := flag.Bool("help", false, "Show help information")
	configPath := flag.String("config", "agent.config.yaml", "Path to configuration file")
	flag.Parse()

	if *showVersion {
		fmt.Printf("\nAppLens Agent version: %s (#%d)\n", version.GetVersion(), version.GetNumericVersion())
		os.Exit(0)
	}

	if *showHelp {
		fmt.Println("\nAppLens Agent")
		fmt.Println("Usage: applens-agent [options]")
		fmt.Println("Options:")
		fmt.Println("  --version  Show version information")
		fmt.Println("  --help     Show help information")
		fmt.Println("  --config   Path to configuration file (default: agent.config.yaml)")
		os.Exit(0)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	log.InitLog(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info("Received signal, shutting down", "signal", sig.String())
		cancel()
	}()

	a, err := agent.NewAgent(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize agent: %v", err)
	}
	defer a.Close()

	// React to config edits without a restart; only the log level is
	// hot-swappable, everything else applies on the next start.
	watcher := config.NewConfigWatcher(*configPath, func(newCfg *config.Config) {
		log.InitLog(newCfg.LogLevel)
	})
	if err := watcher.Start(ctx); err != nil {
		log.Warn("Config watcher not started", "error", err)
	} else {
		defer watcher.Stop()
	}

	log.Info("AppLens agent started", "version", version.GetVersion(), "api_base_url", cfg.APIBaseURL)
	if err := a.Run(ctx); err != nil && err != context.Canceled {
		log.Error("Agent stopped with error", "error", err)
	}
}
