package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"

	"github.com/twquant/warroom/internal/api"
	"github.com/twquant/warroom/internal/config"
	"github.com/twquant/warroom/internal/dashboard"
	"github.com/twquant/warroom/internal/logger"
	"github.com/twquant/warroom/internal/version"
)

// loadConfig reads the YAML config named by the --config flag, falling back
// to the built-in TAIEX defaults when the flag is absent.
func loadConfig(cmd *cli.Command) (config.Config, error) {
	path := cmd.String("config")
	if path == "" {
		return config.DefaultConfig(), nil
	}

	return config.Load(path)
}

// serveAction starts the HTTP API with periodic cache refresh, shutting down
// cleanly on SIGINT/SIGTERM.
func serveAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if addr := cmd.String("listen"); addr != "" {
		cfg.ListenAddr = addr
	}

	appLogger, err := logger.NewLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = appLogger.Sync() }()

	service, err := dashboard.NewService(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to create dashboard service: %w", err)
	}

	stopRefresh, err := service.StartAutoRefresh()
	if err != nil {
		return fmt.Errorf("failed to start auto refresh: %w", err)
	}
	defer stopRefresh()

	server := api.NewServer(service, appLogger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)

	go func() {
		errCh <- server.Start(cfg.ListenAddr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return server.Shutdown(context.Background())
	}
}

// watchAction runs the interactive terminal dashboard.
func watchAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	service, err := dashboard.NewService(cfg, logger.NewNopLogger())
	if err != nil {
		return fmt.Errorf("failed to create dashboard service: %w", err)
	}

	model := NewModel(service, cfg.CacheTTL())

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}

	return nil
}

// warmAction fetches and computes every configured symbol once, verifying
// provider connectivity and data quality before a serve or watch session.
func warmAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	service, err := dashboard.NewService(cfg, logger.NewNopLogger())
	if err != nil {
		return fmt.Errorf("failed to create dashboard service: %w", err)
	}

	symbols := service.Symbols()
	bar := progressbar.NewOptions(len(symbols),
		progressbar.OptionSetDescription("Warming cache"),
		progressbar.OptionShowCount())

	var failed int

	for _, symbol := range symbols {
		if _, err := service.Snapshot(ctx, symbol.Ticker); err != nil {
			failed++

			fmt.Fprintf(os.Stderr, "\n%s: %v\n", symbol.Ticker, err)
		}

		_ = bar.Add(1)
	}

	fmt.Println()

	if failed > 0 {
		return fmt.Errorf("%d of %d symbols failed to warm", failed, len(symbols))
	}

	log.Printf("Warmed %d symbols.", len(symbols))

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:    "warroom",
		Usage:   "Taiwan market dashboard with MACD and stochastic KD indicators",
		Version: version.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the YAML configuration file",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the HTTP dashboard API",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "listen",
						Aliases: []string{"l"},
						Usage:   "Listen address, overrides the config value",
					},
				},
				Action: serveAction,
			},
			{
				Name:   "watch",
				Usage:  "Watch configured symbols in an interactive terminal table",
				Action: watchAction,
			},
			{
				Name:   "warm",
				Usage:  "Fetch all configured symbols once to warm the cache",
				Action: warmAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
