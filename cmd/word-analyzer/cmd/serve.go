package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dongchun97/trans-test/internal/common"
	"github.com/dongchun97/trans-test/internal/server"
	"github.com/dongchun97/trans-test/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load the dataset and serve the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := newLogger(cfg)

	// Nothing is served until the whole dataset has loaded.
	ds, src, err := loadDataset(cmd.Context(), cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load dataset")
		return err
	}

	lookup := service.NewWordLookup(ds)
	srv := server.New(cfg, lookup, logger)

	stats := lookup.Stats()
	common.PrintBanner(os.Stderr, common.BannerInfo{
		Environment: cfg.Environment,
		ServiceURL:  cfg.ServiceURL(),
		Source:      src.String(),
		Words:       stats.Words,
		Affixes:     stats.Prefixes,
		Roots:       stats.Roots,
	}, logger)

	// Graceful shutdown channel
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdownChan)

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- srv.Listen()
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			logger.Error().Err(err).Msg("Server error")
			return err
		}
		return nil
	case <-shutdownChan:
	}

	common.PrintShutdownBanner(os.Stderr, logger)
	if err := srv.Shutdown(); err != nil {
		logger.Error().Err(err).Msg("Server shutdown error")
		return err
	}
	return nil
}
