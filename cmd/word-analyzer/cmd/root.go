package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/dongchun97/trans-test/internal/common"
	"github.com/dongchun97/trans-test/internal/config"
	"github.com/dongchun97/trans-test/internal/dataset"
)

var (
	configPath string
	dataDir    string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:           "word-analyzer",
	Short:         "Dictionary lookup and affix analysis service",
	Long:          "Serves word lookups, prefix suggestions, affix examples and morphology analysis from a static JSON dataset.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "word-analyzer.toml", "TOML config file (skipped when missing)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding words.json, prefixes.json and roots.json")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file and environment, then applies flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		cfg.Data.Dir = dataDir
		cfg.Data.Source = config.SourceFile
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *common.Logger {
	return common.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
}

func newRedisClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Address, err)
	}
	return client, nil
}

// loadDataset opens the configured source and loads the full dataset.
func loadDataset(ctx context.Context, cfg *config.Config, logger *common.Logger) (*dataset.Dataset, dataset.Source, error) {
	var src dataset.Source
	switch cfg.Data.Source {
	case config.SourceRedis:
		client, err := newRedisClient(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		// The dataset is copied into memory, the connection is not needed after load.
		defer client.Close()
		src = dataset.NewRedisSource(client, cfg.Redis.KeyPrefix)
	default:
		src = dataset.NewFileSource(cfg.Data.Dir)
	}

	ds, err := dataset.Load(ctx, src, logger)
	if err != nil {
		return nil, nil, err
	}
	return ds, src, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
