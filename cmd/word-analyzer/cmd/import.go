package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dongchun97/trans-test/internal/dataset"
	"github.com/dongchun97/trans-test/internal/service"
)

var (
	importFrom  string
	importClear bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Copy the JSON dataset into Redis",
	Long: "Validates words.json, prefixes.json and roots.json from a directory and stores them in Redis,\n" +
		"where servers configured with the redis data source load them at startup.",
	Args: cobra.NoArgs,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importFrom, "from", "", "dataset directory (defaults to the configured data dir)")
	importCmd.Flags().BoolVar(&importClear, "clear", false, "delete the stored dataset instead of importing")
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := newLogger(cfg)

	client, err := newRedisClient(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	importer := service.NewDataImporter(client, cfg.Redis.KeyPrefix, logger)

	if importClear {
		if err := importer.ClearDataset(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "dataset cleared")
		return nil
	}

	dir := importFrom
	if dir == "" {
		dir = cfg.Data.Dir
	}
	summary, err := importer.ImportFromSource(cmd.Context(), dataset.NewFileSource(dir))
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), summary)
}
