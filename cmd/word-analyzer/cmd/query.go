package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dongchun97/trans-test/internal/common"
	"github.com/dongchun97/trans-test/internal/model"
	"github.com/dongchun97/trans-test/internal/service"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <word>...",
	Short: "Classify the prefix, suffix and root of words",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <word>",
	Short: "Look up a word in the dictionary",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookup,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), common.GetFullVersion())
	},
}

// offlineLookup loads the dataset for one-shot CLI queries. Logging goes
// to stderr so stdout stays valid JSON.
func offlineLookup(cmd *cobra.Command) (service.WordLookup, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := common.NewLoggerWithOutput("warn", cmd.ErrOrStderr())
	if logLevel != "" {
		logger = common.NewLoggerWithOutput(logLevel, cmd.ErrOrStderr())
	}

	ds, _, err := loadDataset(cmd.Context(), cfg, logger)
	if err != nil {
		return nil, err
	}
	return service.NewWordLookup(ds), nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	lookup, err := offlineLookup(cmd)
	if err != nil {
		return err
	}

	results := make([]model.AnalysisResponse, 0, len(args))
	for _, w := range args {
		results = append(results, lookup.Analyze(w).Response())
	}
	if len(results) == 1 {
		return printJSON(cmd.OutOrStdout(), results[0])
	}
	return printJSON(cmd.OutOrStdout(), results)
}

func runLookup(cmd *cobra.Command, args []string) error {
	lookup, err := offlineLookup(cmd)
	if err != nil {
		return err
	}

	word := args[0]
	rec, ok := lookup.Lookup(word)
	if !ok {
		return printJSON(cmd.OutOrStdout(), model.SearchResponse{
			Success: false,
			Word:    word,
			Message: fmt.Sprintf("word %q not found", word),
		})
	}
	return printJSON(cmd.OutOrStdout(), model.SearchResponse{Success: true, Word: word, Data: &rec})
}
