package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jtomasevic/hypermotif/internal/config"
	"github.com/jtomasevic/hypermotif/internal/logging"
	"github.com/jtomasevic/hypermotif/pkg/hypergraph"
	"github.com/jtomasevic/hypermotif/pkg/triad_motif"
)

var (
	jsonOutput bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "motifs",
	Short:         "Triad and dyad motif census over a reply hypergraph",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		logger, err = logging.New(cfg.LogLevel)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	rootCmd.AddCommand(triadsCmd)
	rootCmd.AddCommand(dyadsCmd)
	rootCmd.AddCommand(interactionsCmd)
}

// loadExtractor reads the graph document named on the command line.
func loadExtractor(path string) (*triad_motif.Extractor, error) {
	g, err := hypergraph.LoadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded hypergraph",
		zap.String("path", path),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()))

	return triad_motif.NewExtractor(g,
		triad_motif.WithLogger(logger),
		triad_motif.WithParallelism(cfg.Parallelism),
		triad_motif.WithMaxTripleNodes(cfg.MaxTripleNodes),
	), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
