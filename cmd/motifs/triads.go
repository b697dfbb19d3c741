package main

import (
	"github.com/spf13/cobra"

	"github.com/jtomasevic/hypermotif/pkg/triad_motif"
)

var fullOutput bool

var triadsCmd = &cobra.Command{
	Use:   "triads <graph-file>",
	Short: "Classify every node triple into one of the 16 triad motifs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		extractor, err := loadExtractor(args[0])
		if err != nil {
			return err
		}
		motifs, err := extractor.Extract(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch {
		case jsonOutput && fullOutput:
			return writeJSON(out, motifs)
		case jsonOutput:
			return writeJSON(out, motifs.Counts())
		case fullOutput:
			triad_motif.PrintMotifs(out, motifs)
		default:
			triad_motif.PrintCounts(out, motifs)
		}
		return nil
	},
}

func init() {
	triadsCmd.Flags().BoolVar(&fullOutput, "full", false, "list every triad with its roles and evidence")
}
