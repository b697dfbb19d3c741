package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jtomasevic/hypermotif/pkg/triad_motif"
)

var dyadsCmd = &cobra.Command{
	Use:   "dyads <graph-file>",
	Short: "Count node pairs with no edge, one edge or edges both ways",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		extractor, err := loadExtractor(args[0])
		if err != nil {
			return err
		}
		counts := extractor.ClassifyDyads()

		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), counts)
		}
		triad_motif.PrintDyads(cmd.OutOrStdout(), counts)
		return nil
	},
}

var interactionsCmd = &cobra.Command{
	Use:   "interactions <graph-file>",
	Short: "List every reply exchanged between reciprocal pairs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		extractor, err := loadExtractor(args[0])
		if err != nil {
			return err
		}
		interactions := extractor.DyadicInteractions()

		out := cmd.OutOrStdout()
		if jsonOutput {
			rendered := make([]interactionJSON, 0, len(interactions))
			for _, in := range interactions {
				rendered = append(rendered, interactionJSON{
					C1:             in.C1,
					C2:             in.C2,
					ForwardAt:      in.Forward.EpochSeconds(),
					ReplyAt:        in.Reply.EpochSeconds(),
					ForwardEdgeSeq: in.Forward.Seq,
					ReplyEdgeSeq:   in.Reply.Seq,
				})
			}
			return writeJSON(out, rendered)
		}
		for _, in := range interactions {
			fmt.Fprintf(out, "%s -> %s @%s  |  %s -> %s @%s\n",
				in.C1, in.C2, epoch(in.Forward.EpochSeconds()),
				in.C2, in.C1, epoch(in.Reply.EpochSeconds()))
		}
		return nil
	},
}
