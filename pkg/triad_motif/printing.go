package triad_motif

import (
	"fmt"
	"io"
)

func printEvidence(w io.Writer, m TriadMotif, indent string) {
	p := patterns[m.motifType]
	edges := m.edges
	for i, r := range p {
		fmt.Fprintf(w, "%s↳ %s -> %s (%d edges)\n",
			indent,
			m.nodes[r[0]],
			m.nodes[r[1]],
			len(edges[i]),
		)
	}
}

// PrintMotifs writes one section per motif type, in report order, listing
// each triad by role and the size of its evidence lists.
func PrintMotifs(w io.Writer, motifs Motifs) {
	for _, t := range allMotifTypes {
		list := motifs[t]
		fmt.Fprintf(w, "\n[%s] %d\n", t, len(list))

		for i, m := range list {
			prefix := "├──"
			if i == len(list)-1 {
				prefix = "└──"
			}
			fmt.Fprintf(w, "%s C1=%s C2=%s C3=%s\n", prefix, m.C1(), m.C2(), m.C3())
			printEvidence(w, m, "    ")
		}
	}
}

// PrintCounts writes "<type> <count>" lines in report order.
func PrintCounts(w io.Writer, motifs Motifs) {
	counts := motifs.Counts()
	for _, t := range allMotifTypes {
		fmt.Fprintf(w, "%-20s %d\n", t, counts[t])
	}
}

func PrintDyads(w io.Writer, counts map[DyadType]int) {
	for _, t := range AllDyadTypes() {
		fmt.Fprintf(w, "%-20s %d\n", t, counts[t])
	}
}
