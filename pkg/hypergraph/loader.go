package hypergraph

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the on-disk shape of a hypergraph. JSON documents decode too,
// since JSON is a subset of YAML.
//
//	nodes: [alice, bob]
//	edges:
//	  - {from: alice, to: bob, timestamp: 1322706222.25, text: "hi"}
type Document struct {
	Nodes []NodeID         `yaml:"nodes"`
	Edges []DocumentedEdge `yaml:"edges"`
}

type DocumentedEdge struct {
	From NodeID `yaml:"from"`
	To   NodeID `yaml:"to"`
	// Timestamp is in epoch seconds and may carry a fraction.
	Timestamp float64 `yaml:"timestamp"`
	Text      string  `yaml:"text"`
}

// Load decodes a YAML or JSON Document and builds its Hypergraph.
func Load(r io.Reader) (*Hypergraph, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode hypergraph document: %w", err)
	}
	return doc.Build()
}

func LoadFile(path string) (*Hypergraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open hypergraph document: %w", err)
	}
	defer f.Close()

	g, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Build turns the document into a Hypergraph. Edges are added in document
// order, so that order is also the tie-break for equal timestamps.
func (d Document) Build() (*Hypergraph, error) {
	g := New()
	g.AddNodes(d.Nodes...)
	for i, e := range d.Edges {
		ts, err := EpochTime(e.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		if _, err := g.AddEdge(e.From, e.To, ts, e.Text); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}
	return g, nil
}
