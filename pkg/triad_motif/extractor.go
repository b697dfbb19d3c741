package triad_motif

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jtomasevic/hypermotif/pkg/hypergraph"
)

// Extractor classifies the triads and dyads of a hypergraph.
//
// The store is only read. Callers MUST NOT mutate it while an extraction is
// running; every call takes a fresh snapshot, so results from different calls
// never share state.
type Extractor struct {
	store  hypergraph.AdjacencyStore
	logger *zap.Logger

	// parallelism bounds the number of classes enumerated at once by Extract.
	parallelism int
	// maxTripleNodes rejects graphs too large for the O(n³) classes. 0 = no limit.
	maxTripleNodes int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger. A nil logger keeps the no-op default.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithParallelism bounds how many motif classes Extract enumerates at once.
func WithParallelism(n int) Option {
	return func(e *Extractor) {
		if n < 1 {
			n = 1
		}
		e.parallelism = n
	}
}

// WithMaxTripleNodes makes Extract reject graphs with more than n nodes. 0 disables the limit.
func WithMaxTripleNodes(n int) Option {
	return func(e *Extractor) {
		if n < 0 {
			n = 0
		}
		e.maxTripleNodes = n
	}
}

// NewExtractor returns an Extractor reading from store. It logs nothing and
// runs one class at a time unless configured otherwise.
func NewExtractor(store hypergraph.AdjacencyStore, opts ...Option) *Extractor {
	e := &Extractor{
		store:       store,
		logger:      zap.NewNop(),
		parallelism: 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ClassifyTriads puts every triple of distinct nodes into exactly one of the
// 16 motif lists. All 16 keys are present, possibly with empty lists.
func (e *Extractor) ClassifyTriads() Motifs {
	start := time.Now()
	c := newCensus(e.store)

	motifs := newMotifs()
	for _, t := range allMotifTypes {
		motifs[t] = e.classify(c, t)
	}

	e.logger.Info("triad census complete",
		zap.Int("nodes", len(c.nodes)),
		zap.Int("triads", motifs.Total()),
		zap.Duration("elapsed", time.Since(start)))
	return motifs
}

// Triads runs the enumeration of a single motif type.
func (e *Extractor) Triads(t MotifType) ([]TriadMotif, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%q: %w", t, ErrUnknownMotifType)
	}
	return e.classify(newCensus(e.store), t), nil
}

// Extract computes the same mapping as ClassifyTriads, fanning the 16 classes
// out over at most parallelism goroutines. It returns no partial result: on
// cancellation or when the graph exceeds the node limit the mapping is nil.
func (e *Extractor) Extract(ctx context.Context) (Motifs, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if e.maxTripleNodes > 0 {
		if n := len(e.store.Nodes()); n > e.maxTripleNodes {
			return nil, fmt.Errorf("%d nodes, limit %d: %w", n, e.maxTripleNodes, ErrTooManyNodes)
		}
	}

	start := time.Now()
	c := newCensus(e.store)

	results := make([][]TriadMotif, len(allMotifTypes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.parallelism)
	for i, t := range allMotifTypes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// each goroutine owns results[i]
			results[i] = e.classify(c, t)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		e.logger.Warn("triad census aborted", zap.Error(err))
		return nil, err
	}

	motifs := newMotifs()
	for i, t := range allMotifTypes {
		motifs[t] = results[i]
	}

	e.logger.Info("triad census complete",
		zap.Int("nodes", len(c.nodes)),
		zap.Int("triads", motifs.Total()),
		zap.Int("parallelism", e.parallelism),
		zap.Duration("elapsed", time.Since(start)))
	return motifs, nil
}

// ClassifyDyads counts every unordered pair of distinct nodes once.
func (e *Extractor) ClassifyDyads() map[DyadType]int {
	counts := newCensus(e.store).dyadCounts()
	e.logger.Debug("dyad census complete",
		zap.Int("no_edge", counts[DyadNoEdge]),
		zap.Int("one_edge", counts[DyadOneEdge]),
		zap.Int("two_edges", counts[DyadTwoEdges]))
	return counts
}

// DyadicInteractions lists every (C1, C2, C1 -> C2 edge, C2 -> C1 edge)
// combination over reciprocal pairs.
func (e *Extractor) DyadicInteractions() []DyadicInteraction {
	return newCensus(e.store).dyadicInteractions()
}

func (e *Extractor) classify(c *census, t MotifType) []TriadMotif {
	start := time.Now()
	found := classifiers[t](c)
	if found == nil {
		found = []TriadMotif{}
	}
	e.logger.Debug("classified triads",
		zap.String("motif", string(t)),
		zap.Int("count", len(found)),
		zap.Duration("elapsed", time.Since(start)))
	return found
}
