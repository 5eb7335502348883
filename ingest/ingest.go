// Package ingest feeds streams of records into HyperLogLog sketches.
//
// A sketch is owned by a single goroutine. Inputs that should be read in parallel are
// split into partitions, each partition gets its own sketch, and the sketches are merged
// once every partition has been consumed.
package ingest

import (
	"bufio"
	"context"
	"io"
	"runtime"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"

	hll "github.com/b3nj4m/hll-stream"
)

type metrics struct {
	records              prometheus.Counter
	bytes                prometheus.Counter
	merges               prometheus.Counter
	estimatedCardinality prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	return &metrics{
		records: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "hll_ingest_records_total",
			Help: "Total number of records observed by sketches.",
		}),
		bytes: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "hll_ingest_bytes_total",
			Help: "Total number of record bytes observed by sketches.",
		}),
		merges: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "hll_ingest_merges_total",
			Help: "Total number of partition sketches merged.",
		}),
		estimatedCardinality: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "hll_ingest_estimated_cardinality",
			Help: "Estimated cardinality of the last completed partitioned ingestion.",
		}),
	}
}

// Ingester observes records into sketches built from its Config.
type Ingester struct {
	cfg     Config
	logger  log.Logger
	metrics *metrics
}

// New validates cfg and returns an Ingester. reg may be nil.
func New(cfg Config, logger log.Logger, reg prometheus.Registerer) (*Ingester, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Ingester{
		cfg:     cfg,
		logger:  log.With(logger, "component", "ingest"),
		metrics: newMetrics(reg),
	}, nil
}

// NewSketch returns an empty sketch matching the Ingester's configuration.
func (i *Ingester) NewSketch() (*hll.Hll, error) {
	return i.cfg.NewSketch()
}

// ObserveReader adds every line of r to h. It stops early with the context error when ctx
// is done; h keeps the records observed so far.
func (i *Ingester) ObserveReader(ctx context.Context, h *hll.Hll, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(bufio.MaxScanTokenSize, i.cfg.MaxRecordSize)), i.cfg.MaxRecordSize)

	var records, size int
	defer func() { i.record(records, size) }()

	for scanner.Scan() {
		if records%i.cfg.YieldEvery == 0 {
			if err := i.yield(ctx); err != nil {
				return err
			}
		}

		line := scanner.Bytes()
		h.Add(line)
		records++
		size += len(line)
	}

	return errors.Wrap(scanner.Err(), "read records")
}

// ObserveChan adds every record received on ch to h until ch is closed or ctx is done.
func (i *Ingester) ObserveChan(ctx context.Context, h *hll.Hll, ch <-chan []byte) error {
	var records, size int
	defer func() { i.record(records, size) }()

	for {
		if records%i.cfg.YieldEvery == 0 {
			if err := i.yield(ctx); err != nil {
				return err
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case rec, ok := <-ch:
			if !ok {
				return nil
			}
			h.Add(rec)
			records++
			size += len(rec)
		}
	}
}

// ObservePartitions reads every reader concurrently into its own sketch and returns the
// union of all of them. The first failing partition cancels the others.
func (i *Ingester) ObservePartitions(ctx context.Context, readers []io.Reader) (*hll.Hll, error) {
	sketches := make([]*hll.Hll, len(readers))
	for idx := range sketches {
		h, err := i.NewSketch()
		if err != nil {
			return nil, err
		}
		sketches[idx] = h
	}

	g, gctx := errgroup.WithContext(ctx)
	for idx, r := range readers {
		idx, r := idx, r
		g.Go(func() error {
			if err := i.ObserveReader(gctx, sketches[idx], r); err != nil {
				return errors.Wrapf(err, "partition %d", idx)
			}
			level.Debug(i.logger).Log("msg", "partition observed", "partition", idx, "estimate", sketches[idx].Cardinality())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result, err := i.NewSketch()
	if err != nil {
		return nil, err
	}
	for _, h := range sketches {
		if result, err = result.Merge(h); err != nil {
			return nil, err
		}
		i.metrics.merges.Inc()
	}

	estimate := result.Cardinality()
	i.metrics.estimatedCardinality.Set(float64(estimate))
	level.Info(i.logger).Log("msg", "ingestion completed", "partitions", len(readers), "estimate", estimate)

	return result, nil
}

// yield gives other goroutines a chance to run and reports whether ctx is done.
func (i *Ingester) yield(ctx context.Context) error {
	runtime.Gosched()
	return ctx.Err()
}

func (i *Ingester) record(records, size int) {
	i.metrics.records.Add(float64(records))
	i.metrics.bytes.Add(float64(size))
}
