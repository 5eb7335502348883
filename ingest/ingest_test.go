package ingest

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/go-kit/log"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testConfig() Config {
	return Config{
		Precision:     12,
		Hash:          "xxhash",
		YieldEvery:    16,
		MaxRecordSize: 64,
	}
}

func newTestIngester(t *testing.T, cfg Config) (*Ingester, *prometheus.Registry) {
	reg := prometheus.NewPedanticRegistry()
	i, err := New(cfg, log.NewNopLogger(), reg)
	require.NoError(t, err)
	return i, reg
}

func lines(from, to int) string {
	var sb strings.Builder
	for n := from; n < to; n++ {
		fmt.Fprintf(&sb, "record-%d\n", n)
	}
	return sb.String()
}

func TestObserveReader(t *testing.T) {
	i, _ := newTestIngester(t, testConfig())

	h, err := i.NewSketch()
	require.NoError(t, err)
	require.NoError(t, i.ObserveReader(context.Background(), h, strings.NewReader(lines(0, 1000)+lines(0, 1000))))

	expected, err := i.NewSketch()
	require.NoError(t, err)
	for n := 0; n < 1000; n++ {
		expected.AddString(fmt.Sprintf("record-%d", n))
	}

	assert.Equal(t, expected.Export(), h.Export())
	assert.InEpsilon(t, 1000, float64(h.Cardinality()), 0.05)

	assert.Equal(t, 2000.0, testutil.ToFloat64(i.metrics.records))
	assert.Equal(t, float64(len(lines(0, 1000))-1000)*2, testutil.ToFloat64(i.metrics.bytes))
}

func TestObserveReaderRecordTooLong(t *testing.T) {
	i, _ := newTestIngester(t, testConfig())

	h, err := i.NewSketch()
	require.NoError(t, err)

	err = i.ObserveReader(context.Background(), h, strings.NewReader("short\n"+strings.Repeat("x", 100)+"\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, bufio.ErrTooLong))

	// Records before the failure are kept.
	assert.Equal(t, uint64(1), h.Cardinality())
}

func TestObserveReaderCanceled(t *testing.T) {
	i, _ := newTestIngester(t, testConfig())

	h, err := i.NewSketch()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = i.ObserveReader(ctx, h, strings.NewReader(lines(0, 100)))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, uint64(0), h.Cardinality())
}

// Cancellation is noticed at the next yield point, the sketch keeps what it saw before.
func TestObserveReaderCanceledMidStream(t *testing.T) {
	cfg := testConfig()
	i, _ := newTestIngester(t, cfg)

	h, err := i.NewSketch()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	r := io.MultiReader(
		strings.NewReader(lines(0, cfg.YieldEvery)),
		readerFunc(func([]byte) (int, error) {
			cancel()
			return 0, io.EOF
		}),
		strings.NewReader(lines(cfg.YieldEvery, 10*cfg.YieldEvery)),
	)

	err = i.ObserveReader(ctx, h, r)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, float64(cfg.YieldEvery), testutil.ToFloat64(i.metrics.records))
}

type readerFunc func([]byte) (int, error)

func (f readerFunc) Read(p []byte) (int, error) { return f(p) }

func TestObserveChan(t *testing.T) {
	i, _ := newTestIngester(t, testConfig())

	h, err := i.NewSketch()
	require.NoError(t, err)

	ch := make(chan []byte)
	go func() {
		defer close(ch)
		for n := 0; n < 500; n++ {
			ch <- []byte(fmt.Sprintf("record-%d", n%250))
		}
	}()

	require.NoError(t, i.ObserveChan(context.Background(), h, ch))
	assert.InEpsilon(t, 250, float64(h.Cardinality()), 0.05)
	assert.Equal(t, 500.0, testutil.ToFloat64(i.metrics.records))
}

func TestObserveChanCanceled(t *testing.T) {
	i, _ := newTestIngester(t, testConfig())

	h, err := i.NewSketch()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan []byte, 1)
	ch <- []byte("first")

	done := make(chan error)
	go func() {
		done <- i.ObserveChan(ctx, h, ch)
	}()

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestObservePartitions(t *testing.T) {
	i, reg := newTestIngester(t, testConfig())

	partitioned, err := i.ObservePartitions(context.Background(), []io.Reader{
		strings.NewReader(lines(0, 3000)),
		strings.NewReader(lines(2000, 6000)),
		strings.NewReader(lines(6000, 10000)),
		strings.NewReader(""),
	})
	require.NoError(t, err)

	single, err := i.NewSketch()
	require.NoError(t, err)
	require.NoError(t, i.ObserveReader(context.Background(), single, strings.NewReader(lines(0, 10000))))

	assert.Equal(t, single.Export(), partitioned.Export())
	assert.InEpsilon(t, 10000, float64(partitioned.Cardinality()), 0.05)

	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(fmt.Sprintf(`
		# HELP hll_ingest_merges_total Total number of partition sketches merged.
		# TYPE hll_ingest_merges_total counter
		hll_ingest_merges_total 4
		# HELP hll_ingest_estimated_cardinality Estimated cardinality of the last completed partitioned ingestion.
		# TYPE hll_ingest_estimated_cardinality gauge
		hll_ingest_estimated_cardinality %d
	`, partitioned.Cardinality())), "hll_ingest_merges_total", "hll_ingest_estimated_cardinality"))
}

func TestObservePartitionsEmpty(t *testing.T) {
	i, _ := newTestIngester(t, testConfig())

	h, err := i.ObservePartitions(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), h.Cardinality())
	assert.Equal(t, uint(12), h.Precision())
	assert.Equal(t, "xxhash", h.HashID())
}

func TestObservePartitionsError(t *testing.T) {
	i, _ := newTestIngester(t, testConfig())

	readErr := errors.New("disk on fire")
	h, err := i.ObservePartitions(context.Background(), []io.Reader{
		strings.NewReader(lines(0, 100000)),
		iotest.ErrReader(readErr),
	})
	assert.Nil(t, h)
	assert.ErrorIs(t, err, readErr)
	assert.Contains(t, err.Error(), "partition 1")
}

func TestNewInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Hash = "crc7"

	i, err := New(cfg, log.NewNopLogger(), nil)
	assert.Nil(t, i)
	assert.Error(t, err)
}
