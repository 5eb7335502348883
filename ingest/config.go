package ingest

import (
	"flag"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	hll "github.com/b3nj4m/hll-stream"
)

const (
	defaultPrecision     = 14
	defaultYieldEvery    = 1024
	defaultMaxRecordSize = 1 << 20
)

var (
	errInvalidYieldEvery    = errors.New("yield_every must be greater than 0")
	errInvalidMaxRecordSize = errors.New("max_record_size must be greater than 0")
)

// Config describes how records are turned into sketches.
type Config struct {
	Precision     uint   `yaml:"precision"`
	Hash          string `yaml:"hash"`
	YieldEvery    int    `yaml:"yield_every"`
	MaxRecordSize int    `yaml:"max_record_size"`
}

// RegisterFlags registers the ingestion flags and sets their defaults on cfg.
func (cfg *Config) RegisterFlags(f *flag.FlagSet) {
	cfg.RegisterFlagsWithPrefix(f, "ingest.")
}

func (cfg *Config) RegisterFlagsWithPrefix(f *flag.FlagSet, prefix string) {
	f.UintVar(&cfg.Precision, prefix+"precision", defaultPrecision, "Number of index bits of each sketch. Values outside [4, 16] are clamped.")
	f.StringVar(&cfg.Hash, prefix+"hash", hll.DefaultHash, fmt.Sprintf("Hash function applied to every record. Supported values: %s.", strings.Join(hll.HashIdentifiers(), ", ")))
	f.IntVar(&cfg.YieldEvery, prefix+"yield-every", defaultYieldEvery, "Number of records observed between yields to the scheduler and context checks.")
	f.IntVar(&cfg.MaxRecordSize, prefix+"max-record-size", defaultMaxRecordSize, "Maximum size in bytes of a single line read from an input.")
}

func (cfg *Config) Validate() error {
	if _, err := hll.LookupHash(cfg.Hash); err != nil {
		return errors.Wrap(err, "invalid ingest config")
	}
	if cfg.YieldEvery <= 0 {
		return errInvalidYieldEvery
	}
	if cfg.MaxRecordSize <= 0 {
		return errInvalidMaxRecordSize
	}
	return nil
}

// NewSketch returns an empty sketch with the configured precision and hash.
func (cfg *Config) NewSketch() (*hll.Hll, error) {
	return hll.NewHll(cfg.Precision, cfg.Hash)
}
