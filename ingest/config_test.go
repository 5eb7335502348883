package ingest

import (
	"flag"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	hll "github.com/b3nj4m/hll-stream"
)

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	cfg.RegisterFlags(flag.NewFlagSet("test", flag.PanicOnError))

	assert.Equal(t, Config{
		Precision:     14,
		Hash:          hll.DefaultHash,
		YieldEvery:    1024,
		MaxRecordSize: 1 << 20,
	}, cfg)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFlags(t *testing.T) {
	var cfg Config
	fs := flag.NewFlagSet("test", flag.PanicOnError)
	cfg.RegisterFlags(fs)

	require.NoError(t, fs.Parse([]string{"-ingest.precision=10", "-ingest.hash=metro", "-ingest.yield-every=7"}))
	assert.Equal(t, uint(10), cfg.Precision)
	assert.Equal(t, "metro", cfg.Hash)
	assert.Equal(t, 7, cfg.YieldEvery)
	assert.Equal(t, 1<<20, cfg.MaxRecordSize)
}

func TestConfigYAML(t *testing.T) {
	var cfg Config
	cfg.RegisterFlags(flag.NewFlagSet("test", flag.PanicOnError))

	dec := yaml.NewDecoder(strings.NewReader("precision: 8\nhash: farm\n"))
	dec.KnownFields(true)
	require.NoError(t, dec.Decode(&cfg))

	assert.Equal(t, uint(8), cfg.Precision)
	assert.Equal(t, "farm", cfg.Hash)
	// Fields missing from the file keep their defaults.
	assert.Equal(t, 1024, cfg.YieldEvery)

	dec = yaml.NewDecoder(strings.NewReader("precison: 8\n"))
	dec.KnownFields(true)
	assert.Error(t, dec.Decode(&cfg))
}

func TestConfigValidate(t *testing.T) {
	testCases := map[string]struct {
		setup       func(*Config)
		expectedErr string
	}{
		"valid": {
			setup: func(*Config) {},
		},
		"unknown hash": {
			setup:       func(cfg *Config) { cfg.Hash = "crc7" },
			expectedErr: "unknown hash identifier",
		},
		"zero yield": {
			setup:       func(cfg *Config) { cfg.YieldEvery = 0 },
			expectedErr: errInvalidYieldEvery.Error(),
		},
		"negative record size": {
			setup:       func(cfg *Config) { cfg.MaxRecordSize = -1 },
			expectedErr: errInvalidMaxRecordSize.Error(),
		},
	}

	for name, testCase := range testCases {
		t.Run(name, func(t *testing.T) {
			cfg := testConfig()
			testCase.setup(&cfg)

			err := cfg.Validate()
			if testCase.expectedErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), testCase.expectedErr)
		})
	}
}

// Out of range precisions are clamped by the sketch rather than rejected.
func TestConfigNewSketchClampsPrecision(t *testing.T) {
	cfg := testConfig()
	cfg.Precision = 30

	h, err := cfg.NewSketch()
	require.NoError(t, err)
	assert.Equal(t, uint(16), h.Precision())
}
