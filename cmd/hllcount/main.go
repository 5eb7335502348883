// hllcount estimates the number of distinct lines in its inputs.
//
//	hllcount [flags] [file ...]
//
// Files are read in parallel, one sketch per file, and merged. Standard input is read when
// neither files nor stored snapshots are given.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/grafana/dskit/flagext"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	hll "github.com/b3nj4m/hll-stream"
	"github.com/b3nj4m/hll-stream/ingest"
)

type config struct {
	Ingest ingest.Config `yaml:"ingest"`

	ConfigFile  string                 `yaml:"-"`
	SnapshotOut string                 `yaml:"-"`
	SnapshotIn  flagext.StringSliceCSV `yaml:"-"`
	LogLevel    string                 `yaml:"-"`
}

func (cfg *config) RegisterFlags(f *flag.FlagSet) {
	cfg.Ingest.RegisterFlags(f)

	f.StringVar(&cfg.ConfigFile, "config.file", "", "YAML file to load the ingest configuration from. Flags take precedence over the file.")
	f.StringVar(&cfg.SnapshotOut, "snapshot.out", "", "If set, write the merged sketch as JSON to this path.")
	f.Var(&cfg.SnapshotIn, "snapshot.in", "Comma-separated list of JSON sketch files to merge into the result. Without input files, the first snapshot sets precision and hash; otherwise they must match -ingest.precision and -ingest.hash.")
	f.StringVar(&cfg.LogLevel, "log.level", "info", "Only log messages with the given severity or above. Valid levels: [debug, info, warn, error]")
}

func main() {
	// Clean up all flags registered via init() methods of 3rd-party libraries.
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	var cfg config
	cfg.RegisterFlags(flag.CommandLine)

	args, err := flagext.ParseFlagsAndArguments(flag.CommandLine)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	if cfg.ConfigFile != "" {
		if err := loadConfigFile(cfg.ConfigFile, &cfg); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		// Parse again so that explicitly set flags override the file.
		if args, err = flagext.ParseFlagsAndArguments(flag.CommandLine); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
	}

	logger, err := newLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, args, os.Stdin, os.Stdout, logger); err != nil {
		level.Error(logger).Log("msg", "counting failed", "err", err)
		stop()
		os.Exit(1)
	}
}

func newLogger(w io.Writer, lvl string) (log.Logger, error) {
	var opt level.Option
	switch lvl {
	case "debug":
		opt = level.AllowDebug()
	case "info":
		opt = level.AllowInfo()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		return nil, errors.Errorf("unrecognized log level %q", lvl)
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, opt)
	return log.With(logger, "ts", log.DefaultTimestampUTC), nil
}

func loadConfigFile(path string, cfg *config) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open config file")
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrapf(err, "parse config file %s", path)
	}
	return nil
}

func run(ctx context.Context, cfg config, files []string, stdin io.Reader, stdout io.Writer, logger log.Logger) error {
	ing, err := ingest.New(cfg.Ingest, logger, nil)
	if err != nil {
		return err
	}

	var readers []io.Reader
	if len(files) == 0 && len(cfg.SnapshotIn) == 0 {
		readers = append(readers, stdin)
	}
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrap(err, "open input")
		}
		defer f.Close()
		readers = append(readers, f)
	}

	// Without inputs to read, the first snapshot decides precision and hash.
	var result *hll.Hll
	if len(readers) > 0 {
		if result, err = ing.ObservePartitions(ctx, readers); err != nil {
			return err
		}
	}

	for _, path := range cfg.SnapshotIn {
		stored, err := readSnapshot(path)
		if err != nil {
			return err
		}
		level.Debug(logger).Log("msg", "read snapshot", "path", path, "estimate", stored.Cardinality())

		if result == nil {
			result = stored
			continue
		}
		if result, err = result.Merge(stored); err != nil {
			return errors.Wrapf(err, "merge snapshot %s", path)
		}
	}

	if cfg.SnapshotOut != "" {
		if err := writeSnapshot(cfg.SnapshotOut, result); err != nil {
			return err
		}
		level.Info(logger).Log("msg", "wrote snapshot", "path", cfg.SnapshotOut)
	}

	_, err = fmt.Fprintln(stdout, result.Cardinality())
	return err
}

func readSnapshot(path string) (*hll.Hll, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read snapshot")
	}

	h := &hll.Hll{}
	if err := json.Unmarshal(buf, h); err != nil {
		return nil, errors.Wrapf(err, "decode snapshot %s", path)
	}
	return h, nil
}

func writeSnapshot(path string, h *hll.Hll) error {
	buf, err := json.Marshal(h)
	if err != nil {
		return errors.Wrap(err, "encode snapshot")
	}
	return errors.Wrap(os.WriteFile(path, buf, 0o644), "write snapshot")
}
