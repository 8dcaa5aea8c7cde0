package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/heartmarshall/citext/internal/adapter/postgres"
	"github.com/heartmarshall/citext/internal/adapter/postgres/probe"
	"github.com/heartmarshall/citext/internal/config"
	"github.com/heartmarshall/citext/internal/domain"
)

// ErrChecksFailed is returned by Run when at least one sample failed.
var ErrChecksFailed = errors.New("citext checks failed")

type options struct {
	configPath string
	samples    []string
	timeout    time.Duration
	version    bool

	samplesSet bool
	timeoutSet bool
}

func parseFlags(args []string) (options, error) {
	var opts options

	fs := pflag.NewFlagSet("citext-check", pflag.ContinueOnError)
	fs.StringVarP(&opts.configPath, "config", "c", "", "path to config.yaml (overrides CONFIG_PATH)")
	fs.StringSliceVarP(&opts.samples, "sample", "s", nil, "sample value to check; repeatable or comma-separated")
	fs.DurationVar(&opts.timeout, "timeout", 0, "overall check timeout")
	fs.BoolVar(&opts.version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	opts.samplesSet = fs.Changed("sample")
	opts.timeoutSet = fs.Changed("timeout")

	return opts, nil
}

func (o options) apply(cfg *config.Config) error {
	if o.samplesSet {
		cfg.Check.Samples = config.ParseSamples(strings.Join(o.samples, ","))
		if len(cfg.Check.Samples) == 0 {
			return errors.New("--sample: at least one non-empty value is required")
		}
	}
	if o.timeoutSet {
		if o.timeout <= 0 {
			return fmt.Errorf("--timeout must be > 0 (got %v)", o.timeout)
		}
		cfg.Check.Timeout = o.timeout
	}
	return nil
}

// Run is the citext-check entry point. It loads configuration, connects to
// the database and checks every configured sample. Logs go to logOut.
func Run(ctx context.Context, args []string, logOut io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	if opts.version {
		_, err := fmt.Fprintln(logOut, BuildVersion())
		return err
	}

	if opts.configPath != "" {
		if err := os.Setenv("CONFIG_PATH", opts.configPath); err != nil {
			return fmt.Errorf("set CONFIG_PATH: %w", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := opts.apply(cfg); err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, logOut)
	logger.Info("starting citext check",
		slog.String("version", BuildVersion()),
		slog.Int("samples", len(cfg.Check.Samples)),
		slog.Duration("timeout", cfg.Check.Timeout),
	)

	ctx, cancel := context.WithTimeout(ctx, cfg.Check.Timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		if errors.Is(err, domain.ErrExtensionMissing) {
			logger.Error("citext extension is not installed; run CREATE EXTENSION citext")
		}
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	checker := NewChecker(postgres.NewTxManager(pool), probe.New(pool), logger)

	report, err := checker.Run(ctx, cfg.Check.Samples)
	if err != nil {
		return err
	}

	if failed := report.Failed(); failed > 0 {
		return fmt.Errorf("%w: %d of %d samples", ErrChecksFailed, failed, len(report.Results))
	}

	logger.Info("citext check passed", slog.Int("samples", len(report.Results)))
	return nil
}
