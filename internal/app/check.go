package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/citext/internal/domain"
	"github.com/heartmarshall/citext/pkg/citext"
	"github.com/heartmarshall/citext/pkg/ctxutil"
)

type probeStore interface {
	CreateTable(ctx context.Context) error
	Insert(ctx context.Context, id uuid.UUID, value citext.Text) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Probe, error)
	FindByValue(ctx context.Context, value string) ([]citext.Text, error)
}

type txRunner interface {
	RunAndRollback(ctx context.Context, fn func(ctx context.Context) error) error
}

// Checker verifies that a database round-trips citext values: stored casing
// is kept, folded reads are lowercase and lookups ignore case.
type Checker struct {
	tx     txRunner
	store  probeStore
	logger *slog.Logger
	newID  func() uuid.UUID
}

// NewChecker creates a Checker. All writes happen in a transaction that is
// rolled back.
func NewChecker(tx txRunner, store probeStore, logger *slog.Logger) *Checker {
	return &Checker{tx: tx, store: store, logger: logger, newID: uuid.New}
}

// Run checks every sample and returns one result per distinct sample.
// Samples equal to an earlier one ignoring case are skipped, since the
// probe column is unique. A casing mismatch is recorded in the report;
// any other error aborts the run.
func (c *Checker) Run(ctx context.Context, samples []string) (domain.Report, error) {
	var report domain.Report

	ctx = ctxutil.WithRunID(ctx, c.newID())

	seen := citext.NewMap[struct{}](len(samples))
	unique := make([]string, 0, len(samples))
	for _, s := range samples {
		if orig, dup := seen.Key(s); dup {
			c.logger.LogAttrs(ctx, slog.LevelWarn, "duplicate sample skipped",
				runIDAttr(ctx),
				slog.String("sample", s),
				slog.String("first", orig.Original()),
			)
			continue
		}
		seen.Set(citext.New(s), struct{}{})
		unique = append(unique, s)
	}

	err := c.tx.RunAndRollback(ctx, func(ctx context.Context) error {
		if err := c.store.CreateTable(ctx); err != nil {
			return fmt.Errorf("create probe table: %w", err)
		}

		for _, s := range unique {
			err := c.checkSample(ctx, s)
			if err != nil && !errors.Is(err, domain.ErrCasingMismatch) {
				return fmt.Errorf("sample %q: %w", s, err)
			}

			report.Results = append(report.Results, domain.SampleResult{Sample: s, Err: err})
			c.logResult(ctx, s, err)
		}
		return nil
	})
	if err != nil {
		return report, err
	}

	return report, nil
}

func (c *Checker) checkSample(ctx context.Context, sample string) error {
	id := c.newID()
	if err := c.store.Insert(ctx, id, citext.New(sample)); err != nil {
		return err
	}

	p, err := c.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if got := p.Value.Original(); got != sample {
		return domain.NewCasingError(domain.CheckPreserve, sample, got)
	}
	if want := citext.Fold(sample); p.Folded != want {
		return domain.NewCasingError(domain.CheckFold, want, p.Folded)
	}

	found, err := c.store.FindByValue(ctx, strings.ToUpper(sample))
	if err != nil {
		return err
	}
	for _, v := range found {
		if v.Original() == sample {
			return nil
		}
	}
	return domain.NewCasingError(domain.CheckLookup, sample, strings.Join(citext.ToStrings(found), ","))
}

func (c *Checker) logResult(ctx context.Context, sample string, err error) {
	attrs := []slog.Attr{
		runIDAttr(ctx),
		slog.String("sample", sample),
		slog.Bool("ok", err == nil),
	}
	if err == nil {
		c.logger.LogAttrs(ctx, slog.LevelInfo, "sample ok", attrs...)
		return
	}

	var ce *domain.CasingError
	if errors.As(err, &ce) {
		attrs = append(attrs,
			slog.String("check", ce.Check),
			slog.String("want", ce.Want),
			slog.String("got", ce.Got),
		)
	}
	c.logger.LogAttrs(ctx, slog.LevelError, "sample failed", attrs...)
}

func runIDAttr(ctx context.Context) slog.Attr {
	id, _ := ctxutil.RunIDFromCtx(ctx)
	return slog.String("run_id", id.String())
}
