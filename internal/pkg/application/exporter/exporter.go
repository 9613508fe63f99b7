package exporter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/cayleygraph/quad"
	"github.com/diwise/chinook-rdf/internal/pkg/infrastructure/database"
	"github.com/diwise/chinook-rdf/pkg/datamodels/chinook"
	"github.com/diwise/chinook-rdf/pkg/rdf/encoding"
	rdferrors "github.com/diwise/chinook-rdf/pkg/rdf/errors"
	"github.com/diwise/chinook-rdf/pkg/rdf/sink"
	"github.com/diwise/chinook-rdf/pkg/rdf/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("chinook-rdf/exporter")

type TableSummary struct {
	Kind       chinook.Kind
	Rows       int
	Statements int
	Rejected   int
}

type Summary struct {
	RunID  string
	Tables []TableSummary
}

func (s Summary) Statements() int {
	n := 0
	for _, t := range s.Tables {
		n += t.Statements
	}
	return n
}

func (s Summary) Rejected() int {
	n := 0
	for _, t := range s.Tables {
		n += t.Rejected
	}
	return n
}

//go:generate moq -rm -out exporter_mock.go . Exporter

// Exporter maps every row of a Chinook source into RDF statements. Export
// leaves out untouched when it returns an error.
type Exporter interface {
	Export(ctx context.Context, out types.Sink) (*Summary, error)
	WriteTo(ctx context.Context, w io.Writer, format encoding.Format) (*Summary, error)
}

type exporterApp struct {
	src     database.Source
	cfg     Config
	metrics *metrics
}

func New(src database.Source, cfg Config, reg prometheus.Registerer) (Exporter, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	m, err := newMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	return &exporterApp{
		src:     src,
		cfg:     cfg,
		metrics: m,
	}, nil
}

func (app *exporterApp) Export(ctx context.Context, out types.Sink) (*Summary, error) {
	runID := uuid.NewString()

	ctx = logging.NewContextWithLogger(ctx, logging.GetFromContext(ctx), slog.String("run_id", runID))
	logger := logging.GetFromContext(ctx)

	logger.Info("starting export", slog.Int("workers", app.cfg.Workers), slog.String("on_error", app.cfg.OnError))

	summary := &Summary{
		RunID:  runID,
		Tables: make([]TableSummary, len(tables)),
	}

	var err error
	if app.cfg.Workers > 1 {
		err = app.exportConcurrently(ctx, out, summary.Tables)
	} else {
		err = app.exportSerially(ctx, out, summary.Tables)
	}

	if err != nil {
		logger.Error("export failed", "err", err.Error())
		return nil, err
	}

	logger.Info("export done", slog.Int("statements", summary.Statements()), slog.Int("rejected", summary.Rejected()))

	return summary, nil
}

func (app *exporterApp) WriteTo(ctx context.Context, w io.Writer, format encoding.Format) (*Summary, error) {
	enc, err := encoding.NewEncoder(format, app.prefixes())
	if err != nil {
		return nil, err
	}

	options := []sink.GraphOption{}
	if app.cfg.Output.Graph != "" {
		options = append(options, sink.Named(quad.IRI(app.cfg.Output.Graph)))
	}

	g := sink.New(options...)

	summary, err := app.Export(ctx, g)
	if err != nil {
		return nil, err
	}

	err = enc.Encode(w, g.Statements())
	if err != nil {
		return nil, fmt.Errorf("failed to encode graph: %w", err)
	}

	return summary, nil
}

func (app *exporterApp) prefixes() encoding.Prefixes {
	p := encoding.DefaultPrefixes(chinook.Namespace)
	for label, ns := range app.cfg.Output.Prefixes {
		p[label] = ns
	}
	return p
}

// exportSerially maps all tables into one buffer that reaches out only when
// every table succeeded
func (app *exporterApp) exportSerially(ctx context.Context, out types.Sink, stats []TableSummary) error {
	buffer := sink.New()

	for i, t := range tables {
		if err := app.exportTable(ctx, t, buffer, &stats[i]); err != nil {
			return err
		}
	}

	buffer.AppendTo(out)

	return nil
}

// exportConcurrently maps each table into its own buffer and appends the
// buffers to out in table order once every table is done
func (app *exporterApp) exportConcurrently(ctx context.Context, out types.Sink, stats []TableSummary) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(app.cfg.Workers)

	buffers := make([]*sink.Graph, len(tables))
	errs := make([]error, len(tables))

	for i, t := range tables {
		buffers[i] = sink.New()
		g.Go(func() error {
			errs[i] = app.exportTable(gctx, t, buffers[i], &stats[i])
			return errs[i]
		})
	}

	if err := g.Wait(); err != nil {
		return firstCause(errs, err)
	}

	for _, b := range buffers {
		b.AppendTo(out)
	}

	return nil
}

// firstCause returns the first error in table order that is not a
// cancellation caused by another table failing
func firstCause(errs []error, fallback error) error {
	for _, err := range errs {
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}
	return fallback
}

func (app *exporterApp) exportTable(ctx context.Context, t table, out types.Sink, stats *TableSummary) (err error) {
	kind := string(t.kind)

	ctx, span := tracer.Start(ctx, "export-table", trace.WithAttributes(attribute.String("table", kind)))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	logger := logging.GetFromContext(ctx).With(slog.String("table", kind))

	stats.Kind = t.kind
	counter := &countingSink{next: out}

	defer func() {
		stats.Statements = counter.count
		app.metrics.statements.WithLabelValues(kind).Add(float64(counter.count))
		app.metrics.rows.WithLabelValues(kind).Add(float64(stats.Rows))
		app.metrics.rejected.WithLabelValues(kind).Add(float64(stats.Rejected))
	}()

	err = t.export(ctx, app.src, func(mapRow rowMapper) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		stats.Rows++

		err := mapRow(counter)
		if err == nil {
			return nil
		}

		if app.cfg.OnError == OnErrorSkip && isRowError(err) {
			stats.Rejected++
			logger.Warn("skipping rejected row", "err", err.Error())
			return nil
		}

		return err
	})
	if err != nil {
		return fmt.Errorf("failed to export %s: %w", kind, err)
	}

	logger.Info("table exported",
		slog.Int("rows", stats.Rows),
		slog.Int("statements", counter.count),
		slog.Int("rejected", stats.Rejected),
	)

	return nil
}

func isRowError(err error) bool {
	return errors.Is(err, rdferrors.ErrMissingKey) || errors.Is(err, rdferrors.ErrInvalidLiteral)
}

type countingSink struct {
	next  types.Sink
	count int
}

func (c *countingSink) AddStatement(subject, predicate quad.IRI, object quad.Value) {
	c.count++
	c.next.AddStatement(subject, predicate, object)
}
