package api

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/diwise/chinook-rdf/internal/pkg/application/exporter"
	"github.com/diwise/chinook-rdf/pkg/rdf/encoding"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("chinook-rdf/api")

func RegisterHandlers(ctx context.Context, r chi.Router, app exporter.Exporter, gatherer prometheus.Gatherer) {
	r.Use(Logger(logging.GetFromContext(ctx)))

	r.Get("/health", NewHealthHandler())
	r.Get("/graph", NewGraphHandler(app))
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
}

func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(
				trace.SpanFromContext(ctx),
				logger,
				ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewGraphHandler runs an export and writes the graph in the format asked for
// with either a format query parameter or the Accept header
func NewGraphHandler(app exporter.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "export-graph")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		logger := logging.GetFromContext(ctx)

		format, err := negotiateFormat(r)
		if err != nil {
			logger.Info("no acceptable format", "err", err.Error())
			http.Error(w, err.Error(), http.StatusNotAcceptable)
			return
		}

		span.SetAttributes(attribute.String("format", string(format)))

		buf := &bytes.Buffer{}
		summary, err := app.WriteTo(ctx, buf, format)
		if err != nil {
			logger.Error("failed to export graph", "err", err.Error())
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", encoding.FormatRegistry[format].MIMEType+"; charset=utf-8")
		w.Header().Set("X-Export-Run", summary.RunID)
		w.WriteHeader(http.StatusOK)
		w.Write(buf.Bytes())
	}
}

func negotiateFormat(r *http.Request) (encoding.Format, error) {
	if name := r.URL.Query().Get("format"); name != "" {
		return encoding.ParseFormat(name)
	}

	accept := r.Header.Get("Accept")

	format, ok := encoding.FormatFromAccept(accept)
	if !ok {
		return "", fmt.Errorf("none of the requested media types (%s) can be produced", accept)
	}

	return format, nil
}
