package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/diwise/chinook-rdf/internal/pkg/application/exporter"
	"github.com/diwise/chinook-rdf/internal/pkg/infrastructure/database"
	"github.com/diwise/chinook-rdf/internal/pkg/infrastructure/router"
	"github.com/diwise/chinook-rdf/internal/pkg/presentation/api"
	"github.com/diwise/chinook-rdf/pkg/rdf/encoding"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const serviceName string = "chinook-rdf"

func main() {
	serviceVersion := buildinfo.SourceVersion()

	ctx, logger, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion, "json")
	defer cleanup()

	flags := parseExternalConfig(ctx, defaultFlags())

	cfg, err := loadConfiguration(flags)
	exitIf(err, logger, "failed to load configuration")

	src, err := database.Open(ctx)
	exitIf(err, logger, "failed to connect to database")
	defer src.Close()

	reg := prometheus.NewRegistry()

	app, err := exporter.New(src, *cfg, reg)
	exitIf(err, logger, "failed to create exporter")

	if flags[serveMode] == "true" {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		r := router.New(serviceName)
		api.RegisterHandlers(ctx, r, app, reg)

		logger.Info("starting to listen for connections", "port", flags[servicePort])

		err = http.ListenAndServe(":"+flags[servicePort], r)
		exitIf(err, logger, "failed to listen for connections")
		return
	}

	err = writeGraph(ctx, app, cfg)
	exitIf(err, logger, "export failed")
}

func defaultFlags() FlagMap {
	return FlagMap{
		servicePort: "8080",
		serveMode:   "false",
	}
}

func parseExternalConfig(ctx context.Context, flags FlagMap) FlagMap {
	flags[servicePort] = env.GetVariableOrDefault(ctx, "SERVICE_PORT", flags[servicePort])

	flag.Func("config", "path to a yaml configuration `file`", func(value string) error {
		flags[configPath] = value
		return nil
	})
	flag.Func("output", "output `file` (defaults to output.path, or stdout)", func(value string) error {
		flags[outputPath] = value
		return nil
	})
	flag.Func("format", "output `format`: turtle, trig or nquads", func(value string) error {
		flags[outputFormat] = value
		return nil
	})
	flag.BoolFunc("serve", "serve the graph over http instead of writing it once", func(value string) error {
		flags[serveMode] = value
		return nil
	})

	flag.Parse()

	return flags
}

func loadConfiguration(flags FlagMap) (*exporter.Config, error) {
	cfg := exporter.DefaultConfig()

	if path := flags[configPath]; path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		cfg, err = exporter.LoadConfiguration(f)
		if err != nil {
			return nil, err
		}
	}

	if flags[outputPath] != "" {
		cfg.Output.Path = flags[outputPath]
	}

	switch {
	case flags[outputFormat] != "":
		cfg.Output.Format = flags[outputFormat]
	case flags[outputPath] != "":
		// an explicit output file picks the format from its extension when it has a known one
		if format, err := encoding.ParseFormat(filepath.Ext(flags[outputPath])); err == nil {
			cfg.Output.Format = string(format)
		}
	}

	format, err := encoding.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	cfg.Output.Format = string(format)

	return cfg, nil
}

// writeGraph exports into memory first so that a failed export never
// replaces an existing output file
func writeGraph(ctx context.Context, app exporter.Exporter, cfg *exporter.Config) error {
	buf := &bytes.Buffer{}

	summary, err := app.WriteTo(ctx, buf, cfg.OutputFormat())
	if err != nil {
		return err
	}

	path := cfg.Output.Path

	if path == "" || path == "-" {
		_, err = buf.WriteTo(os.Stdout)
	} else {
		err = replaceFile(path, buf)
	}

	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger := logging.GetFromContext(ctx)
	for _, t := range summary.Tables {
		logger.Debug("table summary", "table", t.Kind, "rows", t.Rows, "statements", t.Statements, "rejected", t.Rejected)
	}

	return nil
}

func replaceFile(path string, content io.Reader) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}

	_, err = io.Copy(f, content)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		os.Remove(f.Name())
		return err
	}

	if err = os.Rename(f.Name(), path); err != nil {
		os.Remove(f.Name())
		return err
	}

	return nil
}

func exitIf(err error, logger *slog.Logger, msg string) {
	if err != nil {
		logger.Error(msg, "err", err.Error())
		os.Exit(1)
	}
}
