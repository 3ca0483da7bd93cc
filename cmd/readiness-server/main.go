package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/peterbourgon/ff/v3"
	"go.uber.org/zap"

	"github.com/lumenmetrics/readiness-engine/internal/config"
	"github.com/lumenmetrics/readiness-engine/internal/engine"
	"github.com/lumenmetrics/readiness-engine/internal/httpapi"
	"github.com/lumenmetrics/readiness-engine/internal/resultstore"
	"github.com/lumenmetrics/readiness-engine/internal/telemetry"
)

const serviceVersion = "0.3.0"

func main() {
	fs := flag.NewFlagSet("readiness-server", flag.ExitOnError)
	var (
		addr         = fs.String("addr", ":8080", "listen address")
		catalogPath  = fs.String("catalog", "", "path to catalog YAML, empty uses the built-in catalog")
		dbPath       = fs.String("db", "", "path to SQLite assessment archive, empty disables persistence")
		otlpEndpoint = fs.String("otlp-endpoint", "", "OTLP/HTTP trace collector endpoint, empty disables tracing")
		devLog       = fs.Bool("dev-log", false, "human-readable development log output")
	)
	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("READINESS")); err != nil {
		os.Exit(2)
	}

	log := newLogger(*devLog)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:       *otlpEndpoint,
		ServiceName:    "readiness-server",
		ServiceVersion: serviceVersion,
	})
	if err != nil {
		log.Fatal("telemetry setup", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			log.Warn("telemetry shutdown", zap.Error(err))
		}
	}()

	cat, problems := loadCatalog(log, *catalogPath)

	opts := httpapi.Options{
		Catalog:        cat,
		Logger:         log,
		ConfigProblems: problems,
	}
	if len(problems) == 0 {
		eng, err := engine.New(cat)
		if err != nil {
			log.Fatal("construct engine", zap.Error(err))
		}
		opts.Engine = eng
	} else {
		log.Error("catalog invalid, serving degraded results",
			zap.Strings("problems", problems))
	}

	if *dbPath != "" {
		store, err := resultstore.Open(*dbPath)
		if err != nil {
			log.Fatal("open assessment archive", zap.String("path", *dbPath), zap.Error(err))
		}
		defer store.Close()
		opts.Store = store
		log.Info("assessment archive enabled", zap.String("path", *dbPath))
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           httpapi.NewServer(opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("readiness-server listening", zap.String("addr", *addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("server shutdown", zap.Error(err))
		}
	case err := <-errc:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}
}

func newLogger(dev bool) *zap.Logger {
	var (
		log *zap.Logger
		err error
	)
	if dev {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return log
}

// loadCatalog resolves the scoring catalog. A broken catalog file does not
// kill the process: the problems are returned so the server can run
// degraded and report them on /v1/config/status.
func loadCatalog(log *zap.Logger, path string) (*config.Catalog, []string) {
	if path == "" {
		cat, err := config.Default()
		if err != nil {
			log.Fatal("built-in catalog invalid", zap.Error(err))
		}
		log.Info("using built-in catalog")
		return cat, nil
	}

	cat, err := config.Load(path)
	if err == nil {
		log.Info("catalog loaded", zap.String("path", path))
		return cat, nil
	}

	var ve *config.ValidationError
	if errors.As(err, &ve) {
		// Keep the decoded catalog: the degraded fallback still reports
		// every configured dimension at the neutral score.
		if cat == nil {
			cat = &config.Catalog{}
		}
		return cat, ve.Problems
	}
	// Unreadable or unparseable file is an operator mistake, not a
	// degradation to paper over.
	log.Fatal("load catalog", zap.String("path", path), zap.Error(err))
	return nil, nil
}
