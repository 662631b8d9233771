package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"FinTab/internal/domain/models"
	domain "FinTab/internal/domain/repository"
	"FinTab/internal/handler/api"
	"FinTab/internal/repository"
	"FinTab/internal/usecase"
	"FinTab/pkg/cache"
	"FinTab/pkg/config"
	xhttp "FinTab/pkg/http"
	applogger "FinTab/pkg/logger"

	"github.com/google/uuid"
)

// App encapsulates one fetch-load-evaluate-report cycle plus the optional
// serving mode over the loaded tables.
type App struct {
	cfg          *config.Config
	log          *applogger.Logger
	source       domain.LineSource
	loader       *usecase.TableLoader
	metrics      domain.Metrics
	publisher    domain.Publisher
	logPublisher applogger.Publisher
	cache        cache.Service
}

// New creates a new App instance with all dependencies. publisher and
// logPublisher are nil when publishing is disabled.
func New(
	cfg *config.Config,
	log *applogger.Logger,
	source domain.LineSource,
	loader *usecase.TableLoader,
	metrics domain.Metrics,
	publisher domain.Publisher,
	logPublisher applogger.Publisher,
	cacheSvc cache.Service,
) *App {
	return &App{
		cfg:          cfg,
		log:          log,
		source:       source,
		loader:       loader,
		metrics:      metrics,
		publisher:    publisher,
		logPublisher: logPublisher,
		cache:        cacheSvc,
	}
}

// Run executes the pipeline and, in serving mode, blocks until
// interrupted. Only the rendered result table is written to stdout.
func (a *App) Run() error {
	ctx := context.Background()

	if a.logPublisher != nil && a.cfg.Publisher.LogsTopic != "" {
		a.log.AddCollector(&applogger.CollectionConfig{
			Topic:     a.cfg.Publisher.LogsTopic,
			Publisher: a.logPublisher,
		})
	}
	defer a.close()

	fetchCtx := ctx
	if a.cfg.Input.FetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, a.cfg.Input.FetchTimeout)
		defer cancel()
	}
	lines, err := a.source.Fetch(fetchCtx)
	if err != nil {
		return fmt.Errorf("fetch input: %w", err)
	}
	a.log.Info("input loaded",
		applogger.String("origin", a.source.Origin()),
		applogger.Int("lines", len(lines)),
	)

	store, index, err := a.loader.Load(lines)
	if err != nil {
		return fmt.Errorf("load tables: %w", err)
	}

	if a.publisher != nil {
		pubStart := time.Now()
		if err := a.publisher.PublishLoadEvents(ctx, a.loader.Events(store)); err != nil {
			a.metrics.RecordError("publish")
			a.log.Warn("publish load events failed", applogger.Error(err))
		}
		a.metrics.RecordLatency("publish", time.Since(pubStart).Seconds())
	}

	evaluator := usecase.NewCountsEvaluator(index, a.metrics)
	result, best := evaluator.EvaluateTimed(a.cfg.Query.Runs)
	a.log.Info("query evaluated",
		applogger.Int("runs", a.cfg.Query.Runs),
		applogger.Duration("best_ms", best),
	)

	fmt.Println("Result:")
	if err := result.Render(os.Stdout); err != nil {
		return fmt.Errorf("render result: %w", err)
	}

	if a.publisher != nil {
		res, err := models.ResultFromTable(uuid.NewString(), result, best)
		if err != nil {
			a.log.Error("result mapping failed", applogger.Error(err))
		} else {
			pubStart := time.Now()
			if err := a.publisher.PublishResult(ctx, res); err != nil {
				a.metrics.RecordError("publish")
				a.log.Warn("publish result failed", applogger.Error(err))
			}
			a.metrics.RecordLatency("publish", time.Since(pubStart).Seconds())
		}
	}

	if !a.cfg.Server.Enabled {
		return nil
	}
	return a.serve(store, index)
}

// serve exposes the loaded store over HTTP until SIGINT/SIGTERM.
func (a *App) serve(store *repository.TableStore, index *repository.MemoryIndex) error {
	handler := api.NewStoreHandler(
		a.log,
		store,
		index,
		usecase.NewCountsEvaluator(index, a.metrics),
		usecase.NewAssetSummarizer(index),
		a.cache,
		a.cfg.Cache.TTL,
	)

	metricsPath := ""
	if a.cfg.Metrics.Enabled {
		metricsPath = a.cfg.Metrics.Path
	}
	srv := xhttp.NewServer(handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(metricsPath),
		xhttp.WithLogger(a.log),
	)
	if err := srv.Start(); err != nil {
		return fmt.Errorf("start http server: %w", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	a.log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
	}
	return nil
}

// close flushes the log collector and releases the publisher.
func (a *App) close() {
	a.log.RemoveCollector()
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.log.Warn("publisher close error", applogger.Error(err))
		}
	}
}
