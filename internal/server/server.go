// Package server hosts the MealScope HTTP API and chart page. It serves an
// immutable analysis snapshot that is swapped atomically on reload, so
// handlers never observe a half-updated catalog.
package server

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mealscope/mealscope/internal/source"
	"github.com/mealscope/mealscope/pkg/chart"
	"github.com/mealscope/mealscope/pkg/menu"
	"github.com/mealscope/mealscope/pkg/scoring"
	"github.com/mealscope/mealscope/pkg/viz"
)

const shutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	Addr            string
	Input           string
	Mode            viz.Mode
	Chart           chart.Options
	Weights         scoring.Weights
	IngredientNames map[string]string
	Watch           bool
	Open            bool
	Logger          *zap.Logger
}

// snapshot bundles everything the handlers read. Built once per reload and
// never mutated afterwards.
type snapshot struct {
	catalog   menu.Catalog
	analyzer  *scoring.Analyzer
	report    *scoring.Report
	chartHTML []byte
}

// Server is the MealScope HTTP server.
type Server struct {
	opts    Options
	logger  *zap.Logger
	source  source.CatalogSource
	engine  http.Handler
	current atomic.Pointer[snapshot]
}

// New creates a Server for the given options. The catalog is not fetched
// until Reload or Run.
func New(opts Options) (*Server, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	src, err := source.FromURI(opts.Input)
	if err != nil {
		return nil, err
	}
	s := &Server{
		opts:   opts,
		logger: opts.Logger,
		source: src,
	}
	s.engine = s.routes()
	return s, nil
}

// Reload fetches the catalog, rebuilds the analysis, and swaps the served
// snapshot. On error the previous snapshot stays in place.
func (s *Server) Reload(ctx context.Context) error {
	next, err := s.buildSnapshot(ctx)
	if err != nil {
		return err
	}
	prev := s.current.Swap(next)
	if prev != nil {
		delta := menu.ComputeDelta(prev.catalog, next.catalog)
		s.logger.Info("catalog reloaded",
			zap.String("source", s.source.Location()),
			zap.Int("dishes", len(next.catalog.Dishes)),
			zap.Int("added", delta.Stats.AddedCount),
			zap.Int("removed", delta.Stats.RemovedCount),
			zap.Int("changed", delta.Stats.ChangedCount),
		)
	}
	return nil
}

func (s *Server) buildSnapshot(ctx context.Context) (*snapshot, error) {
	data, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog from %s: %w", s.source.Location(), err)
	}
	cat, err := menu.ParseCatalog(data)
	if err != nil {
		return nil, err
	}
	resolved := menu.ResolveMainIngredients(cat, s.opts.IngredientNames)
	analyzer := scoring.New(resolved, s.opts.Weights)
	rep, err := analyzer.BuildReport()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := chart.NewRenderer(s.opts.Chart).Render(&buf, viz.Build(resolved, analyzer, s.opts.Mode)); err != nil {
		return nil, err
	}

	return &snapshot{
		catalog:   resolved,
		analyzer:  analyzer,
		report:    rep,
		chartHTML: buf.Bytes(),
	}, nil
}

func (s *Server) snapshot() *snapshot {
	return s.current.Load()
}

// Run loads the initial snapshot, starts the listener, and blocks until
// SIGINT/SIGTERM or context cancellation, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Reload(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.opts.Watch {
		if fs, ok := s.source.(*source.FileSource); ok {
			go func() {
				if err := s.watch(ctx, fs.Path); err != nil {
					s.logger.Error("watcher stopped", zap.Error(err))
				}
			}()
		} else {
			s.logger.Warn("watch disabled: catalog is not a local file",
				zap.String("source", s.source.Location()))
		}
	}

	srv := &http.Server{
		Addr:    s.opts.Addr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("mealscope server listening", zap.String("addr", s.opts.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	if s.opts.Open {
		go func() {
			// Give the listener a moment before pointing a browser at it.
			time.Sleep(200 * time.Millisecond)
			url := chartURL(s.opts.Addr)
			if err := openBrowser(url); err != nil {
				s.logger.Warn("opening browser", zap.String("url", url), zap.Error(err))
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	return srv.Shutdown(shutdownCtx)
}

// chartURL turns a listen address into a browsable chart URL.
func chartURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr + "/chart"
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port) + "/chart"
}
