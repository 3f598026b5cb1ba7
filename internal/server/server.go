// Package server implements the local asset server for mazeview.
//
// It serves a directory of published JSON/JSONL/image assets over HTTP
// for the viewer to fetch, counts traffic for a /api/metrics endpoint,
// and optionally watches the asset directory with fsnotify so dataset
// regeneration shows up in the log as it happens.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Config holds configuration for the asset server.
type Config struct {
	// ListenAddr is the HTTP listen address.
	ListenAddr string `json:"listen_addr"`
	// AssetDir is the directory of published assets.
	AssetDir string `json:"asset_dir"`
	// Watch enables fsnotify change logging for AssetDir.
	Watch bool `json:"watch"`
}

// DefaultConfig returns sensible defaults for local use.
func DefaultConfig() Config {
	return Config{
		ListenAddr: "127.0.0.1:8460",
		AssetDir:   "./assets",
		Watch:      true,
	}
}

// Metrics tracks request counts for the /api/metrics endpoint.
type Metrics struct {
	RequestsServed int64 `json:"requests_served"`
	BytesServed    int64 `json:"bytes_served"`
	NotFound       int64 `json:"not_found"`
	Uptime         int64 `json:"uptime_seconds"`
}

// AssetServer serves static dataset assets.
type AssetServer struct {
	config  Config
	log     *zap.Logger
	metrics Metrics
	started time.Time

	listener net.Listener
	httpSrv  *http.Server
	watcher  *fsnotify.Watcher
	wg       sync.WaitGroup
	cancel   context.CancelFunc
}

// New creates an asset server. A nil logger disables logging.
func New(config Config, log *zap.Logger) *AssetServer {
	if log == nil {
		log = zap.NewNop()
	}
	return &AssetServer{config: config, log: log}
}

// Addr returns the bound listen address once Start has succeeded. Useful
// when ListenAddr requested an ephemeral port.
func (s *AssetServer) Addr() string {
	if s.listener == nil {
		return s.config.ListenAddr
	}
	return s.listener.Addr().String()
}

// countingWriter wraps a ResponseWriter to record status and bytes.
type countingWriter struct {
	http.ResponseWriter
	status int
	bytes  int64
}

func (w *countingWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *countingWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytes += int64(n)
	return n, err
}

// Start binds the listener and begins serving. It returns once the server
// is accepting; serving continues until Stop or context cancellation.
func (s *AssetServer) Start(ctx context.Context) error {
	if _, err := os.Stat(s.config.AssetDir); err != nil {
		return fmt.Errorf("asset directory %s: %w", s.config.AssetDir, err)
	}

	listener, err := net.Listen("tcp", s.config.ListenAddr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.config.ListenAddr, err)
	}
	s.listener = listener
	s.started = time.Now()

	ctx, s.cancel = context.WithCancel(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/metrics", s.handleMetrics)
	mux.Handle("/", s.instrument(http.FileServer(http.Dir(s.config.AssetDir))))

	s.httpSrv = &http.Server{Handler: mux}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.httpSrv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("serve failed", zap.Error(err))
		}
	}()

	if s.config.Watch {
		if err := s.startWatcher(ctx); err != nil {
			// Watching is a convenience; serving continues without it.
			s.log.Warn("asset watcher unavailable", zap.Error(err))
		}
	}

	s.log.Info("asset server listening",
		zap.String("addr", s.Addr()),
		zap.String("dir", s.config.AssetDir))
	return nil
}

// Stop gracefully shuts the server down.
func (s *AssetServer) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	if s.watcher != nil {
		s.watcher.Close()
	}
	var err error
	if s.httpSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = s.httpSrv.Shutdown(shutdownCtx)
	}
	s.wg.Wait()
	s.log.Info("asset server stopped")
	return err
}

// Metrics returns a snapshot of the request counters.
func (s *AssetServer) Metrics() Metrics {
	return Metrics{
		RequestsServed: atomic.LoadInt64(&s.metrics.RequestsServed),
		BytesServed:    atomic.LoadInt64(&s.metrics.BytesServed),
		NotFound:       atomic.LoadInt64(&s.metrics.NotFound),
		Uptime:         int64(time.Since(s.started).Seconds()),
	}
}

func (s *AssetServer) handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.Metrics())
}

// instrument wraps the file server with counting and access logging.
func (s *AssetServer) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cw := &countingWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(cw, r)

		atomic.AddInt64(&s.metrics.RequestsServed, 1)
		atomic.AddInt64(&s.metrics.BytesServed, cw.bytes)
		if cw.status == http.StatusNotFound {
			atomic.AddInt64(&s.metrics.NotFound, 1)
		}

		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", cw.status),
			zap.Int64("bytes", cw.bytes))
	})
}

// startWatcher logs create/write/remove events in the asset directory.
func (s *AssetServer) startWatcher(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(s.config.AssetDir); err != nil {
		watcher.Close()
		return err
	}
	s.watcher = watcher

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove) != 0 {
					s.log.Info("asset changed",
						zap.String("path", ev.Name),
						zap.String("op", ev.Op.String()))
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.log.Warn("watcher error", zap.Error(err))
			}
		}
	}()
	return nil
}
