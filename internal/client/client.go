// Package client fetches the published dataset and trajectory assets.
//
// Every operation is a single GET with no retry and no backoff: a failed
// fetch is terminal for the action that triggered it and is surfaced to
// the caller as one error. Task documents are cached in memory keyed by
// task id so re-selecting a task never re-fetches; nothing is ever
// written to disk.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/mazeview/mazeview/internal/dataset"
	"github.com/mazeview/mazeview/internal/trajectory"
)

// ErrBadStatus marks a non-2xx response. Wrapped with the URL and status
// text; callers branch with errors.Is.
var ErrBadStatus = errors.New("unexpected HTTP status")

// Fetcher is the data access surface the TUI depends on. The concrete
// Client is swapped for a stub in model tests.
type Fetcher interface {
	// FetchDataset retrieves and parses the layout gallery JSONL.
	FetchDataset(ctx context.Context) ([]dataset.LayoutSample, []dataset.ParseWarning, error)
	// FetchIndex retrieves the task manifest.
	FetchIndex(ctx context.Context) (*trajectory.TaskIndex, error)
	// FetchTaskData retrieves a task document, serving repeats from cache.
	FetchTaskData(ctx context.Context, entry trajectory.TaskIndexEntry) (*trajectory.TaskData, error)
	// ProbeImage reports whether an image asset is reachable.
	ProbeImage(ctx context.Context, path string) bool
	// ImageURL resolves an image path for display.
	ImageURL(path string) string
}

// Client implements Fetcher over HTTP.
type Client struct {
	base        *url.URL
	httpc       *http.Client
	log         *zap.Logger
	datasetPath string
	indexPath   string

	// tasks caches parsed TaskData by task id for the life of the
	// process. No expiration: the assets are static per deployment.
	tasks *cache.Cache
}

// Options configures a Client.
type Options struct {
	BaseURL     string
	DatasetPath string
	IndexPath   string
	Timeout     time.Duration
	Logger      *zap.Logger
}

// New creates a Client. BaseURL must be absolute.
func New(opts Options) (*Client, error) {
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if !base.IsAbs() {
		return nil, fmt.Errorf("base URL %q is not absolute", opts.BaseURL)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		base:        base,
		httpc:       &http.Client{Timeout: opts.Timeout},
		log:         log,
		datasetPath: opts.DatasetPath,
		indexPath:   opts.IndexPath,
		tasks:       cache.New(cache.NoExpiration, cache.NoExpiration),
	}, nil
}

// resolve joins a document-relative path onto the base URL.
func (c *Client) resolve(path string) string {
	ref, err := url.Parse(path)
	if err != nil {
		return path
	}
	return c.base.ResolveReference(ref).String()
}

// ImageURL resolves an image path for display in the gallery.
func (c *Client) ImageURL(path string) string {
	return c.resolve(path)
}

// get performs one GET and returns the body. Non-2xx responses are
// ErrBadStatus; the body is read fully so connections are reused.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", rawURL, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s: %s: %w", rawURL, resp.Status, ErrBadStatus)
	}
	return body, nil
}

// FetchDataset retrieves and leniently parses the layout gallery JSONL.
// Skipped lines come back as warnings and are logged; a transport or
// status failure returns an error with no partial result.
func (c *Client) FetchDataset(ctx context.Context) ([]dataset.LayoutSample, []dataset.ParseWarning, error) {
	body, err := c.get(ctx, c.resolve(c.datasetPath))
	if err != nil {
		return nil, nil, err
	}
	samples, warnings := dataset.Parse(body)
	for _, w := range warnings {
		c.log.Warn("dataset line skipped",
			zap.Int("line", w.Line),
			zap.String("reason", w.Reason))
	}
	c.log.Info("dataset loaded",
		zap.Int("layouts", len(samples)),
		zap.Int("skipped", len(warnings)))
	return samples, warnings, nil
}

// FetchDatasetStrict is the abort-on-first-error variant used by
// "inspect --strict". Not part of Fetcher; the viewer is always lenient.
func (c *Client) FetchDatasetStrict(ctx context.Context) ([]dataset.LayoutSample, error) {
	body, err := c.get(ctx, c.resolve(c.datasetPath))
	if err != nil {
		return nil, err
	}
	return dataset.ParseStrict(body)
}

// FetchIndex retrieves the task manifest.
func (c *Client) FetchIndex(ctx context.Context) (*trajectory.TaskIndex, error) {
	body, err := c.get(ctx, c.resolve(c.indexPath))
	if err != nil {
		return nil, err
	}
	var idx trajectory.TaskIndex
	if err := json.Unmarshal(body, &idx); err != nil {
		return nil, fmt.Errorf("parsing task index: %w", err)
	}
	c.log.Info("task index loaded",
		zap.String("version", idx.Version),
		zap.Int("tasks", len(idx.Tasks)))
	return &idx, nil
}

// FetchTaskData retrieves the task document referenced by an index entry.
// Parsed documents are cached by task id; a failed fetch caches nothing,
// so previously loaded tasks are unaffected.
func (c *Client) FetchTaskData(ctx context.Context, entry trajectory.TaskIndexEntry) (*trajectory.TaskData, error) {
	if cached, ok := c.tasks.Get(entry.ID); ok {
		c.log.Debug("task cache hit", zap.String("task", entry.ID))
		return cached.(*trajectory.TaskData), nil
	}

	body, err := c.get(ctx, c.resolve(entry.DataFile))
	if err != nil {
		return nil, err
	}
	var td trajectory.TaskData
	if err := json.Unmarshal(body, &td); err != nil {
		return nil, fmt.Errorf("parsing task %s: %w", entry.ID, err)
	}

	c.tasks.Set(entry.ID, &td, cache.NoExpiration)
	c.log.Info("task loaded",
		zap.String("task", entry.ID),
		zap.Int("trajectories", td.Trajectories.Len()))
	return &td, nil
}

// ProbeImage reports whether an image asset answers a HEAD request with a
// success status. A false result renders as an inline placeholder cell;
// it is never escalated to an error.
func (c *Client) ProbeImage(ctx context.Context, path string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.resolve(path), nil)
	if err != nil {
		return false
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return false
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode <= 299
}
