package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazeview/mazeview/internal/trajectory"
)

const testIndex = `{
  "version": "1.0",
  "lastUpdated": "2025-06-01T00:00:00Z",
  "tasks": [
    {"id": "t1", "name": "Task One", "dataFile": "tasks/t1.json", "thumbnail": "thumbs/t1.png"}
  ]
}`

const testTask = `{
  "taskName": "Task One",
  "trajectories": {
    "r1": {"name": "run", "totalSteps": 1, "steps":
      [{"state": {"image": "i.png", "description": "d"}, "reasoning": "r", "action": "a"}]}
  }
}`

func newTestServer(t *testing.T, taskFetches *int64) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/tasks/index.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testIndex))
	})
	mux.HandleFunc("/tasks/t1.json", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(taskFetches, 1)
		w.Write([]byte(testTask))
	})
	mux.HandleFunc("/dataset/layouts.jsonl", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{\"layout_type\":\"4room\",\"images\":[\"a.png\"]}\n{oops\n"))
	})
	mux.HandleFunc("/images/ok.png", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("png"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := New(Options{
		BaseURL:     baseURL,
		DatasetPath: "dataset/layouts.jsonl",
		IndexPath:   "tasks/index.json",
	})
	require.NoError(t, err)
	return c
}

func TestNewRejectsRelativeBase(t *testing.T) {
	_, err := New(Options{BaseURL: "assets/"})
	assert.Error(t, err)
}

func TestFetchIndex(t *testing.T) {
	var fetches int64
	srv := newTestServer(t, &fetches)
	c := newTestClient(t, srv.URL)

	idx, err := c.FetchIndex(context.Background())
	require.NoError(t, err)
	require.Len(t, idx.Tasks, 1)
	assert.Equal(t, "t1", idx.Tasks[0].ID)
}

func TestFetchIndexBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)
	c := newTestClient(t, srv.URL)

	_, err := c.FetchIndex(context.Background())
	require.ErrorIs(t, err, ErrBadStatus)
}

func TestFetchTaskDataCacheHit(t *testing.T) {
	var fetches int64
	srv := newTestServer(t, &fetches)
	c := newTestClient(t, srv.URL)

	entry := trajectory.TaskIndexEntry{ID: "t1", DataFile: "tasks/t1.json"}

	first, err := c.FetchTaskData(context.Background(), entry)
	require.NoError(t, err)
	second, err := c.FetchTaskData(context.Background(), entry)
	require.NoError(t, err)

	assert.Same(t, first, second, "second selection should be served from cache")
	assert.EqualValues(t, 1, atomic.LoadInt64(&fetches), "task document fetched more than once")
}

func TestFetchTaskDataFailureLeavesCacheIntact(t *testing.T) {
	var fetches int64
	srv := newTestServer(t, &fetches)
	c := newTestClient(t, srv.URL)

	good := trajectory.TaskIndexEntry{ID: "t1", DataFile: "tasks/t1.json"}
	bad := trajectory.TaskIndexEntry{ID: "t2", DataFile: "tasks/missing.json"}

	_, err := c.FetchTaskData(context.Background(), good)
	require.NoError(t, err)

	_, err = c.FetchTaskData(context.Background(), bad)
	require.Error(t, err)

	// t1 still cached, t2 not poisoned with a bad entry.
	_, err = c.FetchTaskData(context.Background(), good)
	require.NoError(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt64(&fetches))
}

func TestFetchDatasetLenient(t *testing.T) {
	var fetches int64
	srv := newTestServer(t, &fetches)
	c := newTestClient(t, srv.URL)

	samples, warnings, err := c.FetchDataset(context.Background())
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, "4room", samples[0].LayoutType)
	assert.Len(t, warnings, 1, "malformed line should be reported, not fatal")
}

func TestFetchDatasetStrict(t *testing.T) {
	var fetches int64
	srv := newTestServer(t, &fetches)
	c := newTestClient(t, srv.URL)

	_, err := c.FetchDatasetStrict(context.Background())
	require.Error(t, err, "strict parse must abort on the malformed line")
}

func TestProbeImage(t *testing.T) {
	var fetches int64
	srv := newTestServer(t, &fetches)
	c := newTestClient(t, srv.URL)

	assert.True(t, c.ProbeImage(context.Background(), "images/ok.png"))
	assert.False(t, c.ProbeImage(context.Background(), "images/missing.png"))
}

func TestImageURL(t *testing.T) {
	c := newTestClient(t, "http://assets.test/maze/")
	assert.Equal(t, "http://assets.test/maze/images/a.png", c.ImageURL("images/a.png"))
}
