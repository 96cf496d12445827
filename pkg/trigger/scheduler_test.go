package trigger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPScheduler(t *testing.T) {
	var deleted string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/jobs":
			var job Job
			require.NoError(t, json.NewDecoder(r.Body).Decode(&job))
			assert.Equal(t, "http://agentd.example/hook", job.Destination)
			assert.Equal(t, "0 0 * * *", job.CronExpr)
			job.ID = "job-1"
			json.NewEncoder(w).Encode(job)
		case r.Method == http.MethodGet && r.URL.Path == "/jobs":
			json.NewEncoder(w).Encode([]Job{{ID: "job-1", Destination: "http://agentd.example/hook"}})
		case r.Method == http.MethodDelete:
			deleted = r.URL.Path
			w.WriteHeader(http.StatusNoContent)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	s := NewHTTPScheduler(srv.URL)
	s.OverrideHTTPClientForTest(srv.Client())
	ctx := context.Background()

	id, err := s.Schedule(ctx, "http://agentd.example/hook", "0 0 * * *", []byte(`{"k":"v"}`), map[string]string{"Content-Type": "application/json"})
	require.NoError(t, err)
	assert.Equal(t, "job-1", id)

	jobs, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "job-1", jobs[0].ID)

	require.NoError(t, s.Delete(ctx, "job-1"))
	assert.Equal(t, "/jobs/job-1", deleted)
}

func TestHTTPSchedulerErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	s := NewHTTPScheduler(srv.URL)
	s.OverrideHTTPClientForTest(srv.Client())

	_, err := s.Schedule(context.Background(), "http://x", "0 0 * * *", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 503")
}
