package sandbox

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/agentd-io/agentd/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, handler http.Handler) *HTTPProvider {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p := NewHTTPProvider(&config.SandboxConfig{
		BaseURL:        srv.URL,
		APIKey:         "test-key",
		RequestTimeout: 5 * time.Second,
	})
	p.OverrideHTTPClientForTest(srv.Client())
	return p
}

func TestHTTPProviderCreate(t *testing.T) {
	var gotAuth string
	var gotBody map[string]string

	p := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/sandboxes", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]string{
			"id":          "sb-123",
			"pass":        gotBody["password"],
			"vnc_preview": "https://preview.example/vnc",
			"sandbox_url": "https://preview.example/web",
		})
	}))

	sb, err := p.Create(context.Background(), "secret", "project-1")
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "project-1", gotBody["project_id"])
	assert.Equal(t, "sb-123", sb.ID)
	assert.Equal(t, "secret", sb.Password)
	assert.Equal(t, "https://preview.example/vnc", sb.VncPreview)
	assert.Equal(t, "https://preview.example/web", sb.SandboxURL)
}

func TestHTTPProviderGetOrStart(t *testing.T) {
	p := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/sandboxes/sb-9/start", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"id": "sb-9"})
	}))

	sb, err := p.GetOrStart(context.Background(), "sb-9")
	require.NoError(t, err)
	assert.Equal(t, "sb-9", sb.ID)
}

func TestHTTPProviderDelete(t *testing.T) {
	var gotPath string
	p := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, p.Delete(context.Background(), "sb-9"))
	assert.Equal(t, "/sandboxes/sb-9", gotPath)
}

func TestHTTPProviderFileOperations(t *testing.T) {
	var uploaded map[string]string
	p := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/sandboxes/sb-9/files", r.URL.Path)
		switch r.Method {
		case http.MethodPost:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&uploaded))
			w.WriteHeader(http.StatusCreated)
		case http.MethodGet:
			require.Equal(t, "/workspace", r.URL.Query().Get("path"))
			json.NewEncoder(w).Encode(map[string]any{
				"files": []map[string]any{
					{"path": "/workspace/main.py", "name": "main.py", "size": 42},
				},
			})
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	}))

	ctx := context.Background()
	require.NoError(t, p.UploadFile(ctx, "sb-9", "/workspace/main.py", []byte("print('hi')")))
	assert.Equal(t, "/workspace/main.py", uploaded["path"])
	decoded, err := base64.StdEncoding.DecodeString(uploaded["content"])
	require.NoError(t, err)
	assert.Equal(t, "print('hi')", string(decoded))

	files, err := p.ListFiles(ctx, "sb-9", "/workspace")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "main.py", files[0].Name)
	assert.EqualValues(t, 42, files[0].Size)
}

func TestHTTPProviderErrorStatus(t *testing.T) {
	p := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))

	_, err := p.Create(context.Background(), "secret", "project-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 502")
}

func TestFakeProviderLifecycle(t *testing.T) {
	p := NewFakeProvider()
	ctx := context.Background()

	sb, err := p.Create(ctx, "secret", "project-1")
	require.NoError(t, err)
	assert.NotEmpty(t, sb.ID)
	assert.Equal(t, "secret", sb.Password)
	assert.NotEmpty(t, sb.VncPreview)
	assert.NotEmpty(t, sb.SandboxURL)

	got, err := p.GetOrStart(ctx, sb.ID)
	require.NoError(t, err)
	assert.Equal(t, sb, got)

	require.NoError(t, p.Delete(ctx, sb.ID))
	_, err = p.GetOrStart(ctx, sb.ID)
	assert.Error(t, err)

	m := sb.ToMap()
	assert.Equal(t, sb.ID, m["id"])
	assert.Equal(t, "secret", m["pass"])
}

func TestFakeProviderFiles(t *testing.T) {
	p := NewFakeProvider()
	ctx := context.Background()

	sb, err := p.Create(ctx, "secret", "project-1")
	require.NoError(t, err)

	require.NoError(t, p.UploadFile(ctx, sb.ID, "/workspace/a.txt", []byte("aa")))
	require.NoError(t, p.UploadFile(ctx, sb.ID, "/workspace/b.txt", []byte("b")))
	require.NoError(t, p.UploadFile(ctx, sb.ID, "/other/c.txt", []byte("c")))

	files, err := p.ListFiles(ctx, sb.ID, "/workspace")
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a.txt", files[0].Name)
	assert.EqualValues(t, 2, files[0].Size)
	assert.Equal(t, "b.txt", files[1].Name)

	err = p.UploadFile(ctx, "missing", "/x", nil)
	assert.Error(t, err)
}
