package sandbox

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// FakeProvider is an in-memory Provider used when no orchestrator is
// configured, and by tests exercising trigger execution.
type FakeProvider struct {
	mu        sync.Mutex
	sandboxes map[string]*Sandbox
	files     map[string]map[string][]byte // sandbox id -> path -> content
}

// NewFakeProvider creates an empty in-memory provider.
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{
		sandboxes: make(map[string]*Sandbox),
		files:     make(map[string]map[string][]byte),
	}
}

func (p *FakeProvider) Create(ctx context.Context, password, projectID string) (*Sandbox, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := uuid.New().String()
	sb := &Sandbox{
		ID:         id,
		Password:   password,
		VncPreview: fmt.Sprintf("https://sandbox.invalid/%s/vnc", id),
		SandboxURL: fmt.Sprintf("https://sandbox.invalid/%s/web", id),
	}
	p.sandboxes[id] = sb
	p.files[id] = make(map[string][]byte)
	return sb, nil
}

func (p *FakeProvider) GetOrStart(ctx context.Context, sandboxID string) (*Sandbox, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	sb, ok := p.sandboxes[sandboxID]
	if !ok {
		return nil, fmt.Errorf("sandbox %s not found", sandboxID)
	}
	return sb, nil
}

func (p *FakeProvider) Delete(ctx context.Context, sandboxID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.sandboxes[sandboxID]; !ok {
		return fmt.Errorf("sandbox %s not found", sandboxID)
	}
	delete(p.sandboxes, sandboxID)
	delete(p.files, sandboxID)
	return nil
}

func (p *FakeProvider) UploadFile(ctx context.Context, sandboxID, path string, content []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.sandboxes[sandboxID]; !ok {
		return fmt.Errorf("sandbox %s not found", sandboxID)
	}
	p.files[sandboxID][path] = append([]byte(nil), content...)
	return nil
}

func (p *FakeProvider) ListFiles(ctx context.Context, sandboxID, path string) ([]FileInfo, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.sandboxes[sandboxID]; !ok {
		return nil, fmt.Errorf("sandbox %s not found", sandboxID)
	}
	var out []FileInfo
	for name, content := range p.files[sandboxID] {
		if path != "" && path != "/" && !strings.HasPrefix(name, path) {
			continue
		}
		out = append(out, FileInfo{
			Path: name,
			Name: filepath.Base(name),
			Size: int64(len(content)),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}
