// Package sandbox provisions isolated execution environments for projects.
//
// Provisioning is delegated to an external orchestrator over HTTP. The
// resulting sandbox metadata (id, access password, preview links) is stored
// on the owning project and handed to agent tooling.
package sandbox

import "context"

// Sandbox describes a provisioned execution environment.
type Sandbox struct {
	// ID is the orchestrator-assigned sandbox identifier.
	ID string `json:"id"`

	// Password protects the interactive preview endpoints.
	Password string `json:"pass"`

	// VncPreview is the URL of the live desktop view.
	VncPreview string `json:"vnc_preview"`

	// SandboxURL is the URL of the sandbox's exposed web server.
	SandboxURL string `json:"sandbox_url"`
}

// FileInfo describes one entry in a sandbox directory listing.
type FileInfo struct {
	Path  string `json:"path"`
	Name  string `json:"name"`
	IsDir bool   `json:"is_dir"`
	Size  int64  `json:"size"`
}

// Provider provisions and manages sandboxes.
type Provider interface {
	// Create provisions a new sandbox for a project.
	Create(ctx context.Context, password, projectID string) (*Sandbox, error)

	// GetOrStart returns an existing sandbox, starting it if the
	// orchestrator had suspended it.
	GetOrStart(ctx context.Context, sandboxID string) (*Sandbox, error)

	// Delete tears down a sandbox.
	Delete(ctx context.Context, sandboxID string) error

	// UploadFile writes content to path inside the sandbox filesystem.
	UploadFile(ctx context.Context, sandboxID, path string, content []byte) error

	// ListFiles lists the entries under path inside the sandbox filesystem.
	ListFiles(ctx context.Context, sandboxID, path string) ([]FileInfo, error)
}

// ToMap renders the sandbox in the shape stored on a project record.
func (s *Sandbox) ToMap() map[string]any {
	return map[string]any{
		"id":          s.ID,
		"pass":        s.Password,
		"vnc_preview": s.VncPreview,
		"sandbox_url": s.SandboxURL,
	}
}
