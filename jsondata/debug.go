package jsondata

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shirinlakhani/codejudge"
)

// Compile-time interface verification.
var _ codejudge.DebugStore = (*DebugStore)(nil)

// DebugStore writes the cleaned-but-unparseable output of a failed case to
// a per-case text file. Artifacts are never cleaned up automatically.
type DebugStore struct{}

// NewDebugStore creates a new DebugStore.
func NewDebugStore() *DebugStore {
	return &DebugStore{}
}

// Save writes text to debug_<id>.txt under dir, creating dir on demand, and
// returns the written path.
func (s *DebugStore) Save(dir, id, text string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("debug_%s.txt", id))
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
