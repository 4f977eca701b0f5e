package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// Store hands out isolated temporary directories for pipeline runs.
// Concurrent runs get disjoint scopes and never collide on names.
type Store struct {
	baseDir string
}

func NewStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure artifacts dir: %w", err)
	}
	return &Store{baseDir: baseDir}, nil
}

func (s *Store) BaseDir() string { return s.baseDir }

// NewScope creates a fresh directory owned by a single run. The caller must
// call Release when the run ends, on every exit path.
func (s *Store) NewScope() (*Scope, error) {
	dir := filepath.Join(s.baseDir, uuid.NewString())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create scope dir: %w", err)
	}
	return &Scope{dir: dir}, nil
}

// Scope is the set of temporary files owned by one run, released together.
type Scope struct {
	dir      string
	mu       sync.Mutex
	released bool
}

func (sc *Scope) Dir() string { return sc.dir }

// Path returns the location for a named artifact inside the scope. The file
// is not created; stages write to it themselves.
func (sc *Scope) Path(name string) string {
	return filepath.Join(sc.dir, name)
}

// Release removes the scope directory and everything in it. It is safe to
// call more than once; only the first call does work.
func (sc *Scope) Release() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.released {
		return nil
	}
	sc.released = true
	if err := os.RemoveAll(sc.dir); err != nil {
		return fmt.Errorf("remove scope dir: %w", err)
	}
	return nil
}
