package prefs

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"polyglot-bot/internal/language"
)

// FileStore keeps selections in one JSON document {"<userId>": "<lang>"}
// rewritten whole on every mutation. All mutations are serialized through
// the mutex, so writers for different users cannot corrupt each other.
type FileStore struct {
	path  string
	mu    sync.Mutex
	langs map[string]string
}

func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure dir: %w", err)
	}
	// Touch file if not exists
	f, err := os.OpenFile(path, os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("touch file: %w", err)
	}
	_ = f.Close()
	s := &FileStore{path: path}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) Get(userID int64) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lang, ok := s.langs[key(userID)]
	return lang, ok
}

func (s *FileStore) Set(userID int64, lang string) error {
	if !language.IsTarget(lang) {
		return fmt.Errorf("language %q is not in the catalog", lang)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key(userID)
	prev, had := s.langs[k]
	s.langs[k] = lang
	if err := s.saveUnlocked(); err != nil {
		// The durable write failed; readers must keep seeing the old state.
		if had {
			s.langs[k] = prev
		} else {
			delete(s.langs, k)
		}
		return err
	}
	return nil
}

func (s *FileStore) Clear(userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key(userID)
	prev, had := s.langs[k]
	if !had {
		return nil
	}
	delete(s.langs, k)
	if err := s.saveUnlocked(); err != nil {
		s.langs[k] = prev
		return err
	}
	return nil
}

func (s *FileStore) load() error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
		}
	}(f)
	langs := map[string]string{}
	dec := json.NewDecoder(f)
	if err := dec.Decode(&langs); err != nil && err != io.EOF {
		// empty or malformed -> start fresh
		langs = map[string]string{}
	}
	s.langs = langs
	return nil
}

func (s *FileStore) saveUnlocked() error {
	f, err := os.OpenFile(s.path, os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open write: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.langs); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("sync: %w", err)
	}
	return f.Close()
}

func key(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
