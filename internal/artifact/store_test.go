package artifact

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestScopesAreDisjoint(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	a, err := store.NewScope()
	if err != nil {
		t.Fatalf("scope a: %v", err)
	}
	b, err := store.NewScope()
	if err != nil {
		t.Fatalf("scope b: %v", err)
	}
	if a.Dir() == b.Dir() {
		t.Fatalf("scopes share a directory: %s", a.Dir())
	}
	// Same artifact name in two scopes must not collide.
	if a.Path("audio.wav") == b.Path("audio.wav") {
		t.Fatal("artifact paths collide across scopes")
	}
}

func TestReleaseRemovesEverything(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	sc, err := store.NewScope()
	if err != nil {
		t.Fatalf("scope: %v", err)
	}
	for _, name := range []string{"source.oga", "audio.wav", "translated.ogg"} {
		if err := os.WriteFile(sc.Path(name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := sc.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	if _, err := os.Stat(sc.Dir()); !os.IsNotExist(err) {
		t.Fatalf("scope dir still exists after release")
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	sc, err := store.NewScope()
	if err != nil {
		t.Fatalf("scope: %v", err)
	}
	if err := sc.Release(); err != nil {
		t.Fatalf("first release: %v", err)
	}
	if err := sc.Release(); err != nil {
		t.Fatalf("second release: %v", err)
	}
}

func TestJanitorSweepsOnlyStaleScopes(t *testing.T) {
	base := t.TempDir()
	store, err := NewStore(base)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}

	stale, err := store.NewScope()
	if err != nil {
		t.Fatalf("stale scope: %v", err)
	}
	fresh, err := store.NewScope()
	if err != nil {
		t.Fatalf("fresh scope: %v", err)
	}
	old := time.Now().Add(-2 * time.Hour)
	if err := os.Chtimes(stale.Dir(), old, old); err != nil {
		t.Fatalf("age scope dir: %v", err)
	}

	j := NewJanitor(store, time.Hour)
	if n := j.sweepOnce(); n != 1 {
		t.Fatalf("expected 1 stale scope removed, got %d", n)
	}
	if _, err := os.Stat(stale.Dir()); !os.IsNotExist(err) {
		t.Error("stale scope survived the sweep")
	}
	if _, err := os.Stat(fresh.Dir()); err != nil {
		t.Error("fresh scope should survive the sweep")
	}

	// Stray plain files in the base dir are not the janitor's business.
	if err := os.WriteFile(filepath.Join(base, "stray.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if n := j.sweepOnce(); n != 0 {
		t.Fatalf("expected nothing removed, got %d", n)
	}
}
