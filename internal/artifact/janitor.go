package artifact

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
)

// Janitor periodically removes scope directories left behind by a crashed
// process. Live runs are protected by maxAge; the sweep only touches
// directories older than that.
type Janitor struct {
	store  *Store
	cron   *cron.Cron
	maxAge time.Duration
}

func NewJanitor(store *Store, maxAge time.Duration) *Janitor {
	return &Janitor{
		store:  store,
		cron:   cron.New(cron.WithLocation(time.UTC)),
		maxAge: maxAge,
	}
}

func (j *Janitor) Start(schedule string) error {
	_, err := j.cron.AddFunc(schedule, func() {
		if n := j.sweepOnce(); n > 0 {
			log.Printf("artifact janitor removed %d stale scope(s)", n)
		}
	})
	if err != nil {
		return err
	}
	j.cron.Start()
	log.Printf("artifact janitor started, schedule %q, max age %s", schedule, j.maxAge)
	return nil
}

func (j *Janitor) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
	log.Println("artifact janitor stopped")
}

// sweepOnce removes stale scope directories and returns how many went away.
func (j *Janitor) sweepOnce() int {
	entries, err := os.ReadDir(j.store.BaseDir())
	if err != nil {
		log.Printf("artifact janitor: read base dir: %v", err)
		return 0
	}
	cutoff := time.Now().Add(-j.maxAge)
	removed := 0
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		dir := filepath.Join(j.store.BaseDir(), e.Name())
		if err := os.RemoveAll(dir); err != nil {
			log.Printf("artifact janitor: remove %s: %v", dir, err)
			continue
		}
		removed++
	}
	return removed
}
