package uploads

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/robfig/cron/v3"
)

// CoverReferences reports which cover filenames are referenced by the catalog.
type CoverReferences interface {
	ReferencedCoverFiles() (map[string]bool, error)
}

// Janitor periodically removes stored cover files that no book references.
// Uploads overwrite by filename, so replaced covers can leave orphans behind.
type Janitor struct {
	store *Store
	refs  CoverReferences
	cron  *cron.Cron
}

// NewJanitor creates a janitor sweeping the given store.
func NewJanitor(store *Store, refs CoverReferences) *Janitor {
	return &Janitor{
		store: store,
		refs:  refs,
		cron:  cron.New(),
	}
}

// Start schedules the sweep with the given cron expression and begins running.
func (j *Janitor) Start(schedule string) error {
	_, err := j.cron.AddFunc(schedule, func() {
		removed, err := j.Sweep()
		if err != nil {
			log.Printf("Cover sweep failed: %v", err)
			return
		}
		if removed > 0 {
			log.Printf("Cover sweep removed %d orphaned file(s)", removed)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule cover sweep: %w", err)
	}

	j.cron.Start()
	return nil
}

// Stop halts the schedule. Any sweep in progress runs to completion.
func (j *Janitor) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
}

// Sweep removes unreferenced cover files and returns the number removed.
func (j *Janitor) Sweep() (int, error) {
	referenced, err := j.refs.ReferencedCoverFiles()
	if err != nil {
		return 0, fmt.Errorf("list referenced covers: %w", err)
	}

	entries, err := os.ReadDir(j.store.Dir())
	if err != nil {
		return 0, fmt.Errorf("read upload dir: %w", err)
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		// Temp files from in-flight uploads are not ours to touch
		if !AllowedExtension(name) {
			continue
		}
		if referenced[name] {
			continue
		}
		if err := os.Remove(filepath.Join(j.store.Dir(), name)); err != nil {
			log.Printf("Failed to remove orphaned cover %s: %v", name, err)
			continue
		}
		removed++
	}

	return removed, nil
}
