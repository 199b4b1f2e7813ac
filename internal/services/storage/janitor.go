package storage

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/gorm"

	"github.com/labelreader/label-api/internal/models"
)

// Janitor removes uploaded audio files that no submission references
// anymore. A blob becomes an orphan when a submission delete commits but
// the follow-up blob delete fails; the sweep is the backstop for that gap.
type Janitor struct {
	db       *gorm.DB
	baseDir  string
	maxAge   time.Duration
	interval time.Duration
	cancel   context.CancelFunc
}

// NewJanitor creates a janitor over the blob store's base directory.
// Files younger than maxAge are never touched, so an upload whose
// submission row has not committed yet cannot be swept.
func NewJanitor(db *gorm.DB, baseDir string, maxAge, interval time.Duration) *Janitor {
	return &Janitor{db: db, baseDir: baseDir, maxAge: maxAge, interval: interval}
}

// Start runs the sweep loop until Stop is called or ctx is cancelled
func (j *Janitor) Start(ctx context.Context) {
	ctx, j.cancel = context.WithCancel(ctx)

	go func() {
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		j.sweep(ctx)
		for {
			select {
			case <-ticker.C:
				j.sweep(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop terminates the sweep loop
func (j *Janitor) Stop() {
	if j.cancel != nil {
		j.cancel()
	}
}

func (j *Janitor) sweep(ctx context.Context) {
	entries, err := os.ReadDir(j.baseDir)
	if err != nil {
		log.Printf("[ERROR] Blob janitor failed to read %s: %v", j.baseDir, err)
		return
	}

	var refs []string
	if err := j.db.WithContext(ctx).
		Model(&models.Submission{}).
		Pluck("audio_ref", &refs).Error; err != nil {
		log.Printf("[ERROR] Blob janitor failed to list references: %v", err)
		return
	}
	referenced := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		referenced[ref] = struct{}{}
	}

	cutoff := time.Now().Add(-j.maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := referenced[entry.Name()]; ok {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(j.baseDir, entry.Name())); err != nil {
			log.Printf("[ERROR] Blob janitor failed to remove %s: %v", entry.Name(), err)
			continue
		}
		removed++
	}

	if removed > 0 {
		log.Printf("[INFO] Blob janitor removed %d orphaned file(s)", removed)
	}
}
