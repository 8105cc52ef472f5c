package jobs

import (
	"context"
	"log"
	"time"

	"healthshare/internal/db"
)

// Purger deletes share links long past expiry in the background. Expiry
// enforcement never depends on it; it only keeps dead snapshots from piling
// up in the database.
type Purger struct {
	db        *db.DB
	interval  time.Duration
	retention time.Duration
}

// NewPurger creates a new purger. retention is how long past expiry a link is
// kept before deletion, so owners can still see a recently expired link's
// access count.
func NewPurger(database *db.DB, interval, retention time.Duration) *Purger {
	return &Purger{db: database, interval: interval, retention: retention}
}

// Start begins the background purge loop.
func (p *Purger) Start(ctx context.Context) {
	log.Printf("Share link purger started (interval: %v, retention: %v)", p.interval, p.retention)

	// Run immediately on start
	p.purge(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Share link purger stopped")
			return
		case <-ticker.C:
			p.purge(ctx)
		}
	}
}

func (p *Purger) purge(ctx context.Context) {
	cutoff := time.Now().Add(-p.retention)
	purged, err := p.db.PurgeExpiredShareLinks(ctx, cutoff)
	if err != nil {
		log.Printf("Share link purger: purge failed: %v", err)
		return
	}
	if purged > 0 {
		log.Printf("Share link purger: removed %d expired links", purged)
	}
}
