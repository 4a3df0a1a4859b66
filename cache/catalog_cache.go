package catalog_cache

import (
	"sync"
	"time"

	"github.com/rohit7nkuamr/westend-Corporation-sub000/models"
)

const TTL = 5 * time.Minute

// ── Catalog snapshot cache ───────────────────────────────────────────────────
// Holds the last upstream fetch of products + verticals so the query
// engine runs against local data instead of re-fetching per request.
// Fetch I/O and pure computation stay separate phases.

type snapshotEntry struct {
	products  []models.Product
	verticals []models.Vertical
	fetchedAt time.Time
}

var (
	snapMu    sync.RWMutex
	snapCache *snapshotEntry
)

func GetSnapshot() (products []models.Product, verticals []models.Vertical, ok bool) {
	snapMu.RLock()
	defer snapMu.RUnlock()
	if snapCache != nil && time.Since(snapCache.fetchedAt) < TTL {
		return snapCache.products, snapCache.verticals, true
	}
	return nil, nil, false
}

func SetSnapshot(products []models.Product, verticals []models.Vertical) {
	snapMu.Lock()
	defer snapMu.Unlock()
	snapCache = &snapshotEntry{
		products:  products,
		verticals: verticals,
		fetchedAt: time.Now(),
	}
}

// ── Invalidate (manual refresh hook) ─────────────────────────────────────────

func Invalidate() {
	snapMu.Lock()
	snapCache = nil
	snapMu.Unlock()
}
