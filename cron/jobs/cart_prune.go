package jobs

import (
	"log"
	"strconv"
	"time"

	cartRepo "mobilia.GO/model/repository/cart"
)

const defaultCartRetentionDays = 30

// CartPruneJob deletes persisted cart lines older than the retention window.
// An optional first arg overrides the retention in days.
func CartPruneJob(args ...string) {
	days := defaultCartRetentionDays
	if len(args) > 0 {
		if v, err := strconv.Atoi(args[0]); err == nil && v > 0 {
			days = v
		}
	}

	db, err := openDB()
	if err != nil {
		log.Printf("cart prune: db: %v", err)
		return
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	removed, err := cartRepo.GetCartRepository(db).PruneOlderThan(cutoff)
	if err != nil {
		log.Printf("cart prune: %v", err)
		return
	}
	log.Printf("cart prune: removed %d stale cart items (older than %d days)", removed, days)
}
