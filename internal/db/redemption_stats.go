package db

import (
	"context"
	"time"
)

// RedemptionStat is one redemption outcome counter row, exported to
// prometheus by the metrics collector.
type RedemptionStat struct {
	Outcome    string
	Count      int64
	LastSeenAt time.Time
}

// IncrementRedemptionStat upserts the counter for a redemption outcome.
func (d *DB) IncrementRedemptionStat(ctx context.Context, outcome string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO redemption_stats (outcome, count, last_seen_at)
		VALUES ($1, 1, NOW())
		ON CONFLICT (outcome) DO UPDATE
		SET count = redemption_stats.count + 1, last_seen_at = NOW()
	`, outcome)
	return err
}

// GetAllRedemptionStats returns all outcome counters for metrics export.
func (d *DB) GetAllRedemptionStats(ctx context.Context) ([]RedemptionStat, error) {
	rows, err := d.Pool.Query(ctx,
		`SELECT outcome, count, last_seen_at FROM redemption_stats`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []RedemptionStat
	for rows.Next() {
		var s RedemptionStat
		if err := rows.Scan(&s.Outcome, &s.Count, &s.LastSeenAt); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
