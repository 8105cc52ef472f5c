package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"healthshare/internal/db"
)

var (
	redemptionDesc = prometheus.NewDesc(
		"healthshare_share_redemptions_total",
		"Total share link redemption count by outcome",
		[]string{"outcome"},
		nil,
	)
)

// RedemptionCollector is a custom Prometheus collector that reads redemption
// outcome counts from the database on each scrape, so counts survive restarts
// and stay consistent across replicas.
type RedemptionCollector struct {
	db *db.DB
}

// Describe sends the metric descriptor to the channel.
func (c *RedemptionCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- redemptionDesc
}

// Collect queries the database for all redemption outcomes and emits them as counters.
func (c *RedemptionCollector) Collect(ch chan<- prometheus.Metric) {
	stats, err := c.db.GetAllRedemptionStats(context.Background())
	if err != nil {
		slog.Error("failed to collect redemption metrics", "error", err)
		return
	}
	for _, s := range stats {
		ch <- prometheus.MustNewConstMetric(
			redemptionDesc,
			prometheus.CounterValue,
			float64(s.Count),
			s.Outcome,
		)
	}
}

// Recorder provides async redemption outcome recording.
type Recorder struct {
	db *db.DB
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the custom collector and initializes the recorder.
// Must be called once at startup.
func Init(database *db.DB) {
	recorderOnce.Do(func() {
		recorder = &Recorder{db: database}
		prometheus.MustRegister(&RedemptionCollector{db: database})
	})
}

// RecordRedemption asynchronously records a redemption outcome
// ("ok", "not_found", "revoked", "expired").
func RecordRedemption(outcome string) {
	if recorder == nil {
		return
	}
	go func() {
		if err := recorder.db.IncrementRedemptionStat(context.Background(), outcome); err != nil {
			slog.Error("failed to record redemption", "outcome", outcome, "error", err)
		}
	}()
}
