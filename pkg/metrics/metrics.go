package metrics

import (
	"path"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/nakabonne/tstorage"
	"go.uber.org/zap"
)

const (
	MetricAPILatency = "api_latency_ms"
	MetricMenuView   = "menu_view"
)

var storage tstorage.Storage

// InitMetrics opens the embedded time-series store under the workdir.
func InitMetrics(workdir string) error {
	var err error
	storage, err = tstorage.NewStorage(
		tstorage.WithDataPath(path.Join(workdir, "data", "metrics")),
		tstorage.WithTimestampPrecision(tstorage.Seconds),
		tstorage.WithRetention(7*24*time.Hour),
	)
	return err
}

func Close() error {
	if storage == nil {
		return nil
	}
	return storage.Close()
}

// RecordAPILatency stores one request duration sample for a route.
func RecordAPILatency(route string, ms float64) {
	insert(tstorage.Row{
		Metric:    MetricAPILatency,
		Labels:    []tstorage.Label{{Name: "route", Value: route}},
		DataPoint: tstorage.DataPoint{Timestamp: time.Now().Unix(), Value: ms},
	})
}

// RecordMenuView counts one public menu render for a view (food/drinks).
func RecordMenuView(view string) {
	insert(tstorage.Row{
		Metric:    MetricMenuView,
		Labels:    []tstorage.Label{{Name: "view", Value: view}},
		DataPoint: tstorage.DataPoint{Timestamp: time.Now().Unix(), Value: 1},
	})
}

func insert(row tstorage.Row) {
	if storage == nil {
		return
	}
	if err := storage.InsertRows([]tstorage.Row{row}); err != nil {
		zap.L().Debug("metrics insert failed", zap.Error(err))
	}
}

// Summary aggregates the samples of one series over a window.
type Summary struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	P95   float64 `json:"p95"`
	Max   float64 `json:"max"`
}

// LatencySummary computes count/mean/p95/max over the last window for a route.
func LatencySummary(route string, window time.Duration) (Summary, error) {
	return summarize(MetricAPILatency,
		[]tstorage.Label{{Name: "route", Value: route}}, window)
}

// ViewCount returns the number of menu renders for a view over the window.
func ViewCount(view string, window time.Duration) int {
	s, err := summarize(MetricMenuView,
		[]tstorage.Label{{Name: "view", Value: view}}, window)
	if err != nil {
		return 0
	}
	return s.Count
}

func summarize(metric string, labels []tstorage.Label, window time.Duration) (Summary, error) {
	if storage == nil {
		return Summary{}, nil
	}
	end := time.Now().Unix()
	start := end - int64(window.Seconds())
	points, err := storage.Select(metric, labels, start, end)
	if err != nil {
		if err == tstorage.ErrNoDataPoints {
			return Summary{}, nil
		}
		return Summary{}, err
	}

	values := make(stats.Float64Data, 0, len(points))
	for _, p := range points {
		values = append(values, p.Value)
	}
	if len(values) == 0 {
		return Summary{}, nil
	}

	mean, _ := stats.Mean(values)
	p95, _ := stats.Percentile(values, 95)
	max, _ := stats.Max(values)
	return Summary{Count: len(values), Mean: mean, P95: p95, Max: max}, nil
}
