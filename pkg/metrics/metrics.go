package metrics

import (
	"sync"

	"github.com/penglongli/gin-metrics/ginmetrics"
	"go.uber.org/zap"
)

// SanitizerTruncatedTotal counts sanitized values that had to be cut down,
// labelled by the field they came from.
const SanitizerTruncatedTotal = "sanitizer_truncated_total"

var registerOnce sync.Once

// GetMonitor returns the process-wide monitor with the application metrics
// registered. Safe to call more than once.
func GetMonitor(path string) *ginmetrics.Monitor {
	m := ginmetrics.GetMonitor()
	m.SetMetricPath(path)
	m.SetSlowTime(1)
	// request duration buckets, used for p95 / p99
	m.SetDuration([]float64{0.05, 0.1, 0.2, 0.3, 0.5, 1, 2, 5})

	register(m)
	return m
}

func register(m *ginmetrics.Monitor) {
	registerOnce.Do(func() {
		err := m.AddMetric(&ginmetrics.Metric{
			Type:        ginmetrics.Counter,
			Name:        SanitizerTruncatedTotal,
			Description: "number of sanitized values truncated to their maximum length",
			Labels:      []string{"field"},
		})
		if err != nil {
			zap.L().Warn("Failed to register metric", zap.String("metric", SanitizerTruncatedTotal), zap.Error(err))
		}
	})
}

// IncTruncated records a truncation for field, registering the metric on
// first use.
func IncTruncated(field string) {
	m := ginmetrics.GetMonitor()
	register(m)
	if err := m.GetMetric(SanitizerTruncatedTotal).Inc([]string{field}); err != nil {
		zap.L().Debug("Failed to record metric", zap.String("metric", SanitizerTruncatedTotal), zap.Error(err))
	}
}
