package metrics

import (
	"testing"

	"github.com/penglongli/gin-metrics/ginmetrics"
	"github.com/stretchr/testify/assert"
)

func TestGetMonitorRegistersOnce(t *testing.T) {
	m := GetMonitor("/metrics")
	assert.Same(t, m, GetMonitor("/metrics"))

	metric := m.GetMetric(SanitizerTruncatedTotal)
	assert.Equal(t, ginmetrics.Counter, metric.Type)
	assert.NotPanics(t, func() { IncTruncated("name") })
}
