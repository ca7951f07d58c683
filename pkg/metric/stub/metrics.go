package stub

import (
	"time"

	"github.com/taldoflemis/brain.test-gateway/pkg/metric"
)

type metrics struct{}

func NewMetrics() metric.Metrics {
	return metrics{}
}

func (m metrics) With(_ metric.Labels) metric.Metrics {
	return m
}

func (m metrics) Increment(_ string) {}

func (m metrics) Count(_ string, _ int) {}

func (m metrics) Duration(_ string, _ time.Duration) {}
