package metric

import "time"

type (
	Metrics interface {
		With(Labels) Metrics
		Increment(key string)
		Count(key string, count int)
		Duration(key string, duration time.Duration)
	}

	Labels map[string]any
)
