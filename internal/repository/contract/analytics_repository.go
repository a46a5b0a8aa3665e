package contract

import "context"

type AnalyticsRepository interface {
	IncrementMetric(ctx context.Context, metricName string, delta int64) error
	GetMetric(ctx context.Context, metricName string) (int64, error)
	GetAllMetrics(ctx context.Context) (map[string]int64, error)
}
