package implementation

import (
	"context"

	"ai-legalaid-be/internal/model"
	"ai-legalaid-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnalyticsRepositoryImpl struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) contract.AnalyticsRepository {
	return &AnalyticsRepositoryImpl{db: db}
}

// IncrementMetric bumps a named counter, creating the row on first use.
func (r *AnalyticsRepositoryImpl) IncrementMetric(ctx context.Context, metricName string, delta int64) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "metric_name"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"metric_value": gorm.Expr("system_analytics.metric_value + ?", delta),
			}),
		}).
		Create(&model.SystemAnalytic{
			MetricName:  metricName,
			MetricValue: delta,
		}).Error
}

func (r *AnalyticsRepositoryImpl) GetMetric(ctx context.Context, metricName string) (int64, error) {
	var m model.SystemAnalytic
	err := r.db.WithContext(ctx).
		Where("metric_name = ?", metricName).
		First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, err
	}
	return m.MetricValue, nil
}

func (r *AnalyticsRepositoryImpl) GetAllMetrics(ctx context.Context) (map[string]int64, error) {
	var models []model.SystemAnalytic
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	metrics := make(map[string]int64, len(models))
	for _, m := range models {
		metrics[m.MetricName] = m.MetricValue
	}
	return metrics, nil
}
