package implementation

import (
	"context"
	"errors"

	"ai-legalaid-be/internal/entity"
	"ai-legalaid-be/internal/mapper"
	"ai-legalaid-be/internal/model"
	"ai-legalaid-be/internal/repository/contract"
	"ai-legalaid-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ReferenceUnitRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CorpusMapper
}

func NewReferenceUnitRepository(db *gorm.DB) contract.ReferenceUnitRepository {
	return &ReferenceUnitRepositoryImpl{
		db:     db,
		mapper: mapper.NewCorpusMapper(),
	}
}

func (r *ReferenceUnitRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ReferenceUnitRepositoryImpl) Create(ctx context.Context, unit *entity.ReferenceUnit) error {
	m := r.mapper.ReferenceUnitToModel(unit)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*unit = *r.mapper.ReferenceUnitToEntity(m)
	return nil
}

func (r *ReferenceUnitRepositoryImpl) CreateBulk(ctx context.Context, units []*entity.ReferenceUnit) error {
	if len(units) == 0 {
		return nil
	}
	models := make([]*model.ReferenceUnit, len(units))
	for i, u := range units {
		models[i] = r.mapper.ReferenceUnitToModel(u)
	}
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*units[i] = *r.mapper.ReferenceUnitToEntity(m)
	}
	return nil
}

func (r *ReferenceUnitRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ReferenceUnit, error) {
	var m model.ReferenceUnit
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ReferenceUnitToEntity(&m), nil
}

func (r *ReferenceUnitRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ReferenceUnit, error) {
	var models []*model.ReferenceUnit
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ReferenceUnit, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ReferenceUnitToEntity(m)
	}
	return entities, nil
}

func (r *ReferenceUnitRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ReferenceUnit{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
