package service

import (
	"context"
	"encoding/json"
	"log"

	"ai-legalaid-be/internal/dto"
	"ai-legalaid-be/internal/entity"
	"ai-legalaid-be/internal/pkg/apperror"
	"ai-legalaid-be/internal/repository/specification"
	"ai-legalaid-be/internal/repository/unitofwork"
	"ai-legalaid-be/pkg/corpus"
)

type ICorpusService interface {
	// LoadCorpus fills the in-memory store from the database, falling back
	// to the bundled sample corpus when the table is empty. Called once at
	// startup; queries are rejected with NotReady until it succeeds.
	LoadCorpus(ctx context.Context) error
	ListUnits(ctx context.Context, category string) ([]*dto.ReferenceUnitResponse, error)
	Health(ctx context.Context) *dto.HealthResponse
}

type corpusService struct {
	uowFactory       unitofwork.RepositoryFactory
	store            *corpus.Store
	publisherService IPublisherService
}

func NewCorpusService(
	uowFactory unitofwork.RepositoryFactory,
	store *corpus.Store,
	publisherService IPublisherService,
) ICorpusService {
	return &corpusService{
		uowFactory:       uowFactory,
		store:            store,
		publisherService: publisherService,
	}
}

func (s *corpusService) LoadCorpus(ctx context.Context) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	units, err := uow.ReferenceUnitRepository().FindAll(ctx, specification.OrderBy{Field: "created_at"})
	if err != nil {
		return apperror.StorageUnavailable(err)
	}

	if len(units) == 0 {
		units = corpus.SampleUnits()
		log.Printf("[INFO] Reference unit table empty, seeding %d bundled units", len(units))

		if err := uow.Begin(ctx); err != nil {
			return apperror.StorageUnavailable(err)
		}
		defer uow.Rollback()

		if err := uow.ReferenceUnitRepository().CreateBulk(ctx, units); err != nil {
			return apperror.StorageUnavailable(err)
		}
		if err := uow.Commit(); err != nil {
			return apperror.StorageUnavailable(err)
		}
	}

	if err := s.store.Load(units); err != nil {
		return err
	}

	// Queue embedding jobs for the vector retriever. Fire and forget; the
	// lexical retriever covers queries until vectors exist.
	for _, unit := range units {
		payload, err := json.Marshal(dto.PublishEmbedUnitMessage{ReferenceUnitId: unit.Id})
		if err != nil {
			continue
		}
		if err := s.publisherService.Publish(ctx, payload); err != nil {
			log.Printf("[WARN] Failed to queue embedding for unit %s: %v", unit.Id, err)
		}
	}

	log.Printf("[INFO] Corpus loaded: %d reference units", s.store.Count())
	return nil
}

func (s *corpusService) ListUnits(ctx context.Context, category string) ([]*dto.ReferenceUnitResponse, error) {
	if !s.store.Ready() {
		return nil, apperror.NotReady("corpus not loaded")
	}

	responses := make([]*dto.ReferenceUnitResponse, 0)
	for _, unit := range s.store.All() {
		if category != "" && unit.Category != category {
			continue
		}
		responses = append(responses, toReferenceUnitResponse(unit))
	}
	return responses, nil
}

func (s *corpusService) Health(ctx context.Context) *dto.HealthResponse {
	status := "ok"
	if !s.store.Ready() {
		status = "starting"
	}
	return &dto.HealthResponse{
		Status:      status,
		CorpusReady: s.store.Ready(),
		CorpusUnits: s.store.Count(),
	}
}

func toReferenceUnitResponse(unit *entity.ReferenceUnit) *dto.ReferenceUnitResponse {
	return &dto.ReferenceUnitResponse{
		Id:           unit.Id,
		Title:        unit.Title,
		SourceLabel:  unit.SourceLabel,
		SectionLabel: unit.SectionLabel,
		Category:     unit.Category,
		URL:          unit.URL,
	}
}
