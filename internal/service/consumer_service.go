package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"ai-legalaid-be/internal/dto"
	"ai-legalaid-be/internal/entity"
	"ai-legalaid-be/internal/repository/specification"
	"ai-legalaid-be/internal/repository/unitofwork"
	"ai-legalaid-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedUnitMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	unit, err := uow.ReferenceUnitRepository().FindOne(ctx, specification.ByID{ID: payload.ReferenceUnitId})
	if err != nil {
		log.Printf("[ERROR] Failed to get reference unit %s: %v", payload.ReferenceUnitId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if unit == nil {
		log.Printf("[ERROR] Reference unit not found: %s", payload.ReferenceUnitId)
		msg.Ack() // Unit removed from corpus? Ack.
		return
	}

	// Reference units are short (a section or an article) so a single
	// embedding per unit suffices, no chunking.
	content := fmt.Sprintf("%s\n%s %s\n\n%s", unit.Title, unit.SourceLabel, unit.SectionLabel, unit.Body)

	res, err := cs.embeddingProvider.Generate(content, embedding.TaskTypeDocument)
	if err != nil {
		log.Printf("[ERROR] Failed to generate embedding for unit %s: %v", payload.ReferenceUnitId, err)
		msg.Nack()
		return
	}

	unitEmbedding := &entity.UnitEmbedding{
		Id:              uuid.New(),
		ReferenceUnitId: unit.Id,
		EmbeddingValue:  res.Embedding.Values,
		CreatedAt:       time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if err := uow.UnitEmbeddingRepository().Upsert(ctx, unitEmbedding); err != nil {
		log.Printf("[ERROR] Failed to upsert embedding for unit %s: %v", payload.ReferenceUnitId, err)
		msg.Nack()
		return
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit transaction: %v", err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Embedded reference unit %s", payload.ReferenceUnitId)
	msg.Ack()
}
