package bootstrap

import (
	"context"
	"log"

	"ai-legalaid-be/internal/config"
	"ai-legalaid-be/internal/controller"
	"ai-legalaid-be/internal/handler"
	"ai-legalaid-be/internal/pkg/logger"
	"ai-legalaid-be/internal/pkg/mailer"
	"ai-legalaid-be/internal/repository/unitofwork"
	"ai-legalaid-be/internal/service"
	"ai-legalaid-be/internal/websocket"
	"ai-legalaid-be/pkg/corpus"
	"ai-legalaid-be/pkg/embedding"
	"ai-legalaid-be/pkg/embedding/jina"
	"ai-legalaid-be/pkg/llm/factory"
	"ai-legalaid-be/pkg/rag/compose"
	"ai-legalaid-be/pkg/rag/history"
	"ai-legalaid-be/pkg/rag/retrieval"
	"ai-legalaid-be/pkg/rag/session"

	pktNats "ai-legalaid-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController   controller.IAuthController
	ChatController   controller.IChatController
	CorpusController controller.ICorpusController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService
	CorpusService   service.ICorpusService

	// WebSockets & notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.App.ClientURL,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else if cfg.Ai.EmbeddingProvider == "jina" {
		embeddingProvider = jina.NewJinaProvider(cfg.Keys.Jina)
		log.Printf("[INFO] Using Embedding Provider: JINA AI")
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 5. RAG pipeline
	corpusStore := corpus.NewStore()

	lexicalRetriever := retrieval.NewLexicalRetriever(corpusStore, cfg.Rag.MinScore)
	var retriever retrieval.Retriever = lexicalRetriever
	if cfg.Rag.Retriever == "vector" {
		retriever = retrieval.NewVectorRetriever(
			corpusStore,
			embeddingProvider,
			uowFactory,
			lexicalRetriever,
			cfg.Rag.MinScore,
			sysLogger,
		)
		log.Printf("[INFO] Using Retriever: VECTOR (lexical fallback)")
	} else {
		log.Printf("[INFO] Using Retriever: LEXICAL")
	}

	composer := compose.NewComposer(llmProvider, compose.Config{
		PromptBudget:    cfg.Rag.PromptBudget,
		CitationPenalty: cfg.Rag.CitationPenalty,
		GenerateTimeout: cfg.Ai.GenerateTimeout,
	}, sysLogger)

	historyLoader := history.NewLoader(uowFactory)
	sessionGuard := session.NewGuard(cfg.Rag.InFlightTTL)

	// 6. Services
	publisherService := service.NewPublisherService(cfg.Keys.EmbedTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EmbedTopic,
		uowFactory,
		embeddingProvider,
	)

	authService := service.NewAuthService(uowFactory, emailService)
	corpusService := service.NewCorpusService(uowFactory, corpusStore, publisherService)

	// A typed nil *Publisher inside the interface would dodge the service's
	// nil check, so only assign it when the connection came up.
	var exchangePublisher service.IExchangeEventPublisher
	if natsPub != nil {
		exchangePublisher = natsPub
	}

	chatService := service.NewChatService(
		uowFactory,
		corpusStore,
		retriever,
		composer,
		historyLoader,
		sessionGuard,
		exchangePublisher,
		sysLogger,
		service.ChatConfig{
			RetrievalLimit: cfg.Rag.TopK,
			HistoryWindow:  cfg.Rag.HistoryWindow,
		},
	)

	notifService := service.NewNotificationService(natsSub, wsHub)
	if natsSub != nil {
		go func() {
			if err := notifService.Start(); err != nil {
				log.Printf("[WARN] Notification service failed to start: %v", err)
			}
		}()
	}

	notifHandler := handler.NewNotificationHandler(wsHub, wsLogger)

	// 7. Controllers
	return &Container{
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
		AuthController:      controller.NewAuthController(authService),
		ChatController:      controller.NewChatController(chatService),
		CorpusController:    controller.NewCorpusController(corpusService),

		ConsumerService: consumerService,
		CorpusService:   corpusService,
	}
}
