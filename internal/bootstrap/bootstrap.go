package bootstrap

import (
	"context"
	"fmt"

	"scriptvault/internal/apierrors"
	"scriptvault/internal/config"
	"scriptvault/internal/observability"
	"scriptvault/internal/store"

	analyticsHandler "scriptvault/internal/analytics/handler"
	analyticsProcessor "scriptvault/internal/analytics/processor"
	authHandler "scriptvault/internal/auth/handler"
	authProcessor "scriptvault/internal/auth/processor"
	kafkaClient "scriptvault/internal/clients/kafka"
	"scriptvault/internal/clients/objectstore"
	redisClient "scriptvault/internal/clients/redis"
	"scriptvault/internal/events"
	"scriptvault/internal/ratelimit"
	scriptsHandler "scriptvault/internal/scripts/handler"
	scriptsProcessor "scriptvault/internal/scripts/processor"
	uploadsHandler "scriptvault/internal/uploads/handler"
	uploadsProcessor "scriptvault/internal/uploads/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	ServiceStore store.Store
	PublicStore  store.Store
	Logger       *observability.Logger
	Metrics      *observability.Metrics
	RateLimiter  *ratelimit.Service

	// Handlers
	AuthHandler      authHandler.Handler
	ScriptsHandler   scriptsHandler.Handler
	UploadsHandler   uploadsHandler.Handler
	AnalyticsHandler analyticsHandler.Handler

	// Clients (for cleanup)
	KafkaProducer *kafkaClient.Producer
	RedisClient   *redisClient.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger:  logger,
		Metrics: observability.NewMetrics(),
	}
	apierrors.SetLogger(logger)

	// Service role: admin writes, dashboard reads and analytics inserts
	var err error
	deps.ServiceStore, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Read-only role: public pages
	deps.PublicStore, err = store.New(cfg.Database.PublicConnectionString(), logger)
	if err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to connect to database with public role: %w", err)
	}

	// Redis backs the distributed rate limiter; a nil client falls back to in-process limits
	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		logger.Error(ctx, "failed to connect to Redis, using in-process rate limits", err)
		deps.RedisClient = nil
	}
	deps.RateLimiter = ratelimit.NewService(deps.RedisClient, logger)

	// Script lifecycle events go to Kafka when brokers are configured
	var publisher scriptsProcessor.EventPublisher = events.NoopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		}, logger)
		publisher = events.NewPublisher(deps.KafkaProducer, logger)
	} else {
		logger.Info(ctx, "KAFKA_BROKERS not set, script events will not be published")
	}

	objects, err := objectstore.NewClient(ctx, objectstore.Config{
		Endpoint:        cfg.Storage.Endpoint,
		Region:          cfg.Storage.Region,
		Bucket:          cfg.Storage.Bucket,
		AccessKeyID:     cfg.Storage.AccessKeyID,
		SecretAccessKey: cfg.Storage.SecretAccessKey,
		PublicBaseURL:   cfg.Storage.PublicBaseURL,
	}, logger)
	if err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to create object store client: %w", err)
	}

	// Initialize auth processor and handler
	authProc := authProcessor.New(authProcessor.AuthConfig{
		Password:     cfg.Admin.Password,
		PasswordHash: cfg.Admin.PasswordHash,
	}, logger)
	deps.AuthHandler = authHandler.New(authProc, cfg.IsProduction(), logger)

	// Initialize scripts processor and handler
	scriptsProc := scriptsProcessor.New(&deps.ServiceStore, &deps.PublicStore, publisher, logger)
	deps.ScriptsHandler = scriptsHandler.New(scriptsProc, logger)

	// Initialize uploads processor and handler
	uploadsProc := uploadsProcessor.New(objects, logger)
	deps.UploadsHandler = uploadsHandler.New(uploadsProc, logger)

	// Initialize analytics processor and handler
	analyticsProc := analyticsProcessor.New(&deps.ServiceStore, cfg.Admin.IPHashSecret, deps.Metrics, logger)
	deps.AnalyticsHandler = analyticsHandler.New(analyticsProc, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close kafka producer", err)
		}
	}
	if err := d.RedisClient.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close redis client", err)
	}
	if err := d.PublicStore.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close public database connection", err)
	}
	if err := d.ServiceStore.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close database connection", err)
	}
}
