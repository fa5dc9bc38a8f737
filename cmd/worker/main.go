package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/syedmaroof/portfolio-api/adapters/event"
	"github.com/syedmaroof/portfolio-api/adapters/media_storage"
	"github.com/syedmaroof/portfolio-api/adapters/notification"
	"github.com/syedmaroof/portfolio-api/adapters/persistence"
	contactUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/contact"
	mediaUC "github.com/syedmaroof/portfolio-api/internal/application/usecase/media"
	"github.com/syedmaroof/portfolio-api/internal/config"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
	"github.com/syedmaroof/portfolio-api/pkg/tracing"
)

func main() {
	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	appLogger.Info("Starting Portfolio Worker...")

	tp, err := tracing.NewTracerProvider(cfg, appLogger, cfg.App.Name+"-worker")
	if err != nil {
		appLogger.Fatal("cannot init tracer", err)
	}
	defer tp.Shutdown(context.Background())

	// Database
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	// Cloudinary Uploader
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	mailer, err := notification.NewSMTPMailer(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize mailer", err)
	}

	// Repositories
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	blogRepo := persistence.NewPostgresBlogRepo(dbPool, appLogger)
	sectionCache := persistence.NewRedisSectionCache(redisClient, cfg.Cache.SectionTTL, appLogger)

	// Worker Use Cases
	processContentUC := mediaUC.NewProcessContentEventUseCase(projectRepo, blogRepo, uploader, sectionCache, appLogger)
	notifyOwnerUC := contactUC.NewNotifyOwnerUseCase(mailer, cfg.SMTP.NotifyTo, appLogger)

	// Kafka Consumers
	contentConsumer := event.NewKafkaReader(cfg, event.TopicContentEvents)
	defer contentConsumer.Close()
	contactConsumer := event.NewKafkaReader(cfg, event.TopicContactEvents)
	defer contactConsumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Worker listening", zap.String("topic", event.TopicContentEvents))
		return event.Consume(ctx, contentConsumer, appLogger, processContentUC.Execute)
	})
	g.Go(func() error {
		appLogger.Info("Worker listening", zap.String("topic", event.TopicContactEvents))
		return event.Consume(ctx, contactConsumer, appLogger, notifyOwnerUC.Execute)
	})

	if err := g.Wait(); err != nil {
		appLogger.Error("Worker stopped with error", err)
		return
	}
	appLogger.Info("Worker stopped")
}
