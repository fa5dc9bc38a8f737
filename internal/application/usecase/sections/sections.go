package sections

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/syedmaroof/portfolio-api/adapters/event"
	"github.com/syedmaroof/portfolio-api/internal/application/service"
	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

var tracer = otel.Tracer("portfolio-api/sections")

// Notifier is called after every admin mutation: it evicts the section from
// the cache right away and tells other replicas through Kafka.
type Notifier struct {
	cache     service.SectionCache
	publisher service.EventPublisher
	logger    logger.Logger
}

func NewNotifier(cache service.SectionCache, publisher service.EventPublisher, log logger.Logger) *Notifier {
	return &Notifier{cache: cache, publisher: publisher, logger: log}
}

type Change struct {
	Section       string
	Type          event.ContentEventType
	ResourceID    uuid.UUID
	ImagePublicID string
}

func (n *Notifier) Changed(ctx context.Context, change Change) {
	l := n.logger.With(
		zap.String("section", change.Section),
		zap.String("event_type", string(change.Type)),
		zap.String("resource_id", change.ResourceID.String()),
	)

	if err := n.cache.Invalidate(ctx, change.Section); err != nil {
		l.Warn("Failed to invalidate section cache", zap.Error(err))
	}

	payload := event.ContentEventPayload{
		EventType:     change.Type,
		Section:       change.Section,
		ResourceID:    change.ResourceID,
		ImagePublicID: change.ImagePublicID,
		OccurredAt:    time.Now().UTC(),
	}
	go func() {
		if err := n.publisher.PublishContentEvent(context.Background(), payload); err != nil {
			l.Error("Failed to publish content event", err)
		}
	}()
}

// Load serves a public section variant from the cache and fills it from
// load on a miss. Cache failures only cost a database read.
func Load[T any](ctx context.Context, cache service.SectionCache, log logger.Logger, section, variant string, load func(context.Context) (T, error)) (T, error) {
	ctx, span := tracer.Start(ctx, "sections.Load")
	span.SetAttributes(attribute.String("section", section), attribute.String("variant", variant))
	defer span.End()

	var cached T
	hit, err := cache.Get(ctx, section, variant, &cached)
	if err != nil {
		log.Warn("Section cache read failed", zap.String("section", section), zap.Error(err))
	}
	span.SetAttributes(attribute.Bool("cache.hit", hit))
	if hit {
		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		span.RecordError(err)
		return value, err
	}
	if err := cache.Set(ctx, section, variant, value); err != nil {
		log.Warn("Section cache write failed", zap.String("section", section), zap.Error(err))
	}
	return value, nil
}
