package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syedmaroof/portfolio-api/pkg/logger"
)

// fakeReader serves queued messages, then blocks until the context ends.
type fakeReader struct {
	queue     []kafka.Message
	committed []int64
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(f.queue) == 0 {
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	msg := f.queue[0]
	f.queue = f.queue[1:]
	return msg, nil
}

func (f *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	for _, m := range msgs {
		f.committed = append(f.committed, m.Offset)
	}
	return nil
}

func contentMessage(t *testing.T, offset int64, p ContentEventPayload) kafka.Message {
	v, err := json.Marshal(p)
	require.NoError(t, err)
	return kafka.Message{Topic: TopicContentEvents, Offset: offset, Value: v}
}

func TestConsume_CommitsHandledAndPoisonMessages(t *testing.T) {
	okID, failID := uuid.New(), uuid.New()
	reader := &fakeReader{queue: []kafka.Message{
		contentMessage(t, 1, ContentEventPayload{EventType: ContentEventCreated, ResourceID: okID}),
		{Topic: TopicContentEvents, Offset: 2, Value: []byte("{not json")},
		contentMessage(t, 3, ContentEventPayload{EventType: ContentEventDeleted, ResourceID: failID}),
	}}

	ctx, cancel := context.WithCancel(context.Background())
	var handled []uuid.UUID
	handle := func(_ context.Context, p ContentEventPayload) error {
		handled = append(handled, p.ResourceID)
		if p.ResourceID == failID {
			cancel()
			return errors.New("storage down")
		}
		return nil
	}

	err := Consume(ctx, reader, logger.NewNopLogger(), handle)

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{okID, failID}, handled)
	assert.Equal(t, []int64{1, 2}, reader.committed)
}

func TestConsume_RetriesFailedMessageBeforeMovingOn(t *testing.T) {
	prev := retryBackoff
	retryBackoff = time.Millisecond
	t.Cleanup(func() { retryBackoff = prev })

	flakyID, nextID := uuid.New(), uuid.New()
	reader := &fakeReader{queue: []kafka.Message{
		contentMessage(t, 1, ContentEventPayload{EventType: ContentEventDeleted, ResourceID: flakyID}),
		contentMessage(t, 2, ContentEventPayload{EventType: ContentEventCreated, ResourceID: nextID}),
	}}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var handled []uuid.UUID
	failures := 2
	handle := func(_ context.Context, p ContentEventPayload) error {
		handled = append(handled, p.ResourceID)
		if p.ResourceID == flakyID && failures > 0 {
			failures--
			return errors.New("smtp unavailable")
		}
		if p.ResourceID == nextID {
			cancel()
		}
		return nil
	}

	err := Consume(ctx, reader, logger.NewNopLogger(), handle)

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{flakyID, flakyID, flakyID, nextID}, handled)
	assert.Equal(t, []int64{1, 2}, reader.committed)
}

func TestConsume_StopsRetryingWhenContextEnds(t *testing.T) {
	failID := uuid.New()
	reader := &fakeReader{queue: []kafka.Message{
		contentMessage(t, 1, ContentEventPayload{EventType: ContentEventDeleted, ResourceID: failID}),
		contentMessage(t, 2, ContentEventPayload{EventType: ContentEventCreated, ResourceID: uuid.New()}),
	}}

	ctx, cancel := context.WithCancel(context.Background())
	handle := func(context.Context, ContentEventPayload) error {
		cancel()
		return errors.New("storage down")
	}

	require.NoError(t, Consume(ctx, reader, logger.NewNopLogger(), handle))
	assert.Empty(t, reader.committed)
	assert.Len(t, reader.queue, 1)
}
