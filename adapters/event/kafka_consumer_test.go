package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// fakeReader serves msgs in order, then cancels the run.
type fakeReader struct {
	msgs      []kafka.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

// scriptedHandler fails the first failures[id] calls for each event id.
type scriptedHandler struct {
	failures map[string]int
	calls    map[string]int
}

func (h *scriptedHandler) Execute(_ context.Context, evt service.ContentEvent) error {
	h.calls[evt.ID]++
	if h.calls[evt.ID] <= h.failures[evt.ID] {
		return errors.New("503 from frontend")
	}
	return nil
}

func newConsumer(t *testing.T, msgs []kafka.Message, failures map[string]int) (*ContentEventConsumer, *fakeReader, *scriptedHandler, context.Context) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	reader := &fakeReader{msgs: msgs, cancel: cancel}
	handler := &scriptedHandler{failures: failures, calls: map[string]int{}}
	c := NewContentEventConsumer(reader, handler, logger.NewNopLogger())
	c.MaxAttempts = 3
	c.RetryDelay = 0
	return c, reader, handler, ctx
}

func eventMessage(offset int64, id string) kafka.Message {
	return kafka.Message{
		Offset: offset,
		Key:    []byte("project"),
		Value:  []byte(`{"resource":"project","action":"updated","id":"` + id + `"}`),
	}
}

func TestContentEventConsumer_CommitsHandledAndMalformed(t *testing.T) {
	msgs := []kafka.Message{
		eventMessage(10, "p1"),
		{Offset: 11, Value: []byte(`not json`)},
		eventMessage(12, "p2"),
	}
	c, reader, handler, ctx := newConsumer(t, msgs, nil)

	require.NoError(t, c.Run(ctx))
	assert.Equal(t, []int64{10, 11, 12}, reader.committed)
	assert.Equal(t, map[string]int{"p1": 1, "p2": 1}, handler.calls)
}

func TestContentEventConsumer_RetriesFailedEventInPlace(t *testing.T) {
	msgs := []kafka.Message{eventMessage(20, "p1"), eventMessage(21, "p2")}
	c, reader, handler, ctx := newConsumer(t, msgs, map[string]int{"p1": 2})

	require.NoError(t, c.Run(ctx))
	assert.Equal(t, 3, handler.calls["p1"])
	assert.Equal(t, []int64{20, 21}, reader.committed)
}

func TestContentEventConsumer_StopsWithoutCommittingPastFailure(t *testing.T) {
	msgs := []kafka.Message{eventMessage(30, "p1"), eventMessage(31, "p2"), eventMessage(32, "p3")}
	c, reader, handler, ctx := newConsumer(t, msgs, map[string]int{"p2": 99})

	err := c.Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offset 31")

	// Nothing at or after the failed offset is committed, so the group
	// resumes from it.
	assert.Equal(t, []int64{30}, reader.committed)
	assert.Equal(t, 3, handler.calls["p2"])
	assert.Zero(t, handler.calls["p3"])
}

func TestContentEventConsumer_CancelDuringRetryLeavesEventUncommitted(t *testing.T) {
	msgs := []kafka.Message{eventMessage(40, "p1")}
	c, reader, _, ctx := newConsumer(t, msgs, map[string]int{"p1": 99})
	c.RetryDelay = time.Hour
	reader.cancel()

	require.NoError(t, c.Run(ctx))
	assert.Empty(t, reader.committed)
}
