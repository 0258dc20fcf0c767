package revalidate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/application/usecase/revalidate"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type fakeRevalidator struct {
	got []service.ContentEvent
	err error
}

func (f *fakeRevalidator) Revalidate(_ context.Context, evt service.ContentEvent) error {
	f.got = append(f.got, evt)
	return f.err
}

func TestDecode(t *testing.T) {
	evt, err := revalidate.Decode([]byte(`{"resource":"project","action":"updated","id":"p1","occurred_at":"2024-05-01T10:00:00Z"}`))
	require.NoError(t, err)
	assert.Equal(t, "project", evt.Resource)
	assert.Equal(t, service.ActionUpdated, evt.Action)
	assert.Equal(t, "p1", evt.ID)
	assert.False(t, evt.OccurredAt.IsZero())

	_, err = revalidate.Decode([]byte(`not json`))
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	_, err = revalidate.Decode([]byte(`{"resource":"project","action":"renamed"}`))
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	_, err = revalidate.Decode([]byte(`{"action":"created"}`))
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestExecute(t *testing.T) {
	r := &fakeRevalidator{}
	uc := revalidate.NewProcessContentEventUseCase(r, logger.NewNopLogger())
	evt := service.ContentEvent{Resource: "certificate", Action: service.ActionCreated, ID: "c1"}

	require.NoError(t, uc.Execute(context.Background(), evt))
	assert.Equal(t, []service.ContentEvent{evt}, r.got)

	r.err = errors.New("502 from frontend")
	err := uc.Execute(context.Background(), evt)
	assert.ErrorIs(t, err, apperror.ErrUpstream)
}
