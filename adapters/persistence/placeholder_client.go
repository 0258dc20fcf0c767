package persistence

import (
	"context"
	"errors"

	"github.com/khoahotran/portfolio-api/internal/domain/record"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

var ErrStoreNotConfigured = errors.New("record store credentials are not configured")

// placeholderRecordClient stands in for the store in development when no
// credentials are configured. The server boots, but every store call fails.
type placeholderRecordClient struct{}

func NewPlaceholderRecordClient() record.Client {
	return placeholderRecordClient{}
}

func (placeholderRecordClient) fail(op string) error {
	return apperror.NewUpstream(op, ErrStoreNotConfigured)
}

func (p placeholderRecordClient) Select(context.Context, string, record.Query) ([]record.Row, error) {
	return nil, p.fail("select")
}

func (p placeholderRecordClient) Insert(context.Context, string, record.Row) ([]record.Row, error) {
	return nil, p.fail("insert")
}

func (p placeholderRecordClient) Update(context.Context, string, string, record.Row) ([]record.Row, error) {
	return nil, p.fail("update")
}

func (p placeholderRecordClient) Delete(context.Context, string, string) ([]record.Row, error) {
	return nil, p.fail("delete")
}
