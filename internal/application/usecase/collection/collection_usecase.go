package collection

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/record"
	"github.com/khoahotran/portfolio-api/internal/domain/schema"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

var tracer = otel.Tracer("collection_usecase")

// CollectionUseCase is the pass-through CRUD shared by projects, certificates,
// experiences, interests and services. Every call is one store query.
type CollectionUseCase struct {
	client record.Client
	schema schema.Schema
	events service.EventPublisher
	logger logger.Logger
}

func NewCollectionUseCase(client record.Client, s schema.Schema, events service.EventPublisher, log logger.Logger) *CollectionUseCase {
	return &CollectionUseCase{client: client, schema: s, events: events, logger: log}
}

func (uc *CollectionUseCase) Schema() schema.Schema {
	return uc.schema
}

type ListInput struct {
	// ProfileID narrows the list to one owner when set.
	ProfileID string
}

func (uc *CollectionUseCase) List(ctx context.Context, input ListInput) ([]record.Row, error) {
	ctx, span := uc.start(ctx, "List")
	defer span.End()

	q := record.All()
	if input.ProfileID != "" {
		q = record.Where(record.ColumnProfileID, input.ProfileID)
		span.SetAttributes(attribute.String("profile_id", input.ProfileID))
	}

	rows, err := uc.client.Select(ctx, uc.schema.Table, q)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list %s failed: %w", uc.schema.Table, err)
	}
	return rows, nil
}

// Create validates payload, fills defaults and inserts it.
func (uc *CollectionUseCase) Create(ctx context.Context, payload map[string]any) ([]record.Row, error) {
	ctx, span := uc.start(ctx, "Create")
	defer span.End()

	row, err := uc.schema.Decode(payload, schema.ModeCreate)
	if err != nil {
		return nil, err
	}

	inserted, err := uc.client.Insert(ctx, uc.schema.Table, row)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("create %s failed: %w", uc.resource(), err)
	}

	for _, r := range inserted {
		uc.notify(service.ActionCreated, r.ID())
	}
	return inserted, nil
}

// Update applies only the fields present in payload.
func (uc *CollectionUseCase) Update(ctx context.Context, id string, payload map[string]any) (record.Row, error) {
	ctx, span := uc.start(ctx, "Update")
	defer span.End()
	span.SetAttributes(attribute.String("id", id))

	row, err := uc.schema.Decode(payload, schema.ModeUpdate)
	if err != nil {
		return nil, err
	}

	updated, err := uc.client.Update(ctx, uc.schema.Table, id, row)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("update %s failed: %w", uc.resource(), err)
	}
	if len(updated) == 0 {
		return nil, apperror.NewNotFound(uc.schema.Resource, id)
	}

	uc.notify(service.ActionUpdated, id)
	return updated[0], nil
}

// Delete never fails on a missing id; the result is simply empty.
func (uc *CollectionUseCase) Delete(ctx context.Context, id string) ([]record.Row, error) {
	ctx, span := uc.start(ctx, "Delete")
	defer span.End()
	span.SetAttributes(attribute.String("id", id))

	deleted, err := uc.client.Delete(ctx, uc.schema.Table, id)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("delete %s failed: %w", uc.resource(), err)
	}

	for _, r := range deleted {
		uc.notify(service.ActionDeleted, r.ID())
	}
	return deleted, nil
}

// FindBy returns the first row whose column equals value.
func (uc *CollectionUseCase) FindBy(ctx context.Context, column, value string) (record.Row, error) {
	ctx, span := uc.start(ctx, "FindBy")
	defer span.End()
	span.SetAttributes(attribute.String(column, value))

	rows, err := uc.client.Select(ctx, uc.schema.Table, record.Where(column, value).First())
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("find %s by %s failed: %w", uc.resource(), column, err)
	}
	if len(rows) == 0 {
		return nil, apperror.NewNotFound(uc.schema.Resource, value)
	}
	return rows[0], nil
}

func (uc *CollectionUseCase) start(ctx context.Context, op string) (context.Context, trace.Span) {
	ctx, span := tracer.Start(ctx, uc.schema.Resource+"."+op)
	span.SetAttributes(attribute.String("table", uc.schema.Table))
	return ctx, span
}

func (uc *CollectionUseCase) resource() string {
	return strings.ToLower(uc.schema.Resource)
}

func (uc *CollectionUseCase) notify(action, id string) {
	service.PublishAsync(uc.events, uc.logger, service.ContentEvent{
		Resource: uc.resource(),
		Action:   action,
		ID:       id,
	})
}
