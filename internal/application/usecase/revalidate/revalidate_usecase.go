package revalidate

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

var tracer = otel.Tracer("revalidate_usecase")

var knownActions = []string{service.ActionCreated, service.ActionUpdated, service.ActionDeleted}

// ProcessContentEventUseCase turns one content event into a frontend
// revalidation call.
type ProcessContentEventUseCase struct {
	revalidator service.Revalidator
	logger      logger.Logger
}

func NewProcessContentEventUseCase(r service.Revalidator, log logger.Logger) *ProcessContentEventUseCase {
	return &ProcessContentEventUseCase{revalidator: r, logger: log}
}

// Decode parses a raw event. Malformed events are reported as invalid input
// so the caller can skip them instead of retrying.
func Decode(raw []byte) (service.ContentEvent, error) {
	var evt service.ContentEvent
	if err := json.Unmarshal(raw, &evt); err != nil {
		return evt, apperror.NewInvalidInput("content event is not valid JSON", err)
	}
	if evt.Resource == "" || !slices.Contains(knownActions, evt.Action) {
		return evt, apperror.NewInvalidInput(
			fmt.Sprintf("unsupported content event resource=%q action=%q", evt.Resource, evt.Action), nil)
	}
	return evt, nil
}

func (uc *ProcessContentEventUseCase) Execute(ctx context.Context, evt service.ContentEvent) error {
	ctx, span := tracer.Start(ctx, "Execute")
	defer span.End()
	span.SetAttributes(
		attribute.String("resource", evt.Resource),
		attribute.String("action", evt.Action),
		attribute.String("id", evt.ID),
	)

	if err := uc.revalidator.Revalidate(ctx, evt); err != nil {
		span.RecordError(err)
		return apperror.NewUpstream("revalidation request failed", err)
	}

	uc.logger.Info("Revalidated frontend",
		zap.String("resource", evt.Resource),
		zap.String("action", evt.Action),
		zap.String("id", evt.ID),
	)
	return nil
}
