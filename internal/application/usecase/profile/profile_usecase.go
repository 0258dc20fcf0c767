package profile

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/record"
	"github.com/khoahotran/portfolio-api/internal/domain/schema"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/auth"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

var tracer = otel.Tracer("profile_usecase")

type ProfileUseCase struct {
	client record.Client
	events service.EventPublisher
	logger logger.Logger
}

func NewProfileUseCase(client record.Client, events service.EventPublisher, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{client: client, events: events, logger: log}
}

// ProfileAggregate is the owner profile with its dependent collections.
type ProfileAggregate struct {
	Profile     record.Row
	Experiences []record.Row
	Interests   []record.Row
	Services    []record.Row
}

// GetProfile loads the first profile and fans out to its experiences,
// interests and services. A failed dependent fetch is logged and leaves that
// collection empty.
func (uc *ProfileUseCase) GetProfile(ctx context.Context) (*ProfileAggregate, error) {
	ctx, span := tracer.Start(ctx, "GetProfile")
	defer span.End()

	rows, err := uc.client.Select(ctx, profile.Table, record.All().First())
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("get profile failed: %w", err)
	}
	if len(rows) == 0 {
		return nil, apperror.NewNotFound(profile.Schema.Resource, "first")
	}

	agg := &ProfileAggregate{Profile: rows[0]}
	profileID := agg.Profile.ID()
	span.SetAttributes(attribute.String("profile_id", profileID))

	g, gctx := errgroup.WithContext(ctx)
	for _, dep := range []struct {
		table string
		dst   *[]record.Row
	}{
		{profile.ExperienceTable, &agg.Experiences},
		{profile.InterestTable, &agg.Interests},
		{profile.ServiceTable, &agg.Services},
	} {
		g.Go(func() error {
			*dep.dst = uc.fetchDependent(gctx, dep.table, profileID)
			return nil
		})
	}
	_ = g.Wait()

	return agg, nil
}

func (uc *ProfileUseCase) fetchDependent(ctx context.Context, table, profileID string) []record.Row {
	rows, err := uc.client.Select(ctx, table, record.Where(record.ColumnProfileID, profileID))
	if err != nil {
		uc.logger.Warn("Failed to fetch profile collection, returning empty",
			zap.String("table", table),
			zap.String("profile_id", profileID),
			zap.Error(err),
		)
		return []record.Row{}
	}
	if rows == nil {
		return []record.Row{}
	}
	return rows
}

// GetProfileByEmail returns (nil, nil) when no profile has that email.
func (uc *ProfileUseCase) GetProfileByEmail(ctx context.Context, email string) (record.Row, error) {
	ctx, span := tracer.Start(ctx, "GetProfileByEmail")
	defer span.End()

	rows, err := uc.client.Select(ctx, profile.Table, record.Where(profile.ColumnEmail, email).First())
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("find profile by email failed: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (uc *ProfileUseCase) CreateProfile(ctx context.Context, payload map[string]any) (record.Row, error) {
	ctx, span := tracer.Start(ctx, "CreateProfile")
	defer span.End()

	row, err := profile.Schema.Decode(payload, schema.ModeCreate)
	if err != nil {
		return nil, err
	}

	if email := row.String(profile.ColumnEmail); email != "" {
		existing, err := uc.GetProfileByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflict("Email already registered", profile.Schema.Resource, "email", email)
		}
	}

	if err := hashPassword(row, schema.ModeCreate); err != nil {
		return nil, err
	}

	inserted, err := uc.client.Insert(ctx, profile.Table, row)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("create profile failed: %w", err)
	}
	if len(inserted) == 0 {
		return nil, apperror.NewInternal("insert returned no profile row", nil)
	}

	created := inserted[0]
	uc.notify(service.ActionCreated, created.ID())
	return created, nil
}

// UpdateProfile applies only the present fields. A blank password is ignored.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, id string, payload map[string]any) (record.Row, error) {
	ctx, span := tracer.Start(ctx, "UpdateProfile")
	defer span.End()
	span.SetAttributes(attribute.String("profile_id", id))

	row, err := profile.Schema.Decode(payload, schema.ModeUpdate)
	if err != nil {
		return nil, err
	}
	if err := hashPassword(row, schema.ModeUpdate); err != nil {
		return nil, err
	}

	updated, err := uc.client.Update(ctx, profile.Table, id, row)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("update profile failed: %w", err)
	}
	if len(updated) == 0 {
		return nil, apperror.NewNotFound(profile.Schema.Resource, id)
	}

	uc.notify(service.ActionUpdated, id)
	return updated[0], nil
}

// hashPassword replaces a cleartext password in row with its bcrypt hash.
// On create a blank password is stored as null; on update it is dropped.
func hashPassword(row record.Row, mode schema.Mode) error {
	raw, present := row[profile.ColumnPassword]
	if !present {
		return nil
	}
	password, _ := raw.(string)
	if strings.TrimSpace(password) == "" {
		if mode == schema.ModeUpdate {
			delete(row, profile.ColumnPassword)
		} else {
			row[profile.ColumnPassword] = nil
		}
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return apperror.NewInternal("failed to hash password", err)
	}
	row[profile.ColumnPassword] = hash
	return nil
}

func (uc *ProfileUseCase) notify(action, id string) {
	service.PublishAsync(uc.events, uc.logger, service.ContentEvent{
		Resource: strings.ToLower(profile.Schema.Resource),
		Action:   action,
		ID:       id,
	})
}
