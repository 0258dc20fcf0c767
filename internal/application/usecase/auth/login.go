package auth

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/record"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/auth"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// ProfileFinder looks a profile up by email, returning (nil, nil) when absent.
type ProfileFinder interface {
	GetProfileByEmail(ctx context.Context, email string) (record.Row, error)
}

type LoginUseCase struct {
	profiles ProfileFinder
	logger   logger.Logger
}

func NewLoginUseCase(profiles ProfileFinder, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		profiles: profiles,
		logger:   log,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	ProfileID string
}

var tracer = otel.Tracer("auth_usecase")

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {

	ctx, span := tracer.Start(ctx, "Execute")
	defer span.End()

	p, err := uc.profiles.GetProfileByEmail(ctx, input.Email)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if p == nil {
		err := apperror.NewNotFound("User", input.Email)
		span.RecordError(err)
		return nil, err
	}

	if !auth.CheckPassword(input.Password, p.String(profile.ColumnPassword)) {
		err := apperror.NewUnauthorized("Invalid password", "password does not match")
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.String("profile_id", p.ID()))
	return &LoginOutput{ProfileID: p.ID()}, nil
}
