package http

import (
	"mime/multipart"

	profileUC "github.com/khoahotran/portfolio-api/internal/application/usecase/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
)

// Auth DTOs

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	// Pointer so an empty string binds and only a missing field fails.
	Password *string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Success bool `json:"success"`
}

// Query DTOs

type ListQuery struct {
	ProfileID string `form:"profile_id"`
}

type OwnedListQuery struct {
	ProfileID string `form:"profile_id" binding:"required"`
}

// Asset DTOs

type UploadAssetRequest struct {
	File   *multipart.FileHeader `form:"file" binding:"required"`
	Folder string                `form:"folder" binding:"required"`
}

type UploadAssetResponse struct {
	URL string `json:"url"`
}

// ToProfileResponse renders the profile with wire names and attaches its
// collections. The password is never included.
func ToProfileResponse(agg *profileUC.ProfileAggregate) map[string]any {
	out := profile.Schema.Encode(agg.Profile)
	out[profile.KeyExperiences] = profile.ExperienceSchema.EncodeAll(agg.Experiences)
	out[profile.KeyInterests] = profile.InterestSchema.EncodeAll(agg.Interests)
	out[profile.KeyServices] = profile.ServiceSchema.EncodeAll(agg.Services)
	return out
}
