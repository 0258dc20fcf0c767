package profile

import "github.com/khoahotran/portfolio-api/internal/domain/schema"

const (
	Table = "profiles"

	ColumnEmail    = "email"
	ColumnPassword = "password"

	// Keys of the dependent collections attached to an aggregated profile.
	KeyExperiences = "experiences"
	KeyInterests   = "interests"
	KeyServices    = "services"
)

// Schema is the single-tenant owner identity. The password is write-only.
var Schema = schema.Schema{
	Resource: "Profile",
	Table:    Table,
	Fields: []schema.Field{
		{Wire: "name", Column: "name", Kind: schema.String, Required: true},
		{Wire: "role", Column: "role", Kind: schema.String},
		{Wire: "tagline", Column: "tagline", Kind: schema.String},
		{Wire: "bio", Column: "bio", Kind: schema.String},
		{Wire: "email", Column: ColumnEmail, Kind: schema.String},
		{Wire: "mobile_number", Column: "mobile_number", Kind: schema.String},
		{Wire: "location", Column: "location", Kind: schema.String},
		{Wire: "availability", Column: "availability", Kind: schema.String},
		{Wire: "github_url", Column: "github_url", Kind: schema.String},
		{Wire: "linkedin_url", Column: "linkedin_url", Kind: schema.String},
		{Wire: "instagram_url", Column: "instagram_url", Kind: schema.String},
		{Wire: "twitter_url", Column: "twitter_url", Kind: schema.String},
		{Wire: "skills", Column: "skills", Kind: schema.StringList, Default: []string{}},
		{Wire: "about_text", Column: "about_text", Kind: schema.String},
		{Wire: "image_url", Column: "image_url", Kind: schema.String},
		{Wire: "resume_url", Column: "resume_url", Kind: schema.String},
		{Wire: "password", Column: ColumnPassword, Kind: schema.String, WriteOnly: true},
	},
}
