package certificate

import "github.com/khoahotran/portfolio-api/internal/domain/schema"

const (
	Table = "certificates"

	// ColumnSlug is unique and serves as the public lookup key.
	ColumnSlug = "slug"
)

var Schema = schema.Schema{
	Resource: "Certificate",
	Table:    Table,
	Fields: []schema.Field{
		{Wire: "slug", Column: ColumnSlug, Kind: schema.String, Required: true},
		{Wire: "title", Column: "title", Kind: schema.String, Required: true},
		{Wire: "issuer", Column: "issuer", Kind: schema.String, Required: true},
		{Wire: "date", Column: "certificate_date", Kind: schema.String, Required: true},
		{Wire: "image", Column: "image", Kind: schema.String, Required: true},
		{Wire: "description", Column: "description", Kind: schema.String, Required: true},
		{Wire: "credentialUrl", Column: "credential_url", Kind: schema.String, Required: true},
		{Wire: "longDescription", Column: "long_description", Kind: schema.String},
		{Wire: "skills", Column: "skills", Kind: schema.StringList, Default: []string{}},
		{Wire: "level", Column: "level", Kind: schema.String},
		{Wire: "modules", Column: "modules", Kind: schema.StringList, Default: []string{}},
		{Wire: "profile_id", Column: "profile_id", Kind: schema.String},
	},
}
