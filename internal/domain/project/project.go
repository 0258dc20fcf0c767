package project

import "github.com/khoahotran/portfolio-api/internal/domain/schema"

const (
	Table = "projects"

	StatusCompleted = "completed"
)

var Schema = schema.Schema{
	Resource: "Project",
	Table:    Table,
	Fields: []schema.Field{
		{Wire: "title", Column: "title", Kind: schema.String, Required: true},
		{Wire: "description", Column: "description", Kind: schema.String, Required: true},
		{Wire: "longDescription", Column: "long_description", Kind: schema.String},
		{Wire: "image", Column: "image", Kind: schema.String, Required: true},
		{Wire: "category", Column: "category", Kind: schema.String, Required: true},
		{Wire: "tags", Column: "tags", Kind: schema.StringList, Default: []string{}},
		{Wire: "profile_id", Column: "profile_id", Kind: schema.String},
		{Wire: "githubUrl", Column: "github_url", Kind: schema.String},
		{Wire: "liveUrl", Column: "live_url", Kind: schema.String},
		{Wire: "status", Column: "status", Kind: schema.String, Default: StatusCompleted},
		{Wire: "date", Column: "project_date", Kind: schema.String},
		{Wire: "duration", Column: "duration", Kind: schema.String},
		{Wire: "client", Column: "client", Kind: schema.String},
		{Wire: "features", Column: "features", Kind: schema.StringList, Default: []string{}},
		{Wire: "technologies", Column: "technologies", Kind: schema.Object, Default: map[string]any{}},
		{Wire: "metrics", Column: "metrics", Kind: schema.Object, Default: map[string]any{}},
		{Wire: "featured", Column: "featured", Kind: schema.Bool, Default: false},
	},
}
