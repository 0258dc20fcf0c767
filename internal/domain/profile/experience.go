package profile

import "github.com/khoahotran/portfolio-api/internal/domain/schema"

const ExperienceTable = "experiences"

var ExperienceSchema = schema.Schema{
	Resource: "Experience",
	Table:    ExperienceTable,
	Fields: []schema.Field{
		{Wire: "role", Column: "role", Kind: schema.String, Required: true},
		{Wire: "company", Column: "company", Kind: schema.String, Required: true},
		{Wire: "period", Column: "period", Kind: schema.String, Required: true},
		{Wire: "description", Column: "description", Kind: schema.String, Required: true},
		{Wire: "profile_id", Column: "profile_id", Kind: schema.String, Required: true},
	},
}
