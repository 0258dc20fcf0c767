package profile

import "github.com/khoahotran/portfolio-api/internal/domain/schema"

const InterestTable = "interests"

var InterestSchema = schema.Schema{
	Resource: "Interest",
	Table:    InterestTable,
	Fields:   cardFields(),
}

// cardFields is the icon card layout shared by interests and services.
func cardFields() []schema.Field {
	return []schema.Field{
		{Wire: "title", Column: "title", Kind: schema.String, Required: true},
		{Wire: "description", Column: "description", Kind: schema.String, Required: true},
		{Wire: "icon", Column: "icon", Kind: schema.String, Required: true},
		{Wire: "profile_id", Column: "profile_id", Kind: schema.String, Required: true},
	}
}
