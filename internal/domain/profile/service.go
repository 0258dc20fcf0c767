package profile

import "github.com/khoahotran/portfolio-api/internal/domain/schema"

const ServiceTable = "services"

// ServiceSchema describes the services offered on the portfolio, not an
// application service.
var ServiceSchema = schema.Schema{
	Resource: "Service",
	Table:    ServiceTable,
	Fields:   cardFields(),
}
