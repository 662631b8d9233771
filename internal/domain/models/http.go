package models

// Requests for the table store HTTP endpoints. Defined in domain for consistency and reuse.

type TableRequest struct {
	Name  string `param:"name" json:"name" validate:"required"`
	Limit int    `query:"limit" json:"limit" validate:"gte=0,lte=1000000"` // 0 renders every row
}

type CountsRequest struct {
	Refresh bool `query:"refresh" json:"refresh"` // true bypasses the response cache
}

type SummaryRequest struct {
	Name    string `param:"name" json:"name" validate:"required"`
	FromDay int64  `query:"from_day" json:"from_day" default:"13" validate:"gte=0"`
	ToDay   int64  `query:"to_day" json:"to_day" default:"268" validate:"gtefield=FromDay"`
}
