package dto

// CreateFiscalCalendarRequest sets up twelve monthly periods for an entity year.
type CreateFiscalCalendarRequest struct {
	EntityID   string `json:"entityID" validate:"required"`
	FiscalYear int    `json:"fiscalYear" validate:"required,gte=1900,lte=9999"`
	StartMonth int    `json:"startMonth" validate:"required,gte=1,lte=12"`
}

// Validate checks the request shape.
func (r CreateFiscalCalendarRequest) Validate() error {
	return validateStruct(r)
}
