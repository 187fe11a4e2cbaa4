package domain

// EventCategory groups accounting events for the admin UI.
type EventCategory string

const (
	CategoryGeneral    EventCategory = "GENERAL"
	CategoryTesoreria  EventCategory = "TESORERIA"
	CategoryInventario EventCategory = "INVENTARIO"
	CategoryCompras    EventCategory = "COMPRAS"
	CategoryVentas     EventCategory = "VENTAS"
)

// Event is a category of business occurrence that can generate a journal
// entry (e.g. COMPRA). Tipo is the stable string key, unique per company.
// Events are never hard-deleted, only deactivated.
type Event struct {
	EventID     string        `json:"eventID"`
	CompanyID   int64         `json:"companyID"`
	Tipo        string        `json:"tipo"`
	Nombre      string        `json:"nombre"`
	Descripcion string        `json:"descripcion"`
	Categoria   EventCategory `json:"categoria"`
	Activo      bool          `json:"activo"`
	AuditFields
}
