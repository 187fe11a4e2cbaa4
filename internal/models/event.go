package models

// Event is a row of the eventos table.
type Event struct {
	EventID     string `db:"event_id"`
	CompanyID   int64  `db:"company_id"`
	Tipo        string `db:"tipo"`
	Nombre      string `db:"nombre"`
	Descripcion string `db:"descripcion"`
	Categoria   string `db:"categoria"`
	Activo      bool   `db:"activo"`
	AuditFields
}
