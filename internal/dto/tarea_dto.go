package dto

// ─── Response DTOs ───────────────────────────────────────────────────────────

// TareaResponse is one pending-action card: an order waiting on the
// requesting user's role.
type TareaResponse struct {
	OrdenID      string `json:"orden_id"`
	OrderNumber  int    `json:"orden_numero"`
	TipoLetrero  string `json:"tipo_letrero"`
	Cliente      string `json:"cliente"`
	Status       string `json:"status"`
	Accion       string `json:"accion"`
	FechaEntrega string `json:"fecha_entrega,omitempty"`
	UpdatedAt    string `json:"updated_at"`
}

type TareaListResponse struct {
	Data  []TareaResponse `json:"data"`
	Total int             `json:"total"`
}
