package dto

// ErrorResponse cuerpo de error HTTP. Details solo se informa en errores de validación.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse cuerpo de GET /.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse cuerpo de GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
