package dto

// ErrorResponse cuerpo de error HTTP. El cliente muestra Detail tal cual cuando viene.
type ErrorResponse struct {
	Code   string `json:"code,omitempty"`
	Detail string `json:"detail"`
}

// StatusResponse cuerpo de las operaciones que solo confirman (DELETE).
type StatusResponse struct {
	Message string `json:"message"`
}
