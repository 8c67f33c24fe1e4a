package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OkResponse confirmación simple (ej. DELETE exitoso).
type OkResponse struct {
	Ok bool `json:"ok"`
}
