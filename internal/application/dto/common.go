package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo para operaciones sin entidad de respuesta (delete, logout).
type MessageResponse struct {
	Message string `json:"message"`
}
