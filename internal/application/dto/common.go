package dto

// ErrorResponse cuerpo de error HTTP. El campo Message se muestra tal cual al
// usuario cuando viene de una validación del servidor.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
