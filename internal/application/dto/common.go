package dto

// Response sobre uniforme de todas las operaciones del API simulado:
// {success, data?, error?, message?}. La capa de presentación solo ramifica
// sobre Success; nunca recibe fallos crudos.
type Response[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK construye una respuesta exitosa.
func OK[T any](data T, message string) Response[T] {
	return Response[T]{Success: true, Data: data, Message: message}
}

// Fail construye una respuesta fallida con mensaje legible para el usuario.
func Fail[T any](errMsg string) Response[T] {
	return Response[T]{Success: false, Error: errMsg}
}
