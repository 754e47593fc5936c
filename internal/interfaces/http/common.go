package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ScanInventario-api/internal/application/dto"
)

// Mensajes de error propios de la capa HTTP.
const (
	msgCuerpoInvalido = "Cuerpo de la petición inválido"
	msgConfirmacion   = "Operación destructiva: repite la petición con confirm=true"
)

// confirmed las operaciones destructivas exigen confirmación explícita
// (el equivalente del diálogo de confirmación de la app móvil).
func confirmed(c *fiber.Ctx) bool {
	return c.Query("confirm") == "true"
}

// statusFor deduce el código HTTP a partir del sobre: el sobre es el contrato
// hacia la presentación y el código solo lo acompaña.
func statusFor[T any](resp dto.Response[T]) int {
	if resp.Success {
		return fiber.StatusOK
	}
	switch resp.Error {
	case "Producto no encontrado":
		return fiber.StatusNotFound
	case "Datos del producto inválidos", msgCuerpoInvalido, msgConfirmacion:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
