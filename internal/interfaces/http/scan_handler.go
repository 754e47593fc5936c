package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ScanInventario-api/internal/application/dto"
	"github.com/jhoicas/ScanInventario-api/internal/application/ports"
	"github.com/jhoicas/ScanInventario-api/internal/application/usecase"
)

// ScanHandler escaneo de códigos, cámara y conectividad con la API.
type ScanHandler struct {
	scanner ports.ScannerService
	product *usecase.ProductUseCase
}

// NewScanHandler construye el handler.
func NewScanHandler(scanner ports.ScannerService, product *usecase.ProductUseCase) *ScanHandler {
	return &ScanHandler{scanner: scanner, product: product}
}

// Scan godoc
// @Summary      Simular el escaneo de un código de barras o QR
// @Tags         scan
// @Accept       json
// @Produce      json
// @Success      200  {object}  ports.ScanResult
// @Failure      400  {object}  dto.Response[*ports.ScanResult]
// @Router       /api/scan [post]
func (h *ScanHandler) Scan(c *fiber.Ctx) error {
	var req dto.ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail[*ports.ScanResult](msgCuerpoInvalido))
	}
	result, err := h.scanner.Scan(c.UserContext(), req.Code)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail[*ports.ScanResult]("No se pudo completar el escaneo"))
	}
	return c.JSON(result)
}

// CameraAvailable godoc
// @Summary      Disponibilidad de la cámara en el dispositivo
// @Tags         camera
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /api/camera/available [get]
func (h *ScanHandler) CameraAvailable(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"available": h.scanner.CameraAvailable()})
}

// RequestPermission godoc
// @Summary      Solicitar permiso de cámara
// @Tags         camera
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /api/camera/permission [post]
func (h *ScanHandler) RequestPermission(c *fiber.Ctx) error {
	granted, err := h.scanner.RequestPermission(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail[*ports.CaptureResult]("No se pudo solicitar el permiso"))
	}
	return c.JSON(fiber.Map{"granted": granted})
}

// Capture godoc
// @Summary      Capturar una imagen (simulada) para un producto
// @Tags         camera
// @Accept       json
// @Produce      json
// @Success      200  {object}  ports.CaptureResult
// @Failure      400  {object}  dto.Response[*ports.CaptureResult]
// @Router       /api/camera/capture [post]
func (h *ScanHandler) Capture(c *fiber.Ctx) error {
	var req dto.CaptureRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail[*ports.CaptureResult](msgCuerpoInvalido))
	}
	result, err := h.scanner.Capture(c.UserContext(), req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail[*ports.CaptureResult]("No se pudo capturar la imagen"))
	}
	return c.JSON(result)
}

// APIStatus godoc
// @Summary      Comprobar la conexión con la API remota
// @Tags         status
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /api/status [get]
func (h *ScanHandler) APIStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"connected": h.product.CheckAPIConnection(c.UserContext())})
}
