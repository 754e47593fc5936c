package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ScanInventario-api/internal/application/dto"
	"github.com/jhoicas/ScanInventario-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para productos. Todas las
// respuestas llevan el sobre {success, data?, error?, message?}.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Param        q  query  string  false  "Filtro por nombre, código o categoría"
// @Success      200  {object}  dto.Response[[]dto.ProductResponse]
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	resp := h.uc.GetProducts(c.UserContext(), c.Query("q"))
	return c.JSON(resp)
}

// Search godoc
// @Summary      Buscar productos por nombre o código
// @Tags         products
// @Produce      json
// @Param        q  query  string  true  "Subcadena a buscar"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products/search [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	return c.JSON(h.uc.SearchProducts(c.UserContext(), c.Query("q")))
}

// Stats godoc
// @Summary      Contadores por estado
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/products/stats [get]
func (h *ProductHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetStats())
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Response[*dto.ProductResponse]
// @Failure      404  {object}  dto.Response[*dto.ProductResponse]
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	resp := h.uc.GetProductByID(c.UserContext(), c.Params("id"))
	return c.Status(statusFor(resp)).JSON(resp)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.Response[*dto.ProductResponse]
// @Failure      400   {object}  dto.Response[*dto.ProductResponse]
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail[*dto.ProductResponse](msgCuerpoInvalido))
	}
	resp := h.uc.CreateProduct(c.UserContext(), in)
	if !resp.Success {
		return c.Status(statusFor(resp)).JSON(resp)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Update godoc
// @Summary      Actualizar producto (parcial)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Response[*dto.ProductResponse]
// @Failure      404   {object}  dto.Response[*dto.ProductResponse]
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail[*dto.ProductResponse](msgCuerpoInvalido))
	}
	resp := h.uc.UpdateProduct(c.UserContext(), c.Params("id"), in)
	return c.Status(statusFor(resp)).JSON(resp)
}

// Delete godoc
// @Summary      Eliminar producto (requiere confirmación explícita)
// @Tags         products
// @Produce      json
// @Param        id       path   string  true  "ID del producto"
// @Param        confirm  query  string  true  "Debe ser true"
// @Success      200  {object}  dto.Response[*dto.ProductResponse]
// @Failure      400  {object}  dto.Response[*dto.ProductResponse]
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if !confirmed(c) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail[*dto.ProductResponse](msgConfirmacion))
	}
	resp := h.uc.DeleteProduct(c.UserContext(), c.Params("id"))
	return c.Status(statusFor(resp)).JSON(resp)
}
