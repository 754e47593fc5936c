package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/guonaihong/gout"

	"github.com/jhoicas/ScanInventario-api/internal/application/catalog"
	"github.com/jhoicas/ScanInventario-api/internal/application/dto"
	"github.com/jhoicas/ScanInventario-api/internal/domain"
	"github.com/jhoicas/ScanInventario-api/internal/domain/entity"
	"github.com/jhoicas/ScanInventario-api/pkg/logger"
)

// Delays latencias simuladas por operación para que la UI pueda ejercitar sus
// estados de carga, como lo haría un API remoto real.
type Delays struct {
	List   time.Duration
	Get    time.Duration
	Create time.Duration
	Update time.Duration
	Delete time.Duration
}

// DefaultDelays latencias de referencia del API simulado.
func DefaultDelays() Delays {
	return Delays{
		List:   300 * time.Millisecond,
		Get:    200 * time.Millisecond,
		Create: 500 * time.Millisecond,
		Update: 400 * time.Millisecond,
		Delete: 300 * time.Millisecond,
	}
}

// APIOptions opciones del API simulado. LatencyScale en 0 desactiva las
// latencias (tests); ProbeURL es el endpoint de la sonda de conectividad.
type APIOptions struct {
	LatencyScale float64
	ProbeURL     string
	ProbeTimeout time.Duration
}

// ProductUseCase fachada de acceso a productos: presenta el store como
// intercambios asíncronos petición/respuesta con el sobre uniforme
// {success, data?, error?, message?}. Es el único lugar donde los fallos
// crudos se convierten en sobres; nunca se propagan hacia la presentación.
type ProductUseCase struct {
	store    *catalog.Store
	validate *validator.Validate
	delays   Delays
	opts     APIOptions
	log      *logger.Logger
}

// NewProductUseCase construye la fachada.
func NewProductUseCase(store *catalog.Store, opts APIOptions, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{
		store:    store,
		validate: validator.New(),
		delays:   DefaultDelays(),
		opts:     opts,
		log:      log,
	}
}

// GetProducts devuelve el snapshot completo. Siempre exitoso: una lista vacía
// es un resultado válido. Acepta un filtro opcional de la pantalla de listado
// (nombre, código o categoría).
func (uc *ProductUseCase) GetProducts(ctx context.Context, query string) dto.Response[[]dto.ProductResponse] {
	uc.sleep(ctx, uc.delays.List)
	var list []dto.ProductResponse
	if query != "" {
		list = dto.ToProductResponses(uc.store.Filter(query))
	} else {
		list = dto.ToProductResponses(uc.store.List())
	}
	return dto.OK(list, "")
}

// GetProductByID busca un producto por id.
func (uc *ProductUseCase) GetProductByID(ctx context.Context, id string) dto.Response[*dto.ProductResponse] {
	uc.sleep(ctx, uc.delays.Get)
	p, err := uc.store.GetByID(id)
	if err != nil {
		return dto.Fail[*dto.ProductResponse](userMessage(err))
	}
	out := dto.ToProductResponse(p)
	return dto.OK(&out, "")
}

// CreateProduct valida la entrada y crea el producto. La validación se
// resuelve antes de tocar el store.
func (uc *ProductUseCase) CreateProduct(ctx context.Context, in dto.CreateProductRequest) dto.Response[*dto.ProductResponse] {
	if err := uc.validate.Struct(in); err != nil {
		uc.log.Debug().Err(err).Msg("crear producto: entrada inválida")
		return dto.Fail[*dto.ProductResponse]("Datos del producto inválidos")
	}

	p, err := uc.store.Create(catalog.CreateInput{
		Name:        in.Name,
		Code:        in.Code,
		Description: in.Description,
		Quantity:    in.Quantity,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
	})
	// La mutación ya ocurrió (o falló); la latencia solo retrasa la respuesta.
	uc.sleep(ctx, uc.delays.Create)
	if err != nil {
		uc.log.Error().Err(err).Msg("crear producto")
		return dto.Fail[*dto.ProductResponse](userMessage(err))
	}
	out := dto.ToProductResponse(p)
	return dto.Response[*dto.ProductResponse]{
		Success: true,
		Data:    &out,
		Message: "Producto agregado correctamente",
	}
}

// UpdateProduct valida y aplica una actualización parcial.
func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id string, in dto.UpdateProductRequest) dto.Response[*dto.ProductResponse] {
	if err := uc.validate.Struct(in); err != nil {
		uc.log.Debug().Err(err).Msg("actualizar producto: entrada inválida")
		return dto.Fail[*dto.ProductResponse]("Datos del producto inválidos")
	}

	p, err := uc.store.Update(id, catalog.UpdateInput{
		Name:        in.Name,
		Code:        in.Code,
		Description: in.Description,
		Quantity:    in.Quantity,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
	})
	uc.sleep(ctx, uc.delays.Update)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			uc.log.Error().Err(err).Str("id", id).Msg("actualizar producto")
		}
		return dto.Fail[*dto.ProductResponse](userMessage(err))
	}
	out := dto.ToProductResponse(p)
	return dto.Response[*dto.ProductResponse]{
		Success: true,
		Data:    &out,
		Message: "Producto actualizado",
	}
}

// DeleteProduct elimina el producto. La eliminación ya enviada se completa
// aunque quien la pidió se haya ido; solo se deja de esperar la respuesta.
func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id string) dto.Response[*dto.ProductResponse] {
	err := uc.store.Delete(id)
	uc.sleep(ctx, uc.delays.Delete)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			uc.log.Error().Err(err).Str("id", id).Msg("eliminar producto")
		}
		return dto.Fail[*dto.ProductResponse](userMessage(err))
	}
	return dto.Response[*dto.ProductResponse]{Success: true, Message: "Producto eliminado"}
}

// SearchProducts busca por nombre y código; no muta estado y no simula latencia.
func (uc *ProductUseCase) SearchProducts(ctx context.Context, query string) []dto.ProductResponse {
	return dto.ToProductResponses(uc.store.Search(query))
}

// GetStats contadores por estado para la pantalla de listado.
func (uc *ProductUseCase) GetStats() dto.StatsResponse {
	counts := uc.store.CountByStatus()
	total := 0
	for _, n := range counts {
		total += n
	}
	return dto.StatsResponse{
		Total:      total,
		InStock:    counts[entity.StatusInStock],
		LowStock:   counts[entity.StatusLowStock],
		OutOfStock: counts[entity.StatusOutOfStock],
		Pending:    counts[entity.StatusPending],
	}
}

// CheckAPIConnection sonda de conectividad: GET al endpoint configurado,
// resultado booleano. Cualquier error se degrada a false, nunca a un fallo.
func (uc *ProductUseCase) CheckAPIConnection(ctx context.Context) bool {
	if uc.opts.ProbeURL == "" {
		return false
	}
	timeout := uc.opts.ProbeTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var code int
	if err := gout.GET(uc.opts.ProbeURL).WithContext(ctx).Code(&code).Do(); err != nil {
		uc.log.Debug().Err(err).Str("url", uc.opts.ProbeURL).Msg("sonda de conectividad")
		return false
	}
	return code >= 200 && code < 300
}

// sleep espera la latencia simulada escalada; un contexto cancelado corta la
// espera. Con escala 0 no hay latencia.
func (uc *ProductUseCase) sleep(ctx context.Context, d time.Duration) {
	d = time.Duration(float64(d) * uc.opts.LatencyScale)
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// userMessage traduce errores de dominio a mensajes legibles para el usuario.
func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "Producto no encontrado"
	case errors.Is(err, domain.ErrPersistence):
		return "No se pudieron guardar los cambios"
	case errors.Is(err, domain.ErrInvalidInput):
		return "Datos del producto inválidos"
	default:
		return "Ocurrió un error inesperado"
	}
}
