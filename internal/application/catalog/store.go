package catalog

import (
	"strings"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/oklog/ulid/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/search"

	"github.com/jhoicas/ScanInventario-api/internal/application/storage"
	"github.com/jhoicas/ScanInventario-api/internal/domain"
	"github.com/jhoicas/ScanInventario-api/internal/domain/entity"
	"github.com/jhoicas/ScanInventario-api/pkg/logger"
)

// topicProductsChanged tópico del bus por el que se publica cada snapshot nuevo.
const topicProductsChanged = "catalog.products.changed"

// CreateInput campos para crear un producto. El id, las fechas y el estado los asigna el store.
type CreateInput struct {
	Name        string
	Code        string
	Description string
	Quantity    int
	Category    string
	ImageURL    string
}

// UpdateInput actualización parcial: los campos nil no se tocan.
// No existe campo de estado: el estado solo cambia por la regla de derivación
// cuando Quantity viene definido.
type UpdateInput struct {
	Name        *string
	Code        *string
	Description *string
	Quantity    *int
	Category    *string
	ImageURL    *string
}

// Store dueño exclusivo de la colección de productos en memoria.
// Toda mutación construye la colección siguiente, la persiste completa y solo
// entonces la adopta y publica el snapshot; un fallo de escritura deja el
// estado anterior intacto. Los lectores y suscriptores reciben siempre copias.
type Store struct {
	mu       sync.RWMutex
	products []entity.Product

	storage *storage.Service
	bus     EventBus.Bus
	log     *logger.Logger
}

// NewStore construye el store. Llamar Init antes de usarlo.
func NewStore(st *storage.Service, log *logger.Logger) *Store {
	return &Store{
		storage: st,
		bus:     EventBus.New(),
		log:     log,
	}
}

// Init carga la colección persistida; si está ausente o vacía siembra los
// productos de demostración y los persiste de inmediato, de modo que el store
// nunca se observa vacío y sin persistir.
func (s *Store) Init() error {
	return s.Reload()
}

// Reload vuelve a adoptar lo que haya en el almacén local (tras una
// importación o un borrado de datos) y publica el snapshot resultante.
// Un almacén vacío se siembra igual que en Init.
func (s *Store) Reload() error {
	products, err := s.storage.LoadProducts()
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(products) == 0 {
		return s.commitLocked(seedProducts())
	}
	s.products = products
	s.log.Info().Int("total", len(products)).Msg("productos cargados del almacén local")
	s.bus.Publish(topicProductsChanged, clone(products))
	return nil
}

// List devuelve un snapshot completo de la colección. Nunca falla: una lista
// vacía es un resultado válido.
func (s *Store) List() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.products)
}

// GetByID busca el producto por id (recorrido lineal).
func (s *Store) GetByID(id string) (entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return entity.Product{}, domain.ErrNotFound
}

// Create asigna id nuevo (ULID: componente temporal + aleatorio), deriva el
// estado de la cantidad y antepone el producto a la lista (más reciente primero).
func (s *Store) Create(in CreateInput) (entity.Product, error) {
	now := time.Now()
	p := entity.Product{
		ID:          ulid.Make().String(),
		Name:        in.Name,
		Code:        in.Code,
		Description: in.Description,
		Status:      entity.DeriveStatus(in.Quantity),
		ImageURL:    in.ImageURL,
		Quantity:    in.Quantity,
		Category:    in.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]entity.Product, 0, len(s.products)+1)
	next = append(next, p)
	next = append(next, s.products...)
	if err := s.commitLocked(next); err != nil {
		return entity.Product{}, err
	}
	return p, nil
}

// Update combina los campos definidos sobre el registro existente y refresca
// UpdatedAt. El estado se rederiva únicamente si la cantidad viene en la
// actualización; si no, se conserva. CreatedAt nunca cambia.
func (s *Store) Update(id string, in UpdateInput) (entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return entity.Product{}, domain.ErrNotFound
	}

	next := clone(s.products)
	p := next[idx]
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Code != nil {
		p.Code = *in.Code
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	if in.Quantity != nil {
		p.Quantity = *in.Quantity
		p.Status = entity.DeriveStatus(*in.Quantity)
	}
	p.UpdatedAt = time.Now()
	next[idx] = p

	if err := s.commitLocked(next); err != nil {
		return entity.Product{}, err
	}
	return p, nil
}

// Delete elimina el registro de forma definitiva (sin borrado lógico).
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return domain.ErrNotFound
	}

	next := make([]entity.Product, 0, len(s.products)-1)
	next = append(next, s.products[:idx]...)
	next = append(next, s.products[idx+1:]...)
	return s.commitLocked(next)
}

// Search busca por subcadena en nombre y código, sin distinguir mayúsculas ni
// diacríticos. No muta estado.
func (s *Store) Search(query string) []entity.Product {
	return s.filter(query, false)
}

// Filter variante de la pantalla de listado: además del nombre y el código
// también considera la categoría.
func (s *Store) Filter(query string) []entity.Product {
	return s.filter(query, true)
}

func (s *Store) filter(query string, withCategory bool) []entity.Product {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.List()
	}

	matcher := search.New(language.Und, search.IgnoreCase, search.IgnoreDiacritics)
	contains := func(text string) bool {
		if text == "" {
			return false
		}
		start, _ := matcher.IndexString(text, query)
		return start >= 0
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entity.Product
	for _, p := range s.products {
		if contains(p.Name) || contains(p.Code) || (withCategory && contains(p.Category)) {
			out = append(out, p)
		}
	}
	return out
}

// CountByStatus cuenta los productos por estado (contadores de la pantalla de listado).
func (s *Store) CountByStatus() map[entity.ProductStatus]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[entity.ProductStatus]int, 4)
	for _, p := range s.products {
		counts[p.Status]++
	}
	return counts
}

// Subscribe registra un observador que recibirá cada snapshot publicado.
// Los snapshots son copias: el suscriptor no debe (ni puede) mutar el estado del store.
func (s *Store) Subscribe(fn func([]entity.Product)) error {
	return s.bus.Subscribe(topicProductsChanged, fn)
}

// Unsubscribe retira un observador registrado.
func (s *Store) Unsubscribe(fn func([]entity.Product)) error {
	return s.bus.Unsubscribe(topicProductsChanged, fn)
}

// commitLocked persiste la colección siguiente y, solo si la escritura tuvo
// éxito, la adopta como estado actual y publica el snapshot. Requiere s.mu.
func (s *Store) commitLocked(next []entity.Product) error {
	if err := s.storage.SaveProducts(next); err != nil {
		s.log.Error().Err(err).Msg("persistir productos; se conserva el estado anterior")
		return err
	}
	s.products = next
	s.bus.Publish(topicProductsChanged, clone(next))
	return nil
}

func (s *Store) indexLocked(id string) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func clone(list []entity.Product) []entity.Product {
	out := make([]entity.Product, len(list))
	copy(out, list)
	return out
}

// seedProducts productos de demostración con los que se siembra un almacén vacío.
func seedProducts() []entity.Product {
	return []entity.Product{
		{
			ID:          "1",
			Name:        "Laptop Dell XPS 15",
			Code:        "DELL-XPS-15-2024",
			Description: "Portátil de alto rendimiento para profesionales con pantalla OLED de 15.6\"",
			Status:      entity.StatusInStock,
			Quantity:    25,
			Category:    "Electrónica",
			CreatedAt:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			Name:        "Monitor Samsung 27\"",
			Code:        "SAM-MON-27-4K",
			Description: "Monitor 4K UHD para oficina y entretenimiento",
			Status:      entity.StatusLowStock,
			Quantity:    5,
			Category:    "Electrónica",
			CreatedAt:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "3",
			Name:        "Teclado Logitech MX Keys",
			Code:        "LOG-MXKEYS-2024",
			Description: "Teclado inalámbrico con retroiluminación",
			Status:      entity.StatusInStock,
			Quantity:    50,
			Category:    "Accesorios",
			CreatedAt:   time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "4",
			Name:        "Ratón Razer DeathAdder",
			Code:        "RAZ-DA-V3",
			Description: "Ratón gamer ergonómico con sensor óptico",
			Status:      entity.StatusOutOfStock,
			Quantity:    0,
			Category:    "Accesorios",
			CreatedAt:   time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		},
	}
}
