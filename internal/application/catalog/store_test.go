package catalog_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ScanInventario-api/internal/application/catalog"
	"github.com/jhoicas/ScanInventario-api/internal/application/storage"
	"github.com/jhoicas/ScanInventario-api/internal/domain"
	"github.com/jhoicas/ScanInventario-api/internal/domain/entity"
	"github.com/jhoicas/ScanInventario-api/internal/domain/repository"
	"github.com/jhoicas/ScanInventario-api/pkg/logger"
)

// kvFalso almacén clave-valor en memoria para los tests: cuenta escrituras y
// puede forzarse a fallar para simular fallos de persistencia.
type kvFalso struct {
	datos      map[string][]byte
	escrituras int
	fallarSet  bool
}

var _ repository.KVStore = (*kvFalso)(nil)

func nuevoKVFalso() *kvFalso {
	return &kvFalso{datos: make(map[string][]byte)}
}

func (k *kvFalso) Get(key string) ([]byte, bool, error) {
	v, ok := k.datos[key]
	return v, ok, nil
}

func (k *kvFalso) Set(key string, value []byte) error {
	if k.fallarSet {
		return errors.New("disco lleno")
	}
	k.escrituras++
	k.datos[key] = append([]byte(nil), value...)
	return nil
}

func (k *kvFalso) Delete(key string) error {
	delete(k.datos, key)
	return nil
}

func (k *kvFalso) Has(key string) (bool, error) {
	_, ok := k.datos[key]
	return ok, nil
}

func (k *kvFalso) Close() error { return nil }

func nuevoStore(t *testing.T) (*catalog.Store, *kvFalso) {
	t.Helper()
	kv := nuevoKVFalso()
	st := catalog.NewStore(storage.NewService(kv, logger.Nop()), logger.Nop())
	require.NoError(t, st.Init())
	return st, kv
}

func ptr[T any](v T) *T { return &v }

// Un almacén vacío se siembra con los 4 productos de demostración y se persiste de inmediato.
func TestInit_SiembraAlmacenVacio(t *testing.T) {
	st, kv := nuevoStore(t)

	list := st.List()
	require.Len(t, list, 4)

	ids := []string{list[0].ID, list[1].ID, list[2].ID, list[3].ID}
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids)

	estados := []entity.ProductStatus{list[0].Status, list[1].Status, list[2].Status, list[3].Status}
	assert.Equal(t, []entity.ProductStatus{
		entity.StatusInStock, entity.StatusLowStock, entity.StatusInStock, entity.StatusOutOfStock,
	}, estados, "los estados de la siembra deben corresponder a sus cantidades (25, 5, 50, 0)")

	assert.Equal(t, 1, kv.escrituras, "la siembra debe persistirse de inmediato")
}

// Con datos ya persistidos no se vuelve a sembrar.
func TestInit_CargaColeccionExistente(t *testing.T) {
	kv := nuevoKVFalso()
	svc := storage.NewService(kv, logger.Nop())
	require.NoError(t, svc.SaveProducts([]entity.Product{{
		ID: "abc", Name: "Único", Code: "UNI-1", Quantity: 3,
		Status: entity.StatusLowStock, Category: "Otros",
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}}))

	st := catalog.NewStore(svc, logger.Nop())
	require.NoError(t, st.Init())

	list := st.List()
	require.Len(t, list, 1)
	assert.Equal(t, "abc", list[0].ID)
}

func TestCreate_AnteponeYDerivaEstado(t *testing.T) {
	st, _ := nuevoStore(t)

	p, err := st.Create(catalog.CreateInput{
		Name:     "Impresora HP LaserJet",
		Code:     "HP-LJ-2024",
		Quantity: 10, // límite exacto: pertenece a stock bajo
		Category: "Oficina",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, entity.StatusLowStock, p.Status, "cantidad 10 debe ser low_stock, no in_stock")
	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)

	list := st.List()
	require.Len(t, list, 5)
	assert.Equal(t, p.ID, list[0].ID, "el producto nuevo va de primero (más reciente primero)")

	// Create seguido de GetByID devuelve el mismo registro
	leido, err := st.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, leido)
}

func TestCreate_IdsUnicos(t *testing.T) {
	st, _ := nuevoStore(t)

	vistos := map[string]bool{}
	for i := 0; i < 20; i++ {
		p, err := st.Create(catalog.CreateInput{Name: "Repetido", Code: "REP", Quantity: 1})
		require.NoError(t, err)
		assert.False(t, vistos[p.ID], "id repetido: %s", p.ID)
		vistos[p.ID] = true
	}
}

func TestGetByID_NoEncontrado(t *testing.T) {
	st, _ := nuevoStore(t)

	_, err := st.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Una actualización sin cantidad no rederiva el estado; con cantidad sí.
func TestUpdate_Parcial(t *testing.T) {
	st, _ := nuevoStore(t)

	// Sin cantidad: el estado se conserva
	p, err := st.Update("2", catalog.UpdateInput{Name: ptr("Monitor Samsung 27\" G7")})
	require.NoError(t, err)
	assert.Equal(t, "Monitor Samsung 27\" G7", p.Name)
	assert.Equal(t, entity.StatusLowStock, p.Status, "sin cantidad el estado no cambia")
	assert.Equal(t, 5, p.Quantity, "campo no enviado queda intacto")
	assert.Equal(t, "SAM-MON-27-4K", p.Code, "campo no enviado queda intacto")

	// Con cantidad: rederivación y UpdatedAt avanza, CreatedAt no cambia
	antes, err := st.GetByID("1")
	require.NoError(t, err)
	require.Equal(t, entity.StatusInStock, antes.Status)

	p, err = st.Update("1", catalog.UpdateInput{Quantity: ptr(0)})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusOutOfStock, p.Status)
	assert.Equal(t, 0, p.Quantity)
	assert.True(t, p.UpdatedAt.After(antes.UpdatedAt), "UpdatedAt debe avanzar")
	assert.True(t, p.CreatedAt.Equal(antes.CreatedAt), "CreatedAt nunca cambia")
}

// Actualizar un id ausente falla sin tocar la colección ni escribir en disco.
func TestUpdate_NoEncontradoSinEscritura(t *testing.T) {
	st, kv := nuevoStore(t)
	escriturasAntes := kv.escrituras

	_, err := st.Update("999", catalog.UpdateInput{Quantity: ptr(7)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, escriturasAntes, kv.escrituras, "no debe haber escritura de persistencia")
	assert.Len(t, st.List(), 4, "la colección no cambia")
}

func TestDelete_Definitivo(t *testing.T) {
	st, _ := nuevoStore(t)

	require.NoError(t, st.Delete("3"))

	_, err := st.GetByID("3")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	for _, p := range st.List() {
		assert.NotEqual(t, "3", p.ID)
	}

	assert.ErrorIs(t, st.Delete("3"), domain.ErrNotFound, "segundo borrado del mismo id falla")
}

func TestSearch_NombreYCodigo(t *testing.T) {
	st, _ := nuevoStore(t)

	// Sin distinguir mayúsculas, por nombre
	res := st.Search("dell")
	require.Len(t, res, 1)
	assert.Equal(t, "1", res[0].ID)

	// Por código
	res = st.Search("sam-mon")
	require.Len(t, res, 1)
	assert.Equal(t, "2", res[0].ID)

	// La categoría NO participa en Search...
	res = st.Search("Accesorios")
	assert.Empty(t, res)

	// ...pero sí en la variante Filter de la pantalla de listado,
	// incluso ignorando diacríticos
	res = st.Filter("electronica")
	assert.Len(t, res, 2)

	// Consulta vacía devuelve todo
	assert.Len(t, st.Search("  "), 4)
}

func TestCountByStatus(t *testing.T) {
	st, _ := nuevoStore(t)

	counts := st.CountByStatus()
	assert.Equal(t, 2, counts[entity.StatusInStock])
	assert.Equal(t, 1, counts[entity.StatusLowStock])
	assert.Equal(t, 1, counts[entity.StatusOutOfStock])
	assert.Equal(t, 0, counts[entity.StatusPending])
}

// Cada mutación publica un snapshot que es una copia: mutarlo no afecta al store.
func TestSubscribe_RecibeSnapshotsInmutables(t *testing.T) {
	st, _ := nuevoStore(t)

	var recibidos [][]entity.Product
	observador := func(snapshot []entity.Product) {
		recibidos = append(recibidos, snapshot)
	}
	require.NoError(t, st.Subscribe(observador))
	defer func() { _ = st.Unsubscribe(observador) }()

	_, err := st.Create(catalog.CreateInput{Name: "Nuevo", Code: "NVO-1", Quantity: 2})
	require.NoError(t, err)
	require.NoError(t, st.Delete("4"))

	require.Len(t, recibidos, 2, "una publicación por mutación")
	assert.Len(t, recibidos[0], 5)
	assert.Len(t, recibidos[1], 4)

	// Mutar el snapshot recibido no toca el estado del store
	recibidos[1][0].Name = "vandalizado"
	intacto, err := st.GetByID(recibidos[1][0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "vandalizado", intacto.Name)
}

// Si la persistencia falla, el estado en memoria no se adopta y no se publica nada.
func TestCommit_FalloDePersistenciaConservaEstado(t *testing.T) {
	st, kv := nuevoStore(t)

	publicaciones := 0
	observador := func(snapshot []entity.Product) { publicaciones++ }
	require.NoError(t, st.Subscribe(observador))

	kv.fallarSet = true

	_, err := st.Create(catalog.CreateInput{Name: "No entra", Code: "X", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Len(t, st.List(), 4, "el estado anterior se conserva")
	assert.Zero(t, publicaciones, "nunca se publica un snapshot que no se persistió")

	_, err = st.Update("1", catalog.UpdateInput{Quantity: ptr(99)})
	assert.ErrorIs(t, err, domain.ErrPersistence)
	p, _ := st.GetByID("1")
	assert.Equal(t, 25, p.Quantity)

	// Al recuperarse el disco, las mutaciones vuelven a fluir
	kv.fallarSet = false
	_, err = st.Update("1", catalog.UpdateInput{Quantity: ptr(99)})
	require.NoError(t, err)
	assert.Equal(t, 1, publicaciones)
}
