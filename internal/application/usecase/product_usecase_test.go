package usecase_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ScanInventario-api/internal/application/catalog"
	"github.com/jhoicas/ScanInventario-api/internal/application/dto"
	"github.com/jhoicas/ScanInventario-api/internal/application/storage"
	"github.com/jhoicas/ScanInventario-api/internal/application/usecase"
	"github.com/jhoicas/ScanInventario-api/internal/domain/entity"
	"github.com/jhoicas/ScanInventario-api/internal/infrastructure/boltkv"
	"github.com/jhoicas/ScanInventario-api/pkg/logger"
)

func nuevaFachada(t *testing.T, opts usecase.APIOptions) (*usecase.ProductUseCase, *catalog.Store) {
	t.Helper()
	kv, err := boltkv.Open(filepath.Join(t.TempDir(), "uc_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	store := catalog.NewStore(storage.NewService(kv, logger.Nop()), logger.Nop())
	require.NoError(t, store.Init())
	return usecase.NewProductUseCase(store, opts, logger.Nop()), store
}

func sinLatencia() usecase.APIOptions {
	return usecase.APIOptions{LatencyScale: 0}
}

func TestGetProducts_SobreExitoso(t *testing.T) {
	uc, _ := nuevaFachada(t, sinLatencia())

	resp := uc.GetProducts(context.Background(), "")
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Error)
	assert.Len(t, resp.Data, 4)

	// Con filtro de la pantalla de listado (incluye categoría)
	resp = uc.GetProducts(context.Background(), "accesorios")
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data, 2)
}

func TestGetProductByID_NoEncontrado(t *testing.T) {
	uc, _ := nuevaFachada(t, sinLatencia())

	resp := uc.GetProductByID(context.Background(), "999")
	assert.False(t, resp.Success)
	assert.Equal(t, "Producto no encontrado", resp.Error)
	assert.Nil(t, resp.Data)
}

func TestCreateProduct_ValidacionAntesDelStore(t *testing.T) {
	uc, store := nuevaFachada(t, sinLatencia())

	// Nombre vacío: la validación falla antes de tocar el store
	resp := uc.CreateProduct(context.Background(), dto.CreateProductRequest{
		Code: "SIN-NOMBRE", Quantity: 5,
	})
	assert.False(t, resp.Success)
	assert.Equal(t, "Datos del producto inválidos", resp.Error)
	assert.Len(t, store.List(), 4, "la colección no cambia con entrada inválida")

	// Cantidad negativa tampoco pasa
	resp = uc.CreateProduct(context.Background(), dto.CreateProductRequest{
		Name: "Malo", Code: "X", Quantity: -1,
	})
	assert.False(t, resp.Success)
}

func TestCreateProduct_Exitoso(t *testing.T) {
	uc, _ := nuevaFachada(t, sinLatencia())

	resp := uc.CreateProduct(context.Background(), dto.CreateProductRequest{
		Name:     "Cable HDMI 2m",
		Code:     "CAB-HDMI-2M",
		Quantity: 100,
		Category: "Accesorios",
	})
	require.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "Producto agregado correctamente", resp.Message)
	assert.Equal(t, entity.StatusInStock, resp.Data.Status)
	assert.NotEmpty(t, resp.Data.ID)

	leido := uc.GetProductByID(context.Background(), resp.Data.ID)
	require.True(t, leido.Success)
	assert.Equal(t, *resp.Data, *leido.Data)
}

func TestUpdateProduct_Sobres(t *testing.T) {
	uc, _ := nuevaFachada(t, sinLatencia())
	cantidad := 0

	resp := uc.UpdateProduct(context.Background(), "1", dto.UpdateProductRequest{Quantity: &cantidad})
	require.True(t, resp.Success)
	assert.Equal(t, "Producto actualizado", resp.Message)
	assert.Equal(t, entity.StatusOutOfStock, resp.Data.Status)

	resp = uc.UpdateProduct(context.Background(), "no-existe", dto.UpdateProductRequest{Quantity: &cantidad})
	assert.False(t, resp.Success)
	assert.Equal(t, "Producto no encontrado", resp.Error)
}

// Una eliminación ya enviada se completa aunque el contexto del llamador muera:
// solo deja de esperarse la latencia simulada.
func TestDeleteProduct_ContextoCanceladoCompletaLaMutacion(t *testing.T) {
	uc, store := nuevaFachada(t, usecase.APIOptions{LatencyScale: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inicio := time.Now()
	resp := uc.DeleteProduct(ctx, "4")
	assert.Less(t, time.Since(inicio), 200*time.Millisecond, "el contexto cancelado corta la espera")

	assert.True(t, resp.Success)
	assert.Equal(t, "Producto eliminado", resp.Message)
	assert.Len(t, store.List(), 3, "la mutación se aplicó de todos modos")
}

func TestSearchProducts_NombreYCodigo(t *testing.T) {
	uc, _ := nuevaFachada(t, sinLatencia())

	res := uc.SearchProducts(context.Background(), "razer")
	require.Len(t, res, 1)
	assert.Equal(t, "4", res[0].ID)
}

func TestGetStats(t *testing.T) {
	uc, _ := nuevaFachada(t, sinLatencia())

	stats := uc.GetStats()
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.InStock)
	assert.Equal(t, 1, stats.LowStock)
	assert.Equal(t, 1, stats.OutOfStock)
	assert.Zero(t, stats.Pending)
}

// La sonda degrada cualquier fallo a false; nunca lanza.
func TestCheckAPIConnection(t *testing.T) {
	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ok.Close()
	caido := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer caido.Close()

	ctx := context.Background()

	uc, _ := nuevaFachada(t, usecase.APIOptions{ProbeURL: ok.URL, ProbeTimeout: 2 * time.Second})
	assert.True(t, uc.CheckAPIConnection(ctx))

	uc, _ = nuevaFachada(t, usecase.APIOptions{ProbeURL: caido.URL, ProbeTimeout: 2 * time.Second})
	assert.False(t, uc.CheckAPIConnection(ctx), "respuesta no-2xx es desconectado")

	uc, _ = nuevaFachada(t, usecase.APIOptions{ProbeURL: "http://127.0.0.1:1", ProbeTimeout: time.Second})
	assert.False(t, uc.CheckAPIConnection(ctx), "error de red es desconectado")

	uc, _ = nuevaFachada(t, usecase.APIOptions{})
	assert.False(t, uc.CheckAPIConnection(ctx), "sin URL configurada es desconectado")
}
