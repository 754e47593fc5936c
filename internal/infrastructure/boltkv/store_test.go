package boltkv_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ScanInventario-api/internal/infrastructure/boltkv"
)

func abrirStore(t *testing.T) *boltkv.Store {
	t.Helper()
	s, err := boltkv.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "debe abrirse el archivo de datos")
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_SetGet(t *testing.T) {
	s := abrirStore(t)

	_, found, err := s.Get("clave")
	require.NoError(t, err)
	assert.False(t, found, "clave inexistente no debe encontrarse")

	require.NoError(t, s.Set("clave", []byte(`{"a":1}`)))

	v, found, err := s.Get("clave")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `{"a":1}`, string(v))
}

func TestStore_HasDelete(t *testing.T) {
	s := abrirStore(t)

	require.NoError(t, s.Set("clave", []byte("valor")))
	has, err := s.Has("clave")
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, s.Delete("clave"))
	has, err = s.Has("clave")
	require.NoError(t, err)
	assert.False(t, has, "tras eliminar, la clave no debe existir")

	// Eliminar una clave ausente no es error
	assert.NoError(t, s.Delete("clave"))
}

// Los datos deben sobrevivir al cierre y reapertura del archivo.
func TestStore_SobreviveReapertura(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := boltkv.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("persistente", []byte("sí")))
	require.NoError(t, s.Close())

	s2, err := boltkv.Open(path)
	require.NoError(t, err)
	defer s2.Close()

	v, found, err := s2.Get("persistente")
	require.NoError(t, err)
	assert.True(t, found, "el valor debe sobrevivir el reinicio")
	assert.Equal(t, "sí", string(v))
}
