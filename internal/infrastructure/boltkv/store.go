package boltkv

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/jhoicas/ScanInventario-api/internal/domain/repository"
)

var _ repository.KVStore = (*Store)(nil)

// bucketName bucket único para todos los registros de la aplicación.
var bucketName = []byte("scan_inventory")

// Store implementación del puerto KVStore sobre bbolt (archivo local embebido).
type Store struct {
	db *bolt.DB
}

// Open abre (o crea) el archivo de datos y garantiza el bucket.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio de datos: %w", err)
		}
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("abrir almacén local: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("crear bucket: %w", err)
	}
	return &Store{db: db}, nil
}

// Get devuelve el valor de la clave y si existe. El slice devuelto es una copia.
func (s *Store) Get(key string) ([]byte, bool, error) {
	var value []byte
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketName).Get([]byte(key))
		if v != nil {
			found = true
			value = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("leer %q: %w", key, err)
	}
	return value, found, nil
}

// Set escribe el valor bajo la clave.
func (s *Store) Set(key string, value []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("escribir %q: %w", key, err)
	}
	return nil
}

// Delete elimina la clave; no es error si no existe.
func (s *Store) Delete(key string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("eliminar %q: %w", key, err)
	}
	return nil
}

// Has indica si la clave existe.
func (s *Store) Has(key string) (bool, error) {
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		found = tx.Bucket(bucketName).Get([]byte(key)) != nil
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("consultar %q: %w", key, err)
	}
	return found, nil
}

// Close cierra el archivo de datos.
func (s *Store) Close() error {
	return s.db.Close()
}
