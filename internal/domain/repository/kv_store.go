package repository

// KVStore define el puerto de persistencia local clave-valor (DIP).
// Las claves son strings fijos por registro; los valores, blobs JSON serializados.
// La implementación debe sobrevivir reinicios del proceso.
type KVStore interface {
	// Get devuelve el valor y true si la clave existe.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Has(key string) (bool, error)
	Close() error
}
