// Package settings implementa el almacén clave-valor durable sobre un
// archivo JSON manejado con Viper. Es el equivalente de proceso al
// localStorage del prototipo web: claves string, sin expiración.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"

	"github.com/jhoicas/collectfast-api/internal/domain/repository"
)

var _ repository.SettingsStore = (*FileStore)(nil)

// FileStore almacén respaldado por archivo. Cada Set reescribe el archivo;
// el volumen es de un puñado de claves, no hace falta nada más elaborado.
type FileStore struct {
	mu   sync.Mutex
	v    *viper.Viper
	path string
}

// NewFileStore abre (o inicializa) el almacén en la ruta dada.
// Archivo inexistente = almacén vacío, no es error.
func NewFileStore(path string) (*FileStore, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return nil, fmt.Errorf("leer almacén de preferencias: %w", err)
		}
	}
	return &FileStore{v: v, path: path}, nil
}

// Get devuelve el valor de la clave y si existe.
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.v.IsSet(key) {
		return "", false
	}
	return s.v.GetString(key), true
}

// Set persiste la clave. El valor sobrevive reinicios del proceso.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Set(key, value)
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("crear directorio del almacén: %w", err)
		}
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("escribir almacén de preferencias: %w", err)
	}
	return nil
}
