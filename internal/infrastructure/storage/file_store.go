// Package storage implementa ports.KeyValueStore: un archivo YAML local al
// dispositivo y una variante en memoria.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/bulkbuy/internal/application/ports"
	"github.com/jhoicas/bulkbuy/internal/domain"
)

var _ ports.KeyValueStore = (*FileStore)(nil)

// FileStore guarda pares clave/valor en un archivo YAML (permisos 0600).
// Cada escritura reemplaza el archivo completo vía archivo temporal + rename,
// así un corte a mitad nunca deja un archivo a medias.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore construye el store; el archivo se crea en la primera escritura.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path ruta del archivo.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.read()
	if err != nil {
		return "", false, err
	}
	v, ok := data[key]
	return v, ok, nil
}

func (s *FileStore) Set(_ context.Context, entries map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.read()
	if errors.Is(err, domain.ErrCorruptSession) {
		// archivo corrupto: se reescribe desde cero
		data = map[string]string{}
	} else if err != nil {
		return err
	}
	for k, v := range entries {
		data[k] = v
	}
	return s.write(data)
}

func (s *FileStore) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.read()
	if errors.Is(err, domain.ErrCorruptSession) {
		// lo que no se puede parsear tampoco se puede conservar
		return s.remove()
	}
	if err != nil {
		return err
	}
	for _, k := range keys {
		delete(data, k)
	}
	if len(data) == 0 {
		return s.remove()
	}
	return s.write(data)
}

func (s *FileStore) read() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: leer %s: %w", s.path, err)
	}
	data := map[string]string{}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("storage: parsear %s: %w: %w", s.path, domain.ErrCorruptSession, err)
	}
	return data, nil
}

func (s *FileStore) write(data map[string]string) error {
	raw, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("storage: serializar: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("storage: crear %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".session-*.tmp")
	if err != nil {
		return fmt.Errorf("storage: archivo temporal: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op tras el rename

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: escribir: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: permisos: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cerrar: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("storage: reemplazar %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) remove() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: borrar %s: %w", s.path, err)
	}
	return nil
}
