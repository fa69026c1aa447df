package storage

import (
	"context"
	"sync"

	"github.com/tu-usuario/imprenta-pro/internal/domain"
)

// MemorySlot ranura en memoria para tests y para correr sin persistencia.
type MemorySlot struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemorySlot construye la ranura vacía.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{data: map[string][]byte{}}
}

// Save guarda una copia del valor.
func (m *MemorySlot) Save(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	return nil
}

// Load devuelve una copia del valor; domain.ErrNotFound si no existe.
func (m *MemorySlot) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, nil
}

// Delete borra la clave.
func (m *MemorySlot) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
