// Package storage implementa la ranura durable del lado cliente donde el
// contenedor persiste su proyección de estado (y desde donde se hidrata al
// arranque). La implementación real usa un sqlite embebido; MemorySlot sirve
// para tests.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/tu-usuario/imprenta-pro/internal/domain"
)

// SQLiteSlot ranura clave→bytes sobre un archivo sqlite local.
type SQLiteSlot struct {
	db *sql.DB
}

// NewSQLiteSlot abre (o crea) el archivo y prepara la tabla kv.
func NewSQLiteSlot(path string) (*SQLiteSlot, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("storage: abrir %s: %w", path, err)
	}
	const ddl = `CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      BLOB NOT NULL,
		updated_at DATETIME NOT NULL
	)`
	if _, err := db.Exec(ddl); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: crear tabla kv: %w", err)
	}
	return &SQLiteSlot{db: db}, nil
}

// Save upsert del valor bajo la clave.
func (s *SQLiteSlot) Save(ctx context.Context, key string, value []byte) error {
	const q = `INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := s.db.ExecContext(ctx, q, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("storage: guardar %q: %w", key, err)
	}
	return nil
}

// Load lee el valor de la clave; domain.ErrNotFound si no existe todavía.
func (s *SQLiteSlot) Load(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT value FROM kv WHERE key = ?`
	var value []byte
	err := s.db.QueryRowContext(ctx, q, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: leer %q: %w", key, err)
	}
	return value, nil
}

// Delete borra la clave (no falla si no existe).
func (s *SQLiteSlot) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("storage: borrar %q: %w", key, err)
	}
	return nil
}

// Close cierra el archivo.
func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}
