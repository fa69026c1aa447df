package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/imprenta-pro/internal/domain"
	"github.com/tu-usuario/imprenta-pro/internal/infrastructure/storage"
)

func newTempSlot(t *testing.T) *storage.SQLiteSlot {
	t.Helper()
	slot, err := storage.NewSQLiteSlot(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err, "abrir sqlite temporal")
	t.Cleanup(func() { _ = slot.Close() })
	return slot
}

func TestSQLiteSlot_SaveYLoad(t *testing.T) {
	slot := newTempSlot(t)
	ctx := context.Background()

	require.NoError(t, slot.Save(ctx, "imprenta_state_v1", []byte(`{"auth_token":"tok"}`)))

	got, err := slot.Load(ctx, "imprenta_state_v1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"auth_token":"tok"}`, string(got))
}

func TestSQLiteSlot_SaveSobrescribe(t *testing.T) {
	slot := newTempSlot(t)
	ctx := context.Background()

	require.NoError(t, slot.Save(ctx, "k", []byte("v1")))
	require.NoError(t, slot.Save(ctx, "k", []byte("v2")))

	got, err := slot.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
}

func TestSQLiteSlot_ClaveInexistente(t *testing.T) {
	slot := newTempSlot(t)

	_, err := slot.Load(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSQLiteSlot_Delete(t *testing.T) {
	slot := newTempSlot(t)
	ctx := context.Background()

	require.NoError(t, slot.Save(ctx, "k", []byte("v")))
	require.NoError(t, slot.Delete(ctx, "k"))

	_, err := slot.Load(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, slot.Delete(ctx, "k"), "borrar una clave ya borrada no falla")
}

func TestSQLiteSlot_SobreviveReapertura(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()

	slot, err := storage.NewSQLiteSlot(path)
	require.NoError(t, err)
	require.NoError(t, slot.Save(ctx, "k", []byte("persistente")))
	require.NoError(t, slot.Close())

	slot2, err := storage.NewSQLiteSlot(path)
	require.NoError(t, err)
	defer slot2.Close()

	got, err := slot2.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("persistente"), got)
}

func TestMemorySlot_CopiaDefensiva(t *testing.T) {
	slot := storage.NewMemorySlot()
	ctx := context.Background()

	original := []byte("abc")
	require.NoError(t, slot.Save(ctx, "k", original))
	original[0] = 'X'

	got, err := slot.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got, "el slot no debe compartir memoria con quien guarda")
}
