package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RobsonGFerrarezi/cadastro-usuarios/internal/blobx"
)

func setupBlob(t *testing.T) (*BlobRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	slot, err := blobx.NewFileStore(path)
	require.NoError(t, err)
	r, err := NewBlobRepository(context.Background(), slot)
	require.NoError(t, err)
	return r, path
}

func TestBlob_InitWritesEmptyCollection(t *testing.T) {
	_, path := setupBlob(t)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestBlob_InitIsIdempotent(t *testing.T) {
	r, path := setupBlob(t)
	ctx := context.Background()

	_, err := r.Insert(ctx, "Ana", "ana@x.com", "", "Abcde1")
	require.NoError(t, err)

	// rebinding to the same slot must not clobber existing records
	slot, err := blobx.NewFileStore(path)
	require.NoError(t, err)
	r2, err := NewBlobRepository(ctx, slot)
	require.NoError(t, err)

	all, err := r2.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestBlob_InsertAssignsDistinctIDs(t *testing.T) {
	r, _ := setupBlob(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		u, err := r.Insert(ctx, "N", email, "", "Abcde1")
		require.NoError(t, err)
		require.NotEmpty(t, u.ID)
		require.False(t, seen[u.ID], "id %q reused", u.ID)
		seen[u.ID] = true
	}
}

func TestBlob_InsertDuplicateEmail(t *testing.T) {
	r, path := setupBlob(t)
	ctx := context.Background()

	_, err := r.Insert(ctx, "Ana", "ana@x.com", "", "Abcde1")
	require.NoError(t, err)

	_, err = r.Insert(ctx, "Other", "ana@x.com", "", "Abcde2")
	assert.ErrorIs(t, err, ErrorEmailExists)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Len(t, raw, 1, "failed insert must not change the stored collection")
}

func TestBlob_SerializedShape(t *testing.T) {
	r, path := setupBlob(t)

	u, err := r.Insert(context.Background(), "Ana", "ana@x.com", "(11) 99999-8888", "Abcde1")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, u.ID, raw[0]["id"])
	assert.Equal(t, "Ana", raw[0]["name"])
	assert.Equal(t, "ana@x.com", raw[0]["email"])
	assert.Equal(t, "(11) 99999-8888", raw[0]["phone"])
	assert.Equal(t, "Abcde1", raw[0]["password"])
}

func TestBlob_UpdateFields(t *testing.T) {
	r, _ := setupBlob(t)
	ctx := context.Background()

	u1, err := r.Insert(ctx, "Ana", "ana@x.com", "", "Abcde1")
	require.NoError(t, err)
	u2, err := r.Insert(ctx, "Bia", "bia@x.com", "", "Abcde2")
	require.NoError(t, err)

	require.NoError(t, r.UpdateFields(ctx, u1.ID, "Ana Maria", "ana2@x.com", "3333-4444"))
	got, err := r.GetByID(ctx, u1.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", got.Name)
	assert.Equal(t, "ana2@x.com", got.Email)
	assert.Equal(t, "3333-4444", got.Phone)
	assert.Equal(t, "Abcde1", got.Password)

	err = r.UpdateFields(ctx, u2.ID, "Bia", "ana2@x.com", "")
	assert.ErrorIs(t, err, ErrorEmailExists)

	// keeping your own email is fine
	require.NoError(t, r.UpdateFields(ctx, u2.ID, "Bia B", "bia@x.com", ""))

	err = r.UpdateFields(ctx, "missing", "X", "x@x.com", "")
	assert.ErrorIs(t, err, ErrorNotFound)
}

func TestBlob_UpdatePasswordAndDelete(t *testing.T) {
	r, _ := setupBlob(t)
	ctx := context.Background()

	u, err := r.Insert(ctx, "Ana", "ana@x.com", "", "Abcde1")
	require.NoError(t, err)

	require.NoError(t, r.UpdatePassword(ctx, u.ID, "Abcde9"))
	got, err := r.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Abcde9", got.Password)

	assert.ErrorIs(t, r.UpdatePassword(ctx, "missing", "Abcde9"), ErrorNotFound)

	require.NoError(t, r.Delete(ctx, u.ID))
	assert.ErrorIs(t, r.Delete(ctx, u.ID), ErrorNotFound)

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestBlob_GetAllKeepsInsertionOrder(t *testing.T) {
	r, _ := setupBlob(t)
	ctx := context.Background()

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		_, err := r.Insert(ctx, "N", email, "", "Abcde1")
		require.NoError(t, err)
	}

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a@x.com", all[0].Email)
	assert.Equal(t, "b@x.com", all[1].Email)
	assert.Equal(t, "c@x.com", all[2].Email)
}
