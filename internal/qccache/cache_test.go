package qccache

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edafy/ingest-cli/internal/model"
	"github.com/edafy/ingest-cli/internal/qc"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "qc.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func writeTestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "line42.sgy")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGetMissThenHit(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	path := writeTestFile(t, "segy bytes")
	rec := &model.SegyRecord{FileName: model.Str("line42.sgy")}
	key, err := KeyFor(path, rec)
	require.NoError(t, err)

	_, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	stored := qc.Result{Valid: false, Issues: []qc.Issue{{Field: "created_by", Message: "CREATED BY is null."}}}
	require.NoError(t, c.Put(ctx, key, qc.FormatSegy, stored))

	got, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, stored, got)
}

func TestMetadataEditMisses(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	path := writeTestFile(t, "segy bytes")
	key1, err := KeyFor(path, &model.SegyRecord{FileName: model.Str("line42.sgy")})
	require.NoError(t, err)
	require.NoError(t, c.Put(ctx, key1, qc.FormatSegy, qc.Result{Valid: true}))

	// Same file, edited metadata: different snapshot hash, so a miss.
	key2, err := KeyFor(path, &model.SegyRecord{
		FileName:  model.Str("line42.sgy"),
		CreatedBy: model.Str("ops"),
	})
	require.NoError(t, err)
	assert.Equal(t, key1.FileHash, key2.FileHash)
	assert.NotEqual(t, key1.SnapshotHash, key2.SnapshotHash)

	_, ok, err := c.Get(ctx, key2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPutReplaces(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	path := writeTestFile(t, "las bytes")
	key, err := KeyFor(path, &model.LasRecord{FileName: model.Str("w1.las")})
	require.NoError(t, err)

	require.NoError(t, c.Put(ctx, key, qc.FormatLas, qc.Result{Valid: false, Issues: []qc.Issue{{Field: "created_by", Message: "CREATED BY is null."}}}))
	require.NoError(t, c.Put(ctx, key, qc.FormatLas, qc.Result{Valid: true}))

	got, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.Valid)
	assert.Empty(t, got.Issues)
}
