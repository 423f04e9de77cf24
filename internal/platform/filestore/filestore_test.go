package filestore

import (
	"context"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/vocab-drill/internal/store"
)

func TestLoadMissingSnapshot(t *testing.T) {
	t.Parallel()

	s := New(afero.NewMemMapFs(), "data/drill.json", nil)
	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, store.ErrSnapshotNotFound)
}

func TestSaveLoad(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fsys := afero.NewMemMapFs()
	s := New(fsys, "data/nested/drill.json", nil)

	require.NoError(t, s.Save(ctx, []byte(`{"version":2}`)))
	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"version":2}`, string(got))

	require.NoError(t, s.Save(ctx, []byte(`{"version":3}`)))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"version":3}`, string(got))

	entries, err := afero.ReadDir(fsys, "data/nested")
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files may be left behind")

}

func TestSaveFailureKeepsPreviousSnapshot(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	base := afero.NewMemMapFs()
	require.NoError(t, New(base, "drill.json", nil).Save(ctx, []byte("old")))

	readOnly := New(afero.NewReadOnlyFs(base), "drill.json", nil)
	err := readOnly.Save(ctx, []byte("new"))

	var storeErr *store.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "save", storeErr.Operation)

	got, err := readOnly.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "old", string(got))
}

func TestOSStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := t.TempDir() + "/drill.json"

	s := NewOS(path, nil)
	require.NoError(t, s.Save(ctx, []byte("on disk")))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "on disk", string(raw))
	assert.Equal(t, path, s.Path())
}
