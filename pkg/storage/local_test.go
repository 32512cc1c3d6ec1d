package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockroom/stockroom/pkg/storage"
)

func TestLocalDiskRoundTrip(t *testing.T) {
	disk := storage.NewLocalDisk(t.TempDir(), "http://localhost:8080/storage")

	require.NoError(t, disk.Put("exports/test.csv", []byte("id,name\n")))
	require.True(t, disk.Exists("exports/test.csv"))

	data, err := disk.Get("exports/test.csv")
	require.NoError(t, err)
	assert.Equal(t, "id,name\n", string(data))

	size, err := disk.Size("exports/test.csv")
	require.NoError(t, err)
	assert.Equal(t, int64(8), size)

	assert.Equal(t, "http://localhost:8080/storage/exports/test.csv", disk.URL("exports/test.csv"))

	require.NoError(t, disk.Delete("exports/test.csv"))
	assert.False(t, disk.Exists("exports/test.csv"))
}

func TestLocalDiskOverwrite(t *testing.T) {
	disk := storage.NewLocalDisk(t.TempDir(), "")

	require.NoError(t, disk.Put("f.txt", []byte("one")))
	require.NoError(t, disk.Put("f.txt", []byte("two")))

	data, err := disk.Get("f.txt")
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))
}

func TestLocalDiskDeleteMissingIsNoop(t *testing.T) {
	disk := storage.NewLocalDisk(t.TempDir(), "")
	assert.NoError(t, disk.Delete("never-existed.txt"))
}
