package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"ads/internal/app/storage"
)

func TestDiskStorage_StoreAndLoad(t *testing.T) {
	dir := t.TempDir()
	st := storage.NewDiskStorage(dir)

	filename, err := st.Store([]byte("image-bytes"), "original-photo.jpg", "photo_42")

	assert.NoError(t, err)
	assert.Equal(t, "photo_42.jpg", filename)

	data, err := st.Load(filename)
	assert.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), data)
}

// Повторная запись под тем же базовым именем затирает старый файл
func TestDiskStorage_StoreReplaces(t *testing.T) {
	dir := t.TempDir()
	st := storage.NewDiskStorage(dir)

	_, err := st.Store([]byte("first"), "a.png", "avatar_10")
	assert.NoError(t, err)

	filename, err := st.Store([]byte("second"), "b.png", "avatar_10")
	assert.NoError(t, err)

	data, err := st.Load(filename)
	assert.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
}

func TestDiskStorage_LoadMissing(t *testing.T) {
	st := storage.NewDiskStorage(t.TempDir())

	_, err := st.Load("photo_404.jpg")

	assert.ErrorIs(t, err, storage.ErrFileNotFound)
}

func TestDiskStorage_RemoveTolerantToMissing(t *testing.T) {
	st := storage.NewDiskStorage(t.TempDir())

	err := st.Remove("photo_404.jpg")

	assert.NoError(t, err)
}

func TestDiskStorage_Remove(t *testing.T) {
	dir := t.TempDir()
	st := storage.NewDiskStorage(dir)

	filename, err := st.Store([]byte("img"), "pic.jpeg", "photo_1")
	assert.NoError(t, err)

	err = st.Remove(filename)
	assert.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(dir, filename))
	assert.True(t, os.IsNotExist(statErr))
}

// Каталог создается при первом сохранении
func TestDiskStorage_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images", "photos")
	st := storage.NewDiskStorage(dir)

	_, err := st.Store([]byte("img"), "pic.jpg", "photo_1")

	assert.NoError(t, err)
}
