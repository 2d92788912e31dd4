package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadHeader(t *testing.T, filename string, payload []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func TestSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	ls, err := NewLocalStorage(dir, "/media")
	require.NoError(t, err)

	urlPath, err := ls.Save(uploadHeader(t, "cat.png", []byte("payload")), "posts")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(urlPath, "/media/posts/"))
	assert.True(t, strings.HasSuffix(urlPath, ".png"))

	rel := strings.TrimPrefix(urlPath, "/media/")
	onDisk := filepath.Join(dir, filepath.FromSlash(rel))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)

	require.NoError(t, ls.Delete(urlPath))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))
}

func TestSaveNilHeader(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), "/media")
	require.NoError(t, err)

	urlPath, err := ls.Save(nil, "posts")
	require.NoError(t, err)
	assert.Empty(t, urlPath)
}

func TestDeleteMissingFileIsNoError(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), "/media")
	require.NoError(t, err)

	assert.NoError(t, ls.Delete("/media/posts/never-existed.png"))
	assert.NoError(t, ls.Delete(""))
}

func TestUniqueNamesForSameFilename(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), "/media")
	require.NoError(t, err)

	first, err := ls.Save(uploadHeader(t, "cat.png", []byte("one")), "posts")
	require.NoError(t, err)
	second, err := ls.Save(uploadHeader(t, "cat.png", []byte("two")), "posts")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
