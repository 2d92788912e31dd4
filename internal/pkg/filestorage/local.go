package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/artemn/yatube/internal/pkg/logger"
)

// LocalStorage saves uploaded media to the local filesystem.
type LocalStorage struct {
	basePath string // root directory where files are stored
	baseURL  string // URL prefix under which stored files are served
}

// NewLocalStorage creates a LocalStorage rooted at basePath. Stored
// files are addressed as baseURL + "/" + relative path.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// BasePath returns the storage root on disk, used by the server for
// static file serving.
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// Save stores an uploaded file under subDir with a uuid-derived name
// and returns the URL path it is served at.
func (ls *LocalStorage) Save(fileHeader *multipart.FileHeader, subDir string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	dir := ls.basePath
	if subDir != "" {
		dir = filepath.Join(ls.basePath, subDir)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return "", fmt.Errorf("failed to create storage subdirectory: %w", err)
		}
	}

	// uuid names avoid collisions between identically named uploads
	name := uuid.New().String() + filepath.Ext(fileHeader.Filename)
	dstPath := filepath.Join(dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	urlPath := ls.baseURL + "/" + path.Join(subDir, name)
	logger.Debug().Str("filename", fileHeader.Filename).Str("saved_as", urlPath).Msg("File saved")
	return urlPath, nil
}

// Delete removes a stored file given the URL path returned by Save.
// Deleting a missing file is not an error.
func (ls *LocalStorage) Delete(urlPath string) error {
	if urlPath == "" {
		return nil
	}

	rel := strings.TrimPrefix(urlPath, ls.baseURL)
	rel = strings.TrimLeft(rel, "/")
	full := filepath.Join(ls.basePath, filepath.FromSlash(rel))

	if err := os.Remove(full); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete stored file %s: %w", full, err)
	}
	return nil
}
