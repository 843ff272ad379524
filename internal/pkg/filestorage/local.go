package filestorage

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ardiansetya/coursehub/internal/pkg/logger"
)

// allowedExtensions lists the image extensions accepted for upload.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// LocalStorage handles saving uploaded assets to the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where files will be stored
	baseURL  string // The base URL to access the stored files
}

// NewLocalStorage creates a new LocalStorage instance.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// SaveUpload stores an uploaded image under the given subdirectory and
// returns the stored name, e.g. "thumbnail-1714502400123-482910345.png".
// Non-image uploads are skipped without an error.
func (ls *LocalStorage) SaveUpload(fileHeader *multipart.FileHeader, field, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil // No file uploaded
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		logger.Warn().Str("filename", fileHeader.Filename).Msg("Rejected upload with unsupported extension")
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fullDirPath := ls.basePath
	if subPath != "" {
		fullDirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
			logger.Error().Err(err).Str("path", fullDirPath).Msg("Failed to create subdirectory")
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	name := fmt.Sprintf("%s-%d-%d%s", field, time.Now().UnixMilli(), rand.Int63n(1_000_000_000), ext)
	dstPath := filepath.Join(fullDirPath, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", name).Msg("File saved successfully")
	return name, nil
}

// DeleteFile removes a stored asset from the filesystem.
// Returns nil if deletion succeeds or if the file does not exist.
func (ls *LocalStorage) DeleteFile(subPath, name string) error {
	if name == "" {
		return nil // Nothing to delete
	}

	// Guard against path traversal through stored names
	filename := filepath.Base(name)
	if filename == "" || filename == "." || filename == "/" {
		return fmt.Errorf("invalid asset name: %s", name)
	}

	physicalPath := filepath.Join(ls.basePath, subPath, filename)

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted successfully")
	return nil
}

// URLFor returns the public URL for a stored asset.
func (ls *LocalStorage) URLFor(subPath, name string) string {
	if name == "" {
		return ""
	}
	base := strings.TrimRight(ls.baseURL, "/")
	if subPath != "" {
		return base + "/" + subPath + "/" + name
	}
	return base + "/" + name
}
