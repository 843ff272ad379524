package filestorage

import (
	"mime/multipart"
)

// FileStorage defines the interface for uploaded asset storage.
// Implementations return the stored asset name, which is what gets persisted
// on the owning record; the empty string means nothing was stored.
type FileStorage interface {
	// SaveUpload stores an uploaded image under the given subdirectory.
	// Files that are not jpg/jpeg/png are skipped silently: no file is
	// stored and no error is returned.
	SaveUpload(fileHeader *multipart.FileHeader, field, subPath string) (string, error)

	// DeleteFile removes a stored asset. Deleting an asset that does not
	// exist is not an error.
	DeleteFile(subPath, name string) error

	// URLFor returns the public URL for a stored asset.
	URLFor(subPath, name string) string
}
