package services

import (
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"
)

// fakeStorage records asset operations instead of touching the filesystem
type fakeStorage struct {
	saved   []string
	deleted []string
	nextID  int
}

func (f *fakeStorage) SaveUpload(fileHeader *multipart.FileHeader, field, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}
	f.nextID++
	name := fmt.Sprintf("%s-%d.png", field, f.nextID)
	f.saved = append(f.saved, subPath+"/"+name)
	return name, nil
}

func (f *fakeStorage) DeleteFile(subPath, name string) error {
	f.deleted = append(f.deleted, subPath+"/"+name)
	return nil
}

func (f *fakeStorage) URLFor(subPath, name string) string {
	if name == "" {
		return ""
	}
	return "http://assets.test/" + subPath + "/" + name
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
