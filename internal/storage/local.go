package storage

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Local stores uploaded files in a publicly served directory tree,
// standing in for the hosted object store. Every object gets a fresh
// uuid name; callers receive the public URL path.
type Local struct {
	Root string // filesystem root, e.g. "./uploads"
}

// NewLocal builds a store rooted at dir.
func NewLocal(dir string) *Local {
	return &Local{Root: dir}
}

// Save writes the upload under area and returns its public URL path.
func (s *Local) Save(c *gin.Context, file *multipart.FileHeader, area string) (string, error) {
	dir := filepath.Join(s.Root, area)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return fmt.Sprintf("/uploads/%s/%s", area, name), nil
}
