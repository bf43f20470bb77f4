// Package storage persists incoming upload bytes under the service's input
// directory before they are forwarded to A1.art.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Error marks a local persistence failure, distinct from remote provider
// errors. Maps to a 500-class response at the API boundary.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage: failed to save %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

type Local struct {
	dir string
}

func NewLocal(dir string) *Local {
	return &Local{dir: dir}
}

// Save writes data to a uniquely named file preserving the original
// extension and returns the path. Names combine a second-resolution timestamp
// with a short random suffix so simultaneous uploads cannot collide.
func (l *Local) Save(data []byte, originalFilename string) (string, error) {
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return "", &Error{Path: l.dir, Err: err}
	}

	ext := filepath.Ext(originalFilename)
	name := fmt.Sprintf("%s_%s%s", time.Now().Format("20060102_150405"), uuid.NewString()[:8], ext)
	path := filepath.Join(l.dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", &Error{Path: path, Err: err}
	}
	return path, nil
}
