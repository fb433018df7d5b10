package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// Delivery accepts a finished text blob and a suggested filename and gets
// it to the user. The builder stays pure; delivery is the side-effectful
// half.
type Delivery interface {
	Deliver(blob string, filename string) (path string, err error)
}

// FileDelivery writes exports into a directory, creating it on demand.
type FileDelivery struct {
	Dir string
}

func NewFileDelivery(dir string) *FileDelivery {
	return &FileDelivery{Dir: dir}
}

func (d *FileDelivery) Deliver(blob string, filename string) (string, error) {
	if err := os.MkdirAll(d.Dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", d.Dir, err)
	}

	path := filepath.Join(d.Dir, filename)
	if err := os.WriteFile(path, []byte(blob), 0o660); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
