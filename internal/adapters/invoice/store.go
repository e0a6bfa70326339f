package invoice

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dpk-exchange/exchange_backend/internal/apperrors"
	portssvc "github.com/dpk-exchange/exchange_backend/internal/core/ports/services"
)

// FileInvoiceStore keeps rendered invoices as files under a single directory.
type FileInvoiceStore struct {
	dir string
}

// NewFileInvoiceStore creates the invoice directory if needed.
func NewFileInvoiceStore(dir string) (*FileInvoiceStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create invoice directory %s: %w", dir, err)
	}
	return &FileInvoiceStore{dir: dir}, nil
}

// validFilename rejects anything that could escape the invoice directory.
func validFilename(filename string) bool {
	return filename != "" &&
		filename == filepath.Base(filename) &&
		!strings.HasPrefix(filename, ".")
}

// Save writes a rendered document. An existing file is never silently
// overwritten; a name collision surfaces as an error.
func (s *FileInvoiceStore) Save(filename string, content []byte) error {
	if !validFilename(filename) {
		return fmt.Errorf("%w: invalid invoice filename %q", apperrors.ErrValidation, filename)
	}

	f, err := os.OpenFile(filepath.Join(s.dir, filename), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to store invoice %s: %w", filename, err)
	}
	defer f.Close()

	if _, err := f.Write(content); err != nil {
		return fmt.Errorf("failed to write invoice %s: %w", filename, err)
	}
	return nil
}

// Fetch returns the stored document, or apperrors.ErrNotFound if the filename
// is unknown or unsafe.
func (s *FileInvoiceStore) Fetch(filename string) ([]byte, error) {
	if !validFilename(filename) {
		return nil, apperrors.ErrNotFound
	}

	content, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read invoice %s: %w", filename, err)
	}
	return content, nil
}

// Compile-time interface check
var _ portssvc.InvoiceStore = (*FileInvoiceStore)(nil)
