package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vsinha/mockgen/pkg/application/dto"
)

// Config holds configuration for output generation
type Config struct {
	Format string
	Path   string
}

// Write saves the document at config.Path in the configured format. The
// file is written to a temporary sibling and renamed into place, so a failed
// write never leaves a partial document behind.
func Write(doc *dto.MockData, config Config) error {
	var (
		data []byte
		err  error
	)

	switch config.Format {
	case "json", "":
		data, err = encodeJSON(doc)
	case "xlsx":
		data, err = encodeWorkbook(doc)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
	if err != nil {
		return err
	}

	return writeAtomic(config.Path, data)
}

func encodeJSON(doc *dto.MockData) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return append(data, '\n'), nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move output into place at %s: %w", path, err)
	}
	return nil
}
