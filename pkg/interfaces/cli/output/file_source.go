package output

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/vsinha/mockgen/pkg/application/dto"
)

// FileSource serves a previously written JSON document
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// DemoData reads the document from disk on every call so a regeneration
// is picked up without restarting the server
func (s *FileSource) DemoData(ctx context.Context) (*dto.MockData, error) {
	const op = "output.FileSource.DemoData"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var doc dto.MockData
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: decode %s: %w", op, s.path, err)
	}
	return &doc, nil
}
