// Package download saves report artifacts to the local filesystem.
package download

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jakditstudio/coloGAMA/internal/history"
)

// Fetcher retrieves a backend resource by URL. *api.Client satisfies this.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Save fetches record's resource and writes it under dir using the record
// name as the suggested filename. Returns the written path. The name is
// reduced to its base so a listing entry can never escape dir.
func Save(ctx context.Context, f Fetcher, rec history.Record, dir string) (string, error) {
	name := filepath.Base(rec.Name)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "", fmt.Errorf("record %s has no usable filename", rec.ID)
	}

	data, err := f.Fetch(ctx, rec.URL)
	if err != nil {
		return "", fmt.Errorf("downloading %s: %w", rec.Name, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating download directory: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
