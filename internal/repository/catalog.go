// Package repository provides the read-only catalog data source.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/angussewell/lead-magnet-library/internal/models"
)

// FileCatalog reads the product feed from a JSON file on disk.
// The file is read and parsed on every call so each visit sees a
// fresh snapshot; there is no caching layer.
type FileCatalog struct {
	// Path is the location of the products JSON file.
	Path string
}

// NewFileCatalog creates a FileCatalog backed by the given file path.
func NewFileCatalog(path string) *FileCatalog {
	return &FileCatalog{Path: path}
}

// List returns all product records from the feed file.
// A missing file or malformed JSON is returned as an error.
func (c *FileCatalog) List(ctx context.Context) ([]models.ProductRecord, error) {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var products []models.ProductRecord
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	return products, nil
}
