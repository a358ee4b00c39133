package tgg

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Extension is the file extension for TGG files
const Extension = ".tgg"

// LoadFile reads and decodes the TGG file at path
func LoadFile(path string) (*Document, error) {
	if err := checkExtension(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	doc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return doc, nil
}

// SaveFile writes doc to path. It creates missing parent directories and
// refuses to overwrite an existing file.
func SaveFile(path string, doc *Document) error {
	if err := checkExtension(path); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create parent directory: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrFileExists, path)
		}
		return fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := file.Write(Encode(doc)); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return fmt.Errorf("failed to write file: %w", err)
	}

	return file.Close()
}

func checkExtension(path string) error {
	if filepath.Ext(path) != Extension {
		return fmt.Errorf("%w: %s", ErrInvalidExtension, path)
	}
	return nil
}
