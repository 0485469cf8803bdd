package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"wastewise/local-app/src/pkg/model"
)

// FileExport exports a workspace snapshot to a JSON file.
func FileExport(workspace *model.Workspace, filename string) error {
	data, err := json.MarshalIndent(workspace, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal workspace: %w", err)
	}

	// Ensure the directory exists
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// FileImport imports a workspace snapshot from a JSON file.
func FileImport(filename string) (*model.Workspace, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var workspace model.Workspace
	if err := json.Unmarshal(data, &workspace); err != nil {
		return nil, fmt.Errorf("failed to unmarshal data: %w", err)
	}

	return &workspace, nil
}
