// Package history records batch run summaries, either in a JSON file or in a
// SQLite database under the project's .baseline directory.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sqlskim/baseline/internal/domain"
)

// DefaultJSONFile is where FileHistory keeps runs unless told otherwise.
const DefaultJSONFile = ".baseline/history/runs.json"

// FileHistory implements domain.RunHistory using JSON file storage.
type FileHistory struct {
	file string
}

// New creates a FileHistory. file is resolved against the project path when
// relative; empty selects DefaultJSONFile.
func New(file string) *FileHistory {
	if file == "" {
		file = DefaultJSONFile
	}
	return &FileHistory{file: file}
}

func (h *FileHistory) path(projectPath string) string {
	if filepath.IsAbs(h.file) {
		return h.file
	}
	return filepath.Join(projectPath, h.file)
}

// Save appends entry to the stored runs.
func (h *FileHistory) Save(projectPath string, entry domain.RunEntry) error {
	entries, err := h.Load(projectPath)
	if err != nil {
		return err
	}
	entries = append(entries, entry)

	fp := h.path(projectPath)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	return os.WriteFile(fp, data, 0644)
}

// Load returns stored runs, oldest first. A missing file is an empty history.
func (h *FileHistory) Load(projectPath string) ([]domain.RunEntry, error) {
	data, err := os.ReadFile(h.path(projectPath))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.RunEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding history: %w", err)
	}
	return entries, nil
}
