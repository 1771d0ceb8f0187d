package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sqlskim/baseline/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the harness configuration file looked up in the project path.
const FileName = ".baseline.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .baseline.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .baseline.yaml from projectPath.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(projectPath string) (domain.Config, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, err
	}

	// Explicit values are decoded over the defaults; anything the file does
	// not mention keeps its default.
	cfg := domain.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	return cfg, nil
}
