package sarif

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sqlskim/baseline/internal/domain"
)

// Marshal encodes log in the same shape Parse reads.
func Marshal(log domain.ResultLog) ([]byte, error) {
	raw := sarifLog{
		Schema:  Schema,
		Version: log.Version,
		Runs:    make([]sarifRun, 0, len(log.Runs)),
	}
	if raw.Version == "" {
		raw.Version = Version
	}

	for _, run := range log.Runs {
		out := sarifRun{
			Tool:    sarifTool{Driver: sarifDriver{Name: run.Tool}},
			Results: make([]sarifResult, 0, len(run.Results)),
		}
		for _, r := range run.Results {
			out.Results = append(out.Results, fromResult(r))
		}
		raw.Runs = append(raw.Runs, out)
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding result log: %w", err)
	}
	return append(data, '\n'), nil
}

// Write serializes log to path, creating parent directories as needed.
func Write(path string, log domain.ResultLog) error {
	data, err := Marshal(log)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func fromResult(r domain.Result) sarifResult {
	res := sarifResult{
		RuleID:  r.RuleID,
		Level:   string(r.Level),
		Message: sarifMessage{Text: r.Message},
	}
	if r.Location == (domain.Location{}) {
		return res
	}

	pl := sarifPhysicalLocation{
		ArtifactLocation: sarifArtifactLocation{URI: r.Location.URI},
	}
	if r.Location.Line > 0 || r.Location.Column > 0 {
		pl.Region = &sarifRegion{
			StartLine:   r.Location.Line,
			StartColumn: r.Location.Column,
		}
	}
	res.Locations = []sarifLocation{{PhysicalLocation: pl}}
	return res
}
