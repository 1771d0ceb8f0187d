package sarif

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sqlskim/baseline/internal/domain"
)

// Loader implements domain.LogLoader. Expected baselines and engine output go
// through the same decode path.
type Loader struct{}

// New creates a Loader.
func New() *Loader { return &Loader{} }

// Load reads and parses the log at path. Every failure is a
// *domain.LogParseError carrying path.
func (l *Loader) Load(path string) (*domain.ResultLog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.LogParseError{Path: path, Err: err}
	}

	log, err := Parse(data)
	if err != nil {
		return nil, &domain.LogParseError{Path: path, Err: err}
	}
	return log, nil
}

// Parse decodes a log document and maps it into the domain model.
func Parse(data []byte) (*domain.ResultLog, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("empty log")
	}
	if trimmed[0] != '{' {
		return nil, errors.New("log is not a JSON object")
	}

	var raw sarifLog
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}

	log := &domain.ResultLog{
		Version: raw.Version,
		Runs:    make([]domain.Run, 0, len(raw.Runs)),
	}
	for i, run := range raw.Runs {
		out := domain.Run{
			Tool:    run.Tool.Driver.Name,
			Results: make([]domain.Result, 0, len(run.Results)),
		}
		for j, res := range run.Results {
			r, err := toResult(res)
			if err != nil {
				return nil, fmt.Errorf("runs[%d].results[%d]: %w", i, j, err)
			}
			out.Results = append(out.Results, r)
		}
		log.Runs = append(log.Runs, out)
	}
	return log, nil
}

func toResult(res sarifResult) (domain.Result, error) {
	if res.RuleID == "" {
		return domain.Result{}, errors.New("missing ruleId")
	}

	level := domain.Level(res.Level)
	if level == "" {
		level = domain.DefaultLevel
	}
	if !level.IsValid() {
		return domain.Result{}, fmt.Errorf("unknown level %q", res.Level)
	}

	r := domain.Result{
		RuleID:  res.RuleID,
		Level:   level,
		Message: res.Message.Text,
	}
	if len(res.Locations) > 0 {
		pl := res.Locations[0].PhysicalLocation
		r.Location.URI = pl.ArtifactLocation.URI
		if pl.Region != nil {
			r.Location.Line = pl.Region.StartLine
			r.Location.Column = pl.Region.StartColumn
		}
	}
	return r, nil
}
