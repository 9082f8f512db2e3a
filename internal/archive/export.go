// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/blueprint-engine/pkg/types"
)

// ExportEntry is one run with its input and blueprint decoded, so the
// export reads as a document rather than embedded JSON strings.
type ExportEntry struct {
	ID        string    `json:"id" yaml:"id"`
	Engine    string    `json:"engine" yaml:"engine"`
	Title     string    `json:"title" yaml:"title"`
	Digest    string    `json:"digest" yaml:"digest"`
	CreatedAt time.Time `json:"createdAt" yaml:"created_at"`
	Input     any       `json:"input" yaml:"input"`
	Blueprint any       `json:"blueprint" yaml:"blueprint"`
}

const exportLimit = 100000

// Export writes every run matching opts to path as YAML or JSON, newest
// first. It returns the number of runs written.
func (s *Store) Export(ctx context.Context, path string, format types.OutputFormat, opts ListOptions) (int, error) {
	opts.Limit = exportLimit
	runs, err := s.List(ctx, opts)
	if err != nil {
		return 0, fmt.Errorf("querying for export: %w", err)
	}

	entries := make([]ExportEntry, len(runs))
	for i, r := range runs {
		entries[i] = ExportEntry{
			ID:        r.ID,
			Engine:    string(r.Engine),
			Title:     r.Title,
			Digest:    r.Digest,
			CreatedAt: r.CreatedAt,
		}
		if err := json.Unmarshal(r.Input, &entries[i].Input); err != nil {
			return 0, fmt.Errorf("decoding input of %s: %w", r.ID, err)
		}
		if err := json.Unmarshal(r.Blueprint, &entries[i].Blueprint); err != nil {
			return 0, fmt.Errorf("decoding blueprint of %s: %w", r.ID, err)
		}
	}

	var data []byte
	switch format {
	case types.OutputYAML:
		data, err = yaml.Marshal(entries)
		if err != nil {
			return 0, fmt.Errorf("marshaling YAML: %w", err)
		}
	case types.OutputJSON:
		data, err = json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return 0, fmt.Errorf("marshaling JSON: %w", err)
		}
	default:
		return 0, fmt.Errorf("export supports yaml or json, not %q", format)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("creating export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("writing export: %w", err)
	}
	return len(entries), nil
}
