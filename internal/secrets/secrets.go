// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads credentials from a directory of plain-text files,
// one secret per file: the filename is the key and the trimmed contents are
// the value. Secrets fill in config values that were left empty, so tokens
// and passwords can stay out of blueprint-engine.yaml.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// DefaultDir is where the CLI looks for secrets.
const DefaultDir = ".secrets"

// Known keys.
const (
	ServerToken   = "server-token"
	RedisPassword = "redis-password"
)

// Set maps secret names to values.
type Set map[string]string

// Or returns configured when it is set, otherwise the secret stored under
// key, otherwise "".
func (s Set) Or(configured, key string) string {
	if configured != "" {
		return configured
	}
	return s[key]
}

// Keys returns the loaded secret names in sorted order.
func (s Set) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Load reads every file in dir. A missing directory yields an empty Set.
// Unreadable files are logged and skipped.
func Load(dir string, log *zap.Logger) (Set, error) {
	if log == nil {
		log = zap.NewNop()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Set{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	set := make(Set)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Warn("could not read secret", zap.String("name", name), zap.Error(err))
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			set[name] = value
		}
	}

	return set, nil
}
