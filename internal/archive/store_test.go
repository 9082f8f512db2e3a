// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/blueprint-engine/internal/creative"
	"github.com/pdiddy/blueprint-engine/internal/form"
	"github.com/pdiddy/blueprint-engine/internal/project"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

// --- test helpers ---

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(types.ArchiveConfig{Enabled: true, Dir: filepath.Join(t.TempDir(), "archive"), MaxResults: 20})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func saveProject(t *testing.T, s *Store, in types.ProjectInput) Run {
	t.Helper()
	run, err := NewRun(types.EngineProject, in.Name, in, project.Generate(in))
	require.NoError(t, err)
	saved, err := s.Save(context.Background(), run)
	require.NoError(t, err)
	return saved
}

func saveCreative(t *testing.T, s *Store, in types.CreativeInput) Run {
	t.Helper()
	run, err := NewRun(types.EngineCreative, in.BrandName, in, creative.Generate(in))
	require.NoError(t, err)
	saved, err := s.Save(context.Background(), run)
	require.NoError(t, err)
	return saved
}

// --- tests ---

func TestNewStoreCreatesDatabase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "archive")
	store, err := NewStore(types.ArchiveConfig{Dir: dir})
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(filepath.Join(dir, dbFile))
	assert.NoError(t, err)
	assert.Equal(t, 20, store.maxResults)
}

func TestSaveAndGet(t *testing.T) {
	s := testStore(t)
	in := form.DefaultProjectForm().Input()
	saved := saveProject(t, s, in)

	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	got, err := s.Get(context.Background(), saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, types.EngineProject, got.Engine)
	assert.Equal(t, "Command Atlas Transformation", got.Title)

	var bp types.ProjectBlueprint
	require.NoError(t, json.Unmarshal(got.Blueprint, &bp))
	assert.Equal(t, project.Generate(in), bp)
}

func TestGetByPrefix(t *testing.T) {
	s := testStore(t)
	saved := saveProject(t, s, form.DefaultProjectForm().Input())

	got, err := s.Get(context.Background(), saved.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
}

func TestGetNotFound(t *testing.T) {
	s := testStore(t)
	_, err := s.Get(context.Background(), "does-not-exist")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = s.Get(context.Background(), "  ")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestGetWildcardOnlyIsNotFound(t *testing.T) {
	s := testStore(t)
	saveProject(t, s, types.ProjectInput{Name: "Atlas"})

	for _, id := range []string{"%", "_", "%_%"} {
		_, err := s.Get(context.Background(), id)
		assert.True(t, errors.Is(err, ErrNotFound), "Get(%q) = %v", id, err)
	}
}

func TestSaveRejectsUnknownEngine(t *testing.T) {
	s := testStore(t)
	_, err := s.Save(context.Background(), Run{Engine: "poster", Input: json.RawMessage(`{}`), Blueprint: json.RawMessage(`{}`)})
	assert.Error(t, err)
}

func TestListNewestFirstAndFiltered(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	first := saveProject(t, s, types.ProjectInput{Name: "First"})
	saveCreative(t, s, types.CreativeInput{BrandName: "Nova"})
	last := saveProject(t, s, types.ProjectInput{Name: "Last"})

	all, err := s.List(ctx, ListOptions{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, last.ID, all[0].ID)
	assert.Equal(t, first.ID, all[2].ID)

	projects, err := s.List(ctx, ListOptions{Engine: types.EngineProject})
	require.NoError(t, err)
	assert.Len(t, projects, 2)

	limited, err := s.List(ctx, ListOptions{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "Last", limited[0].Title)
}

func TestCount(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	n, err := s.Count(ctx, "")
	require.NoError(t, err)
	assert.Zero(t, n)

	saveProject(t, s, types.ProjectInput{})
	saveProject(t, s, types.ProjectInput{})
	saveCreative(t, s, types.CreativeInput{})

	n, err = s.Count(ctx, types.EngineProject)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = s.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestDigestIsStable(t *testing.T) {
	in := form.DefaultCreativeForm().Input()
	a, err := Digest(in)
	require.NoError(t, err)
	b, err := Digest(form.DefaultCreativeForm().Input())
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)

	in.Palette = []string{"#000000", "#FFFFFF"}
	c, err := Digest(in)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	run, err := NewRun(types.EngineCreative, "x", form.DefaultCreativeForm().Input(), struct{}{})
	require.NoError(t, err)
	assert.Equal(t, a, run.Digest)
}

func TestSaveKeepsSuppliedTimestamp(t *testing.T) {
	s := testStore(t)
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	run, err := NewRun(types.EngineProject, "Dated", types.ProjectInput{}, struct{}{})
	require.NoError(t, err)
	run.CreatedAt = at

	saved, err := s.Save(context.Background(), run)
	require.NoError(t, err)
	got, err := s.Get(context.Background(), saved.ID)
	require.NoError(t, err)
	assert.True(t, at.Equal(got.CreatedAt))
}

func TestExport(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	saveProject(t, s, types.ProjectInput{Name: "Alpha"})
	saveCreative(t, s, types.CreativeInput{BrandName: "Nova"})

	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "out", "runs.yaml")
	n, err := s.Export(ctx, yamlPath, types.OutputYAML, ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	data, err := os.ReadFile(yamlPath)
	require.NoError(t, err)
	var entries []ExportEntry
	require.NoError(t, yaml.Unmarshal(data, &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "Nova", entries[0].Title)

	jsonPath := filepath.Join(dir, "runs.json")
	n, err = s.Export(ctx, jsonPath, types.OutputJSON, ListOptions{Engine: types.EngineProject})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	data, err = os.ReadFile(jsonPath)
	require.NoError(t, err)
	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, "Alpha", raw[0]["title"])
	assert.Contains(t, raw[0]["blueprint"], "summary")

	_, err = s.Export(ctx, filepath.Join(dir, "runs.md"), types.OutputMarkdown, ListOptions{})
	assert.Error(t, err)
}
