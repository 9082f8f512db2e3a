// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package blueprint

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/blueprint-engine/internal/archive"
	"github.com/pdiddy/blueprint-engine/internal/form"
	"github.com/pdiddy/blueprint-engine/internal/monitoring"
	"github.com/pdiddy/blueprint-engine/internal/project"
	"github.com/pdiddy/blueprint-engine/pkg/types"
)

type fakeCache struct {
	entries map[string][]byte
	fail    error
}

func (f *fakeCache) Lookup(_ context.Context, engine types.Engine, digest string, dst any) (bool, error) {
	if f.fail != nil {
		return false, f.fail
	}
	data, ok := f.entries[string(engine)+digest]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dst)
}

func (f *fakeCache) Store(_ context.Context, engine types.Engine, digest string, bp any) error {
	data, err := json.Marshal(bp)
	if err != nil {
		return err
	}
	f.entries[string(engine)+digest] = data
	return nil
}

type fakeArchive struct {
	runs []archive.Run
	fail error
}

func (f *fakeArchive) Save(_ context.Context, run archive.Run) (archive.Run, error) {
	if f.fail != nil {
		return archive.Run{}, f.fail
	}
	run.ID = "run-" + string(rune('a'+len(f.runs)))
	f.runs = append(f.runs, run)
	return run, nil
}

func TestZeroServiceGenerates(t *testing.T) {
	var s Service
	in := form.DefaultProjectForm().Input()
	bp, out, err := s.Project(context.Background(), in, Options{Archive: true})
	require.NoError(t, err)
	assert.Equal(t, project.Generate(in), bp)
	assert.Equal(t, monitoring.SourceGenerated, out.Source)
	assert.Empty(t, out.RunID)
	assert.Len(t, out.Digest, 64)
}

func TestCacheHitMatchesFreshResult(t *testing.T) {
	cache := &fakeCache{entries: map[string][]byte{}}
	m := monitoring.NewMetrics()
	s := &Service{Cache: cache, Metrics: m}
	ctx := context.Background()
	in := form.DefaultCreativeForm().Input()

	first, out1, err := s.Creative(ctx, in, Options{})
	require.NoError(t, err)
	assert.Equal(t, monitoring.SourceGenerated, out1.Source)

	second, out2, err := s.Creative(ctx, in, Options{})
	require.NoError(t, err)
	assert.Equal(t, monitoring.SourceCache, out2.Source)
	assert.Equal(t, out1.Digest, out2.Digest)
	assert.Equal(t, first, second)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("creative", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GenerationsTotal.WithLabelValues("creative", monitoring.SourceCache)))
}

func TestCacheFailureFallsBackToGeneration(t *testing.T) {
	s := &Service{Cache: &fakeCache{entries: map[string][]byte{}, fail: errors.New("down")}}
	_, out, err := s.Project(context.Background(), types.ProjectInput{}, Options{})
	require.NoError(t, err)
	assert.Equal(t, monitoring.SourceGenerated, out.Source)
}

func TestArchive(t *testing.T) {
	arch := &fakeArchive{}
	s := &Service{Archive: arch}
	ctx := context.Background()
	in := form.DefaultProjectForm().Input()

	_, out, err := s.Project(ctx, in, Options{})
	require.NoError(t, err)
	assert.Empty(t, out.RunID)
	assert.Empty(t, arch.runs)

	_, out, err = s.Project(ctx, in, Options{Archive: true})
	require.NoError(t, err)
	assert.Equal(t, "run-a", out.RunID)
	require.Len(t, arch.runs, 1)
	assert.Equal(t, types.EngineProject, arch.runs[0].Engine)
	assert.Equal(t, in.Name, arch.runs[0].Title)
	assert.Equal(t, out.Digest, arch.runs[0].Digest)

	arch.fail = errors.New("disk full")
	_, _, err = s.Project(ctx, in, Options{Archive: true})
	assert.ErrorContains(t, err, "disk full")
}
