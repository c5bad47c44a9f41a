package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"elimuhub-agent/internal/knowledge"
	"elimuhub-agent/internal/models"
	"elimuhub-agent/pkg/sqlite"
)

func newTestRepo(t *testing.T) *KnowledgeRepository {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewKnowledgeRepository(db, zap.NewNop())
	require.NoError(t, repo.InitSchema(context.Background()))
	return repo
}

func TestKnowledgeRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	seeded := knowledge.SampleAggregate()
	require.NoError(t, repo.ReplaceAll(ctx, seeded))

	loaded, err := repo.LoadAggregate(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Programs, len(seeded.Programs))
	require.Len(t, loaded.Visas, len(seeded.Visas))
	require.Len(t, loaded.Tuition, len(seeded.Tuition))
	require.Len(t, loaded.Guides, len(seeded.Guides))

	// Programs come back ordered by id, not in seed order.
	byID := map[string]models.ProgramRecord{}
	for _, p := range loaded.Programs {
		byID[p.ID] = p
	}
	require.Equal(t, seeded.Programs[0].Requirements, byID[seeded.Programs[0].ID].Requirements)
	require.Equal(t, models.TriState("Sometimes"), loaded.Visas["UK"].InterviewRequired)
	require.Equal(t, seeded.Guides["USA_Application_Guide"].Steps, loaded.Guides["USA_Application_Guide"].Steps)
}

func TestReplaceAllIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	agg := knowledge.SampleAggregate()
	require.NoError(t, repo.ReplaceAll(ctx, agg))
	require.NoError(t, repo.ReplaceAll(ctx, agg))

	loaded, err := repo.LoadAggregate(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Programs, len(agg.Programs))
}

func TestLoadAggregateEmptyDatabase(t *testing.T) {
	repo := newTestRepo(t)

	loaded, err := repo.LoadAggregate(context.Background())
	require.NoError(t, err)
	require.Empty(t, loaded.Programs)
	require.Empty(t, loaded.Visas)
}
