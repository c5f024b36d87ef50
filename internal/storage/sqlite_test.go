package storage

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcp-diet-plan/internal/models"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	s, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleCheckpoint() models.Checkpoint {
	return models.Checkpoint{
		SessionID: "sess-1",
		Profile:   models.Profile{Name: "Asha", Age: 30, WeightKg: 70, HeightCm: 170, ConditionType: models.Type2},
		Status:    models.StatusLow,
		Selection: []models.SelectedItem{
			models.NewSelectedItem(models.CatalogItem{Icon: "🍌", Label: "Banana", Kcal: 100, GI: 51}, models.Breakfast, models.Mandatory),
			models.NewSelectedItem(models.CatalogItem{Icon: "🥜", Label: "Nuts", Kcal: 130, GI: 15}, models.Snacks, models.Mandatory),
		},
		Totals:     models.Totals{Kcal: 230, GI: 66},
		ResumeStep: models.StepDietPlan,
		SavedAt:    time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestLoadCheckpoint_Empty(t *testing.T) {
	s := newTestStorage(t)
	cp, err := s.LoadCheckpoint(context.Background())
	require.NoError(t, err)
	assert.Nil(t, cp)
}

func TestSaveLoadClear(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	want := sampleCheckpoint()
	require.NoError(t, s.SaveCheckpoint(ctx, want))

	got, err := s.LoadCheckpoint(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.Selection, got.Selection)
	assert.Equal(t, want.Totals, got.Totals)
	assert.Equal(t, want.Profile, got.Profile)
	assert.True(t, want.SavedAt.Equal(got.SavedAt))

	require.NoError(t, s.ClearCheckpoint(ctx))
	got, err = s.LoadCheckpoint(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, s.ClearCheckpoint(ctx))
}

func TestSaveCheckpoint_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	first := sampleCheckpoint()
	require.NoError(t, s.SaveCheckpoint(ctx, first))

	second := sampleCheckpoint()
	second.SessionID = "sess-2"
	second.ResumeStep = models.StepLifestyle
	second.Selection = second.Selection[:1]
	second.Totals = models.Totals{Kcal: 100, GI: 51}
	second.PendingWarningMessage = models.OverTargetWarning
	require.NoError(t, s.SaveCheckpoint(ctx, second))

	got, err := s.LoadCheckpoint(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sess-2", got.SessionID)
	assert.Equal(t, models.StepLifestyle, got.ResumeStep)
	assert.Len(t, got.Selection, 1)
	assert.Equal(t, models.OverTargetWarning, got.PendingWarningMessage)

	var rows int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM checkpoints`).Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestCheckpointPayloadKeys(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	cp := sampleCheckpoint()
	cp.PendingWarningMessage = "warn"
	require.NoError(t, s.SaveCheckpoint(ctx, cp))

	var payload string
	require.NoError(t, s.db.QueryRow(`SELECT payload FROM checkpoints`).Scan(&payload))

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))
	for _, key := range []string{"profile", "status", "selection", "totals", "resumeStep", "pendingWarningMessage"} {
		assert.Contains(t, raw, key)
	}

	var profile map[string]any
	require.NoError(t, json.Unmarshal(raw["profile"], &profile))
	for _, key := range []string{"name", "age", "weightKg", "heightCm", "conditionType"} {
		assert.Contains(t, profile, key)
	}

	var items []map[string]any
	require.NoError(t, json.Unmarshal(raw["selection"], &items))
	require.Len(t, items, 2)
	for _, key := range []string{"label", "mealSlot", "adherenceClass", "kcal", "gi"} {
		assert.Contains(t, items[0], key)
	}
}

func TestFileDatabasePersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "plan.db")

	s, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	require.NoError(t, s.SaveCheckpoint(ctx, sampleCheckpoint()))
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.LoadCheckpoint(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "sess-1", got.SessionID)
}
