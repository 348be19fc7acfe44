package persistence

import (
	"context"
	"path/filepath"
	"testing"

	"levantamiento_service/internal/domain/entities"
	"levantamiento_service/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{
		Driver:     config.StoreSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "surveys.db"),
	}}

	store, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	defer store.Close()

	created, err := store.Surveys.Create(context.Background(), entities.Survey{ID: "lev-1", Reviews: entities.NewBlockReviews()})
	require.NoError(t, err)
	assert.Equal(t, "lev-1", created.ID)

	events, err := store.Events.ListBySurveyID(context.Background(), "lev-1")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{Store: config.StoreConfig{Driver: "mongo"}})
	assert.Error(t, err)
}
