package testutils

import (
	"path/filepath"
	"testing"

	"football-voting-backend/internal/database"
	"football-voting-backend/internal/repository"
	"football-voting-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewTestDB opens a fresh sqlite database in a per-test temp directory
// with the full schema migrated.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Initialize(filepath.Join(t.TempDir(), "voting.db"), nil)
	require.NoError(t, err)
	return db
}

// NewTestStore returns a store over a fresh test database
func NewTestStore(t *testing.T) *repository.GormStore {
	t.Helper()
	return repository.NewGormStore(NewTestDB(t))
}

// NewTestService returns a voting service over a fresh test database
func NewTestService(t *testing.T) *service.VotingService {
	t.Helper()
	svc, err := service.NewVotingService(NewTestStore(t), validator.New())
	require.NoError(t, err)
	return svc
}
