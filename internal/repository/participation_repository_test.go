package repository

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/lhochwald/unterweisung/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) ParticipationRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Participation{}))
	return NewParticipationRepository(db)
}

func TestCreateAssignsIncrementingIDs(t *testing.T) {
	repo := newTestRepo(t)

	first := &model.Participation{Name: "Anna Schmidt", Department: "Technik", Date: "01.02.2026", Score: 5, Total: 5, Passed: true}
	second := &model.Participation{Name: "Jonas Weber", Department: "Rezeption", Date: "01.02.2026", Score: 4, Total: 5, Passed: true}

	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	assert.NotZero(t, first.ID)
	assert.Equal(t, first.ID+1, second.ID)
}

func TestFindAllNewestFirst(t *testing.T) {
	repo := newTestRepo(t)

	names := []string{"Anna Schmidt", "Jonas Weber", "Lea Fischer"}
	for _, name := range names {
		require.NoError(t, repo.Create(&model.Participation{
			Name: name, Department: "Technik", Date: "01.02.2026", Score: 4, Total: 5, Passed: true,
		}))
	}

	participations, err := repo.FindAllNewestFirst()
	require.NoError(t, err)
	require.Len(t, participations, 3)

	assert.Equal(t, "Lea Fischer", participations[0].Name)
	assert.Equal(t, "Jonas Weber", participations[1].Name)
	assert.Equal(t, "Anna Schmidt", participations[2].Name)
	assert.Greater(t, participations[0].ID, participations[1].ID)
}

func TestFindAllOnEmptyTable(t *testing.T) {
	repo := newTestRepo(t)

	participations, err := repo.FindAllNewestFirst()
	require.NoError(t, err)
	assert.Empty(t, participations)
}
