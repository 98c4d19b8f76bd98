package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"climaseguro_backend/internal/feature/prevention/domain/entity"
	"climaseguro_backend/internal/feature/prevention/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	// :memory: はコネクションごとに別DBになるため1本に固定する
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(Models()...)
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func TestNewProcessRepository(t *testing.T) {
	db := setupTestDB(t)

	repo := NewProcessRepository(db)
	assert.Implements(t, (*usecase.ProcessRepository)(nil), repo)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestProcessGorm_CreateAndFind(t *testing.T) {
	t.Parallel()

	repo := NewProcessRepository(setupTestDB(t))
	ctx := context.Background()

	p := &entity.Process{ZoneID: 4, Context: `{"risk":"alto"}`}
	require.NoError(t, repo.CreateProcess(ctx, p))
	assert.NotZero(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())

	got, err := repo.FindProcess(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.ZoneID)
	assert.Equal(t, `{"risk":"alto"}`, got.Context)
}

func TestProcessGorm_FindProcess_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewProcessRepository(setupTestDB(t))

	got, err := repo.FindProcess(context.Background(), 999)

	assert.ErrorIs(t, err, usecase.ErrProcessNotFound)
	assert.Nil(t, got)
}

func TestProcessGorm_CreatePhotos(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		photos    func(processID uint) []entity.Photo
		wantCount int
	}{
		{
			name: "success: stores photos in order",
			photos: func(processID uint) []entity.Photo {
				return []entity.Photo{
					{ProcessID: processID, FilePath: "/tmp/1/0_a.jpg", Description: "3 casas", ResidenceCount: 3, Confidence: 0.85},
					{ProcessID: processID, FilePath: "/tmp/1/1_b.jpg", Description: "vazio", ResidenceCount: 0, Confidence: 0.5},
				}
			},
			wantCount: 2,
		},
		{
			name:      "edge case: empty slice",
			photos:    func(uint) []entity.Photo { return nil },
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := setupTestDB(t)
			repo := NewProcessRepository(db)
			ctx := context.Background()

			p := &entity.Process{ZoneID: 1}
			require.NoError(t, repo.CreateProcess(ctx, p))

			input := tt.photos(p.ID)
			saved, err := repo.CreatePhotos(ctx, input)

			require.NoError(t, err)
			require.Len(t, saved, tt.wantCount)
			for i, s := range saved {
				assert.NotZero(t, s.ID)
				assert.Equal(t, input[i].FilePath, s.FilePath)
				assert.Equal(t, input[i].ResidenceCount, s.ResidenceCount)
			}

			var n int64
			require.NoError(t, db.Model(&PhotoModel{}).Where("process_id = ?", p.ID).Count(&n).Error)
			assert.Equal(t, int64(tt.wantCount), n)
		})
	}
}
