package testimonial

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/bowboxshop/bowbox-backend/pkg/db/models"
)

func setupTestimonialTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS testimonials (
  id TEXT PRIMARY KEY,
  customer_name TEXT NOT NULL DEFAULT 'Happy Customer',
  image_url TEXT NOT NULL,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	require.NoError(t, db.Exec("DELETE FROM testimonials").Error)
	return db
}

func TestRepositoryCreateAndList(t *testing.T) {
	db := setupTestimonialTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	older, err := repo.Create(ctx, &models.Testimonial{
		CustomerName: "Priya",
		ImageURL:     "https://storage.googleapis.com/bowbox-testimonials/priya.jpg",
		CreatedAt:    time.Now().Add(-time.Hour),
	})
	require.NoError(t, err)

	newer, err := repo.Create(ctx, &models.Testimonial{
		CustomerName: "Arjun",
		ImageURL:     "https://storage.googleapis.com/bowbox-testimonials/arjun.jpg",
		CreatedAt:    time.Now(),
	})
	require.NoError(t, err)

	rows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, newer.ID, rows[0].ID)
	assert.Equal(t, older.ID, rows[1].ID)
	assert.Equal(t, "https://storage.googleapis.com/bowbox-testimonials/arjun.jpg", rows[0].ImageURL)
}
