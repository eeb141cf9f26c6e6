package repository

import (
	"time"

	videodomain "vidstream-backend/internal/video/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// videoRepository implements VideoRepository interface
type videoRepository struct {
	db *gorm.DB
}

// NewVideoRepository creates a new instance of videoRepository
func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{
		db: db,
	}
}

func (r *videoRepository) Create(video *videodomain.Video) error {
	video.ID = uuid.New().String()
	video.CreatedAt = time.Now()
	return r.db.Create(video).Error
}

// List returns videos newest first. Zero records is an empty slice, never an
// error.
func (r *videoRepository) List() ([]videodomain.Video, error) {
	videos := []videodomain.Video{}
	err := r.db.Order("created_at DESC").Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}
