package repository

import videodomain "vidstream-backend/internal/video/domain"

// VideoRepository persists video metadata records.
type VideoRepository interface {
	Create(video *videodomain.Video) error
	List() ([]videodomain.Video, error)
}
