package usecase

import (
	videodomain "vidstream-backend/internal/video/domain"
	videodto "vidstream-backend/internal/video/dto"
	"vidstream-backend/internal/video/repository"
	"vidstream-backend/pkg/httperr"
)

// videoUsecase implements VideoUsecase interface
type videoUsecase struct {
	videoRepo repository.VideoRepository
}

// NewVideoUsecase creates a new instance of videoUsecase
func NewVideoUsecase(videoRepo repository.VideoRepository) VideoUsecase {
	return &videoUsecase{
		videoRepo: videoRepo,
	}
}

// List never returns a nil slice: an empty catalog renders as [] regardless
// of which repository implementation sits underneath.
func (u *videoUsecase) List() ([]videodomain.Video, error) {
	videos, err := u.videoRepo.List()
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []videodomain.Video{}
	}
	return videos, nil
}

// Create validates required fields before any write and applies the
// server-side defaults: controls on, fixed 1920x1080 transformation, quality
// 100 unless the client supplied one.
func (u *videoUsecase) Create(req *videodto.CreateVideoRequest) (*videodomain.Video, error) {
	if req.Title == "" || req.Description == "" || req.VideoURL == "" || req.ThumbnailURL == "" {
		return nil, httperr.Validation("missing required fields")
	}

	controls := true
	if req.Controls != nil {
		controls = *req.Controls
	}

	quality := videodomain.DefaultQuality
	if req.Transformation != nil && req.Transformation.Quality != nil {
		quality = *req.Transformation.Quality
	}

	video := &videodomain.Video{
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		Controls:     controls,
		Transformation: videodomain.Transformation{
			Height:  videodomain.TransformationHeight,
			Width:   videodomain.TransformationWidth,
			Quality: quality,
		},
	}

	if err := u.videoRepo.Create(video); err != nil {
		return nil, err
	}

	return video, nil
}
