package usecase

import (
	videodomain "vidstream-backend/internal/video/domain"
	videodto "vidstream-backend/internal/video/dto"
)

// VideoUsecase is the catalog contract: ordered listing and validated create.
type VideoUsecase interface {
	List() ([]videodomain.Video, error)
	Create(req *videodto.CreateVideoRequest) (*videodomain.Video, error)
}
