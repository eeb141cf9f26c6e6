package usecase

import (
	"vidstream-backend/pkg/imagekit"
)

// uploadUsecase implements UploadUsecase interface
type uploadUsecase struct {
	signer *imagekit.Service
}

// NewUploadUsecase creates a new instance of uploadUsecase
func NewUploadUsecase(signer *imagekit.Service) UploadUsecase {
	return &uploadUsecase{
		signer: signer,
	}
}

func (u *uploadUsecase) IssueGrant() (*UploadAuth, error) {
	grant, err := u.signer.SignGrant()
	if err != nil {
		return nil, err
	}

	return &UploadAuth{
		AuthParameters: AuthParameters{
			Token:     grant.Token,
			Expire:    grant.Expire,
			Signature: grant.Signature,
		},
		PublicKey: u.signer.PublicKey(),
	}, nil
}
