// Package imagekit wraps the ImageKit Go SDK to mint short-lived upload
// grants for the media CDN. The server never sees the uploaded bytes; it
// only signs credentials that the client spends against the upload API.
package imagekit

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	ikclient "github.com/imagekit-developer/imagekit-go"

	"vidstream-backend/pkg/config"
)

// Grant is a one-shot credential for a client-to-CDN upload: a token, its
// expiry, and the signature the upload API verifies against the account's
// private key.
type Grant struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"`
	Signature string `json:"signature"`
}

type Service struct {
	ik        *ikclient.ImageKit
	publicKey string
	uploadURL string
	expiry    time.Duration
	now       func() time.Time
}

func NewService(cfg *config.Config) *Service {
	ik := ikclient.NewFromParams(ikclient.NewParams{
		PrivateKey:  cfg.ImageKitPrivateKey,
		PublicKey:   cfg.ImageKitPublicKey,
		UrlEndpoint: cfg.ImageKitURLEndpoint,
	})

	return &Service{
		ik:        ik,
		publicKey: cfg.ImageKitPublicKey,
		uploadURL: cfg.ImageKitUploadURL,
		expiry:    cfg.UploadGrantExpiry,
		now:       time.Now,
	}
}

func (s *Service) PublicKey() string {
	return s.publicKey
}

func (s *Service) UploadURL() string {
	return s.uploadURL
}

// SignGrant mints a fresh grant valid until now+expiry.
func (s *Service) SignGrant() (*Grant, error) {
	if s.ik == nil {
		return nil, fmt.Errorf("imagekit: client not configured")
	}

	signed := s.ik.SignToken(ikclient.SignTokenParam{
		Token:   uuid.New().String(),
		Expires: s.now().Add(s.expiry).Unix(),
	})

	return &Grant{
		Token:     signed.Token,
		Expire:    signed.Expires,
		Signature: signed.Signature,
	}, nil
}
