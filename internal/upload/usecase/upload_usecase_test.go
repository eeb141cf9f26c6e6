package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidstream-backend/pkg/config"
	"vidstream-backend/pkg/imagekit"
)

func newTestSigner() *imagekit.Service {
	return imagekit.NewService(&config.Config{
		ImageKitPublicKey:  "public_test",
		ImageKitPrivateKey: "private_test",
		ImageKitUploadURL:  "https://upload.example/api/v1/files/upload",
		UploadGrantExpiry:  30 * time.Minute,
	})
}

func TestIssueGrant(t *testing.T) {
	uc := NewUploadUsecase(newTestSigner())

	auth, err := uc.IssueGrant()
	require.NoError(t, err)

	assert.Equal(t, "public_test", auth.PublicKey)
	assert.NotEmpty(t, auth.AuthParameters.Token)
	assert.NotEmpty(t, auth.AuthParameters.Signature)
	assert.Greater(t, auth.AuthParameters.Expire, time.Now().Unix())
}
