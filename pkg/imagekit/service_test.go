package imagekit

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidstream-backend/pkg/config"
)

func newTestService() *Service {
	return NewService(&config.Config{
		ImageKitPublicKey:  "public_test",
		ImageKitPrivateKey: "private_test",
		ImageKitUploadURL:  "https://upload.example/api/v1/files/upload",
		UploadGrantExpiry:  30 * time.Minute,
	})
}

func TestSignGrant(t *testing.T) {
	s := newTestService()
	fixed := time.Unix(1700000000, 0)
	s.now = func() time.Time { return fixed }

	grant, err := s.SignGrant()
	require.NoError(t, err)

	assert.NotEmpty(t, grant.Token)
	assert.Equal(t, fixed.Add(30*time.Minute).Unix(), grant.Expire)

	// the upload API verifies hex HMAC-SHA1 of token+expire under the
	// private key; check the SDK produced exactly that
	mac := hmac.New(sha1.New, []byte("private_test"))
	fmt.Fprintf(mac, "%s%d", grant.Token, grant.Expire)
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), grant.Signature)
}

func TestSignGrant_FreshTokenPerGrant(t *testing.T) {
	s := newTestService()

	a, err := s.SignGrant()
	require.NoError(t, err)
	b, err := s.SignGrant()
	require.NoError(t, err)

	assert.NotEqual(t, a.Token, b.Token, "grants are single-use, tokens must not repeat")
}

func TestSignGrant_MissingKey(t *testing.T) {
	s := &Service{now: time.Now}

	_, err := s.SignGrant()
	require.Error(t, err)
}
