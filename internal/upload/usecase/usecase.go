package usecase

// UploadAuth is what a client needs to push a file straight to the CDN: the
// signed grant parameters plus the public key identifying the account.
type UploadAuth struct {
	AuthParameters AuthParameters `json:"authParameters"`
	PublicKey      string         `json:"publicKey"`
}

type AuthParameters struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"`
	Signature string `json:"signature"`
}

// UploadUsecase mints upload grants for authorized identities. It holds no
// state: a failed signing has nothing to roll back.
type UploadUsecase interface {
	IssueGrant() (*UploadAuth, error)
}
