package client

import (
	"context"

	"github.com/mantisworks/mantis-field/internal/client/models"
)

// Client is the remote collaborator boundary: everything the field app ever
// asks of the MANTIS sync gateway. The sync executor treats every call as an
// opaque remote procedure and stores whatever error comes back.
type Client interface {
	Close() error

	// Login authenticates an officer and stores the session tokens on the client.
	Login(ctx context.Context, badgeNumber string, password []byte) error

	// Ping checks gateway liveness; used as the reachability probe.
	Ping(ctx context.Context) error

	// CreateInfringement submits one queued record and returns the remote id.
	CreateInfringement(ctx context.Context, rec *models.QueuedInfringement) (string, error)

	// GetPhotoUploadURL asks the gateway for a presigned PUT URL for one
	// evidence photo of an already-created infringement.
	GetPhotoUploadURL(ctx context.Context, infringementID, fileName string) (key string, url string, err error)

	// ConfirmEvidencePhoto tells the gateway the object was uploaded and
	// returns the public URL of the stored photo.
	ConfirmEvidencePhoto(ctx context.Context, infringementID, key string) (string, error)

	// SetTokens restores a cached session (e.g. after offline unlock).
	SetTokens(accessToken, refreshToken string)

	// Tokens returns the current session tokens for caching.
	Tokens() (accessToken, refreshToken string)
}
