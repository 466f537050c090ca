package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the officer's
// access token on outbound requests to the sync gateway.
const AccessTokenHeaderName = "access_token"

// MaxEvidencePhotos is the upper bound on photos per infringement. The
// capture layer enforces it; the queue itself never rejects a record for
// exceeding it.
const MaxEvidencePhotos = 5
