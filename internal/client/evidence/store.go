package evidence

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/mantisworks/mantis-field/internal/client/client"
	"github.com/mantisworks/mantis-field/internal/client/models"
	"github.com/mantisworks/mantis-field/internal/netx"
)

// PhotoStore pushes one evidence photo of an already-created infringement and
// returns its remote URL.
type PhotoStore interface {
	Upload(ctx context.Context, infringementID string, photo models.EvidencePhoto) (string, error)
}

// GatewayStore uploads through the sync gateway: ask for a presigned PUT URL,
// upload the bytes over plain HTTP, then confirm so the gateway links the
// object to the infringement.
type GatewayStore struct {
	Client client.Client
	HTTP   *http.Client
}

func NewGatewayStore(c client.Client) *GatewayStore {
	return &GatewayStore{Client: c, HTTP: &http.Client{}}
}

func (g *GatewayStore) Upload(ctx context.Context, infringementID string, photo models.EvidencePhoto) (string, error) {
	body, err := os.ReadFile(photo.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read photo: %w", err)
	}

	fileName := filepath.Base(photo.Path)
	key, url, err := g.Client.GetPhotoUploadURL(ctx, infringementID, fileName)
	if err != nil {
		return "", err
	}

	if err := netx.UploadToPresignedURL(ctx, g.HTTP, url, contentTypeFor(fileName), body); err != nil {
		return "", err
	}

	return g.Client.ConfirmEvidencePhoto(ctx, infringementID, key)
}

// S3Config configures direct object-store uploads for deployments where the
// device talks to the evidence bucket itself (e.g. an on-premise MinIO).
type S3Config struct {
	Endpoint        string
	Region          string
	Bucket          string
	Prefix          string
	AccessKeyID     string
	SecretAccessKey string
}

// S3Store uploads evidence photos straight to an S3-compatible bucket.
type S3Store struct {
	uploader *manager.Uploader
	cfg      S3Config
}

func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load s3 config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{uploader: manager.NewUploader(s3Client), cfg: cfg}, nil
}

func (s *S3Store) Upload(ctx context.Context, infringementID string, photo models.EvidencePhoto) (string, error) {
	f, err := os.Open(photo.Path)
	if err != nil {
		return "", fmt.Errorf("failed to open photo: %w", err)
	}
	defer f.Close()

	fileName := filepath.Base(photo.Path)
	key := strings.TrimPrefix(fmt.Sprintf("%s/%s/%s", s.cfg.Prefix, infringementID, fileName), "/")

	out, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentTypeFor(fileName)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}
	return out.Location, nil
}

func contentTypeFor(fileName string) string {
	if ct := mime.TypeByExtension(filepath.Ext(fileName)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
