// Package storage uploads badge art and profile pictures to an S3-compatible
// Spaces bucket and hands back public URLs for the image_url and pfp columns.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/dhairyapractice/Solo-leveling/internal/domain"
)

// Allowed upload prefixes. Keys are namespaced so a profile picture can
// never clobber badge art.
const (
	PrefixBadges   = "badges"
	PrefixPfps     = "pfps"
	PrefixItems    = "items"
	MaxImageSize   = 5 << 20
	uploadCacheAge = "public, max-age=31536000"
)

var allowedContentTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Service uploads hunter images.
type Service interface {
	UploadImage(ctx context.Context, userID, prefix, contentType string, body io.Reader) (string, error)
	DeleteImage(ctx context.Context, url string) error
}

type spacesService struct {
	client *s3.Client
	bucket string
	region string
}

// NewSpacesService builds the S3 client against the Spaces endpoint for the
// configured region.
func NewSpacesService(spacesKey, spacesSecret, region, bucket string) (Service, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(spacesKey, spacesSecret, "")),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load spaces config: %w", err)
	}

	return &spacesService{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}, nil
}

// UploadImage stores the image under <prefix>/<userID>/<uuid><ext> and
// returns its public URL.
func (s *spacesService) UploadImage(ctx context.Context, userID, prefix, contentType string, body io.Reader) (string, error) {
	ext, ok := allowedContentTypes[contentType]
	if !ok {
		return "", fmt.Errorf("%w: unsupported content type %q", domain.ErrInvalidInput, contentType)
	}

	switch prefix {
	case PrefixBadges, PrefixPfps, PrefixItems:
	default:
		return "", fmt.Errorf("%w: unknown upload prefix %q", domain.ErrInvalidInput, prefix)
	}

	key := path.Join(prefix, userID, uuid.NewString()+ext)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         body,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String(uploadCacheAge),
		ACL:          "public-read",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return fmt.Sprintf("https://%s.%s.digitaloceanspaces.com/%s", s.bucket, s.region, key), nil
}

// DeleteImage removes a previously uploaded image by its public URL. URLs
// outside our bucket are rejected.
func (s *spacesService) DeleteImage(ctx context.Context, url string) error {
	base := fmt.Sprintf("https://%s.%s.digitaloceanspaces.com/", s.bucket, s.region)
	if !strings.HasPrefix(url, base) {
		return fmt.Errorf("%w: url not in bucket", domain.ErrInvalidInput)
	}
	key := strings.TrimPrefix(url, base)

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}
