package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/Rishikesh183/auction-tracker/internal/auction"
)

// MaxPhotoSize is the upload cap for player photos (5 MiB)
const MaxPhotoSize = 5 * 1024 * 1024

// photoExtensions maps accepted MIME types to the stored file extension
var photoExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// SpacesService stores player photos in a DigitalOcean Spaces bucket
// (S3-compatible) and serves them by public URL.
type SpacesService struct {
	client *s3.Client
	bucket string
	region string
}

func NewSpacesService(key, secret, region, bucket string) (*SpacesService, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithEndpointResolverWithOptions(resolver),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(key, secret, "")),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load Spaces config: %w", err)
	}

	return &SpacesService{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}, nil
}

// ValidatePhoto checks MIME type and size before anything touches the bucket
func ValidatePhoto(contentType string, size int64) error {
	if _, ok := photoExtensions[contentType]; !ok {
		return auction.NewValidationError("Invalid file type. Only JPEG, PNG, and WebP are allowed.")
	}
	if size > MaxPhotoSize {
		return auction.NewValidationError("File size exceeds 5MB limit")
	}
	return nil
}

// PhotoKey builds the object key for a player photo: the slugged player name
// plus a millisecond timestamp, so re-uploads never collide.
func PhotoKey(playerName, contentType string) string {
	slug := strings.ToLower(strings.TrimSpace(playerName))
	slug = strings.Join(strings.Fields(slug), "-")
	return fmt.Sprintf("%s-%d.%s", slug, time.Now().UnixMilli(), photoExtensions[contentType])
}

// UploadPlayerPhoto validates and stores a photo, returning its public URL
func (s *SpacesService) UploadPlayerPhoto(ctx context.Context, body io.Reader, size int64, contentType, playerName string) (string, error) {
	if err := ValidatePhoto(contentType, size); err != nil {
		return "", err
	}

	key := PhotoKey(playerName, contentType)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String("public, max-age=3600"),
		ACL:           types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}

	url := s.PublicURL(key)
	log.Printf("[STORAGE] uploaded photo for %s: %s", playerName, url)
	return url, nil
}

// DeletePlayerPhoto removes a previously uploaded photo by its public URL
func (s *SpacesService) DeletePlayerPhoto(ctx context.Context, photoURL string) error {
	marker := s.bucket + "." + s.region + ".digitaloceanspaces.com/"
	idx := strings.Index(photoURL, marker)
	if idx < 0 {
		return auction.NewValidationError("Invalid photo URL")
	}
	key := photoURL[idx+len(marker):]

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	return nil
}

// PublicURL returns the bucket-hosted URL for an object key
func (s *SpacesService) PublicURL(key string) string {
	return fmt.Sprintf("https://%s.%s.digitaloceanspaces.com/%s", s.bucket, s.region, key)
}
