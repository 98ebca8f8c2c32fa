// Package adapter holds integrations with external infrastructure that are
// not part of the primary database, such as the object storage used for
// item photos.
package adapter

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"
	"io"
	"strings"

	"github.com/buckket/go-blurhash"
	"github.com/disintegration/imaging"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/checkoutewb/backend/internal/config"
	"github.com/checkoutewb/backend/internal/logger"
)

const (
	thumbnailSize = 512

	// blurhash component counts. 4x3 keeps the encoded string short enough
	// to inline in the item row while still sketching the photo.
	blurhashXComponents = 4
	blurhashYComponents = 3

	imageContentType = "image/jpeg"
)

// ImageStore uploads and removes item photos.
//
// Upload processes the raw photo (EXIF orientation, square thumbnail,
// JPEG re-encode), stores it under a key derived from the item name and
// returns the public URL together with the blurhash placeholder string.
type ImageStore interface {
	Upload(ctx context.Context, itemName string, photo io.Reader) (url string, placeholder string, err error)
	Delete(ctx context.Context, itemName string) error
}

// MinioImageStore is an [ImageStore] backed by an S3-compatible object
// store via the MinIO client.
type MinioImageStore struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
	logger        *logger.Logger
}

// NewMinioImageStore connects to the object store and verifies that the
// configured bucket exists, creating it when it does not.
func NewMinioImageStore(ctx context.Context, cfg config.Images, log *logger.Logger) (*MinioImageStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: strings.HasPrefix(cfg.PublicBaseURL, "https://"),
	})
	if err != nil {
		return nil, fmt.Errorf("error connecting to object storage: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("error checking bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("error creating bucket %q: %w", cfg.Bucket, err)
		}
		log.Info().Str("bucket", cfg.Bucket).Msg("created image bucket")
	}

	return &MinioImageStore{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        log.GetChildLogger(),
	}, nil
}

// Upload normalizes the photo and stores it as a JPEG thumbnail.
//
// The photo is decoded with EXIF auto-orientation so phone uploads come
// out upright, cropped and scaled to a centered square thumbnail, then
// re-encoded. The blurhash placeholder is computed from the processed
// thumbnail, not the original, so it matches what the browser will load.
func (s *MinioImageStore) Upload(ctx context.Context, itemName string, photo io.Reader) (string, string, error) {
	img, err := imaging.Decode(photo, imaging.AutoOrientation(true))
	if err != nil {
		return "", "", fmt.Errorf("error decoding photo: %w", err)
	}

	thumbnail := imaging.Fill(img, thumbnailSize, thumbnailSize, imaging.Center, imaging.Lanczos)

	placeholder, err := blurhash.Encode(blurhashXComponents, blurhashYComponents, thumbnail)
	if err != nil {
		return "", "", fmt.Errorf("error encoding blurhash: %w", err)
	}

	var buf bytes.Buffer
	if err = jpeg.Encode(&buf, thumbnail, &jpeg.Options{Quality: 85}); err != nil {
		return "", "", fmt.Errorf("error encoding thumbnail: %w", err)
	}

	key := objectKey(itemName)
	_, err = s.client.PutObject(ctx, s.bucket, key, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: imageContentType,
	})
	if err != nil {
		return "", "", fmt.Errorf("error uploading photo: %w", err)
	}

	s.logger.Debug().Str("item", itemName).Str("key", key).Msg("photo uploaded")

	return s.publicBaseURL + "/" + s.bucket + "/" + key, placeholder, nil
}

// Delete removes the stored photo. Deleting a photo that was never
// uploaded is not an error.
func (s *MinioImageStore) Delete(ctx context.Context, itemName string) error {
	err := s.client.RemoveObject(ctx, s.bucket, objectKey(itemName), minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("error removing photo: %w", err)
	}
	return nil
}

func objectKey(itemName string) string {
	return "items/" + strings.ReplaceAll(itemName, " ", "_") + ".jpg"
}
