package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// ImageStorage uploads catalog and blog images to a Cloud Storage bucket.
// Like the data store, it is optional: without a bucket every upload
// reports unavailable and the admin keeps pasting image URLs by hand.
type ImageStorage struct {
	client     *storage.Client
	bucketName string
}

func NewImageStorage(ctx context.Context, bucketName, credentialsPath string) (*ImageStorage, error) {
	if bucketName == "" {
		return &ImageStorage{}, nil
	}

	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &ImageStorage{
		client:     client,
		bucketName: bucketName,
	}, nil
}

func (s *ImageStorage) Available() bool {
	return s != nil && s.client != nil
}

// UploadImage stores the image under folder/ with a generated name and
// returns its public URL.
func (s *ImageStorage) UploadImage(ctx context.Context, folder, filename, contentType string, r io.Reader) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	object := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), ext)

	w := s.client.Bucket(s.bucketName).Object(object).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize image upload: %w", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, object), nil
}

func (s *ImageStorage) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}
