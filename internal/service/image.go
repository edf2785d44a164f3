package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/forkful/recipe-api/config"
	"github.com/forkful/recipe-api/internal/models"
)

// Uploaded photos wider than this are downscaled before storage.
const maxImageWidth = 1600

// ImageStore persists upload bytes under a path. Storage mechanics are a
// collaborator; the service only decides the path and the bytes.
type ImageStore interface {
	Save(ctx context.Context, path string, body io.Reader, contentType string) error
}

// S3Store stores images in an S3 bucket.
type S3Store struct {
	client *s3.Client
	bucket string
}

func NewS3Store(cfg *config.S3Config) *S3Store {
	return &S3Store{client: cfg.Client, bucket: cfg.BucketName}
}

func (s *S3Store) Save(ctx context.Context, path string, body io.Reader, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(path),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	return err
}

// LocalStore stores images on the local filesystem under a root directory.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

func (s *LocalStore) Save(ctx context.Context, path string, body io.Reader, contentType string) error {
	full := filepath.Join(s.root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	f, err := os.Create(full)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(f, body)
	return err
}

// ImageService processes recipe image uploads and hands them to a store.
type ImageService struct {
	store ImageStore
	newID func() uuid.UUID
}

func NewImageService(store ImageStore) *ImageService {
	return &ImageService{
		store: store,
		newID: uuid.New,
	}
}

// SaveRecipeImage decodes the upload, downscales oversized photos,
// re-encodes in the original format, and stores the result under a
// deterministic uuid-based path. Returns the stored path.
func (s *ImageService) SaveRecipeImage(ctx context.Context, filename string, body io.Reader) (string, error) {
	ext := filepath.Ext(filename)
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return "", validationError("unsupported image format %q", ext)
	}

	img, err := imaging.Decode(body)
	if err != nil {
		return "", validationError("invalid image payload")
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	path := models.RecipeImagePath(s.newID(), filename)
	contentType := mime.TypeByExtension(ext)
	if err := s.store.Save(ctx, path, &buf, contentType); err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}
	return path, nil
}
