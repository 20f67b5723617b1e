package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// Upload is a decoded data URL ready to be stored.
type Upload struct {
	Data        []byte
	ContentType string
	Extension   string
}

// DecodeDataURL parses "data:<mime>;base64,<payload>". A bare base64 string
// is accepted and its type sniffed from the bytes.
func DecodeDataURL(s string) (Upload, error) {
	payload := s
	contentType := ""
	if strings.HasPrefix(s, "data:") {
		comma := strings.IndexByte(s, ',')
		if comma < 0 {
			return Upload{}, Invalid("Invalid file data")
		}
		meta := strings.TrimPrefix(s[:comma], "data:")
		if !strings.HasSuffix(meta, ";base64") {
			return Upload{}, Invalid("Invalid file data")
		}
		contentType = strings.TrimSuffix(meta, ";base64")
		payload = s[comma+1:]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || len(data) == 0 {
		return Upload{}, Invalid("Invalid file data")
	}

	detected := mimetype.Detect(data)
	if contentType == "" {
		contentType = detected.String()
	}
	ext := detected.Extension()
	if known := mimetype.Lookup(contentType); known != nil && known.Extension() != "" {
		ext = known.Extension()
	}
	if ext == "" {
		ext = ".bin"
	}
	return Upload{Data: data, ContentType: contentType, Extension: ext}, nil
}

// Storage keeps uploaded files and returns their public URL.
type Storage interface {
	Put(ctx context.Context, upload Upload) (string, error)
}

type GCSStorage struct {
	client *storage.Client
	bucket string
}

func NewGCSStorage(client *storage.Client, bucket string) *GCSStorage {
	return &GCSStorage{client: client, bucket: bucket}
}

func (s *GCSStorage) Put(ctx context.Context, upload Upload) (string, error) {
	key := fmt.Sprintf("uploads/%s%s", uuid.NewString(), upload.Extension)
	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = upload.ContentType
	if _, err := w.Write(upload.Data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", key, err)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, key), nil
}

type UploadService struct {
	storage Storage
}

func NewUploadService(storage Storage) *UploadService {
	return &UploadService{storage: storage}
}

type StoredFile struct {
	URL         string `json:"url"`
	ContentType string `json:"mimeType"`
	Size        int64  `json:"size"`
}

// UploadDataURL decodes and stores a data URL.
func (s *UploadService) UploadDataURL(ctx context.Context, dataURL string) (StoredFile, error) {
	if s.storage == nil {
		return StoredFile{}, Business("File storage is not configured")
	}
	upload, err := DecodeDataURL(dataURL)
	if err != nil {
		return StoredFile{}, err
	}
	url, err := s.storage.Put(ctx, upload)
	if err != nil {
		return StoredFile{}, err
	}
	return StoredFile{URL: url, ContentType: upload.ContentType, Size: int64(len(upload.Data))}, nil
}

// UploadOptional stores the data URL when one is given; other values pass through.
func (s *UploadService) UploadOptional(ctx context.Context, value *string) (*string, error) {
	if value == nil || *value == "" {
		return value, nil
	}
	if !strings.HasPrefix(*value, "data:") {
		return value, nil
	}
	file, err := s.UploadDataURL(ctx, *value)
	if err != nil {
		return nil, err
	}
	return &file.URL, nil
}
