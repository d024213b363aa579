package adapter

import (
	"context"
	"errors"
	"io"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
)

// gcsStorage implements Storage using Cloud Storage objects
type gcsStorage struct {
	bucketName string
	client     *storage.Client
}

// NewGCS creates a Cloud Storage backed Storage. One object per key.
func NewGCS(ctx context.Context, bucketName string) (Storage, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client")
	}

	return &gcsStorage{
		bucketName: bucketName,
		client:     client,
	}, nil
}

func (s *gcsStorage) Get(ctx context.Context, key string) ([]byte, error) {
	obj := s.client.Bucket(s.bucketName).Object(key)
	reader, err := obj.NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, goerr.Wrap(ErrKeyNotFound, "object does not exist", goerr.V("key", key))
		}
		return nil, goerr.Wrap(err, "failed to read from storage", goerr.V("key", key))
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read object body", goerr.V("key", key))
	}

	return data, nil
}

func (s *gcsStorage) Set(ctx context.Context, key string, data []byte) error {
	writer := s.client.Bucket(s.bucketName).Object(key).NewWriter(ctx)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return goerr.Wrap(err, "failed to write to storage", goerr.V("key", key))
	}
	if err := writer.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize storage write", goerr.V("key", key))
	}

	return nil
}
