package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
)

/*
Storage provider for S3-compatible object storage, using the minio client
library. The client is created once and shared across all concurrent calls;
minio-go is connection pooled and safe for concurrent use.

Cancellation rides on the context passed through to the client. If the caller
gives up mid-upload the request may still complete on the remote side; this
layer makes no guarantee either way.
*/

////////////////////////////////////////////////////////////////////////////////

const s3ErrNoSuchKey = "NoSuchKey"

type s3store struct {
	mc     *minio.Client
	bucket string
}

// NewS3Store returns a provider backed by the given bucket. The client is
// held for the lifetime of the store.
func NewS3Store(mc *minio.Client, bucket string) *s3store {
	return &s3store{
		mc:     mc,
		bucket: bucket,
	}
}

// Get reads the full object into memory. Missing keys surface only once the
// body is read, so the not-found translation happens on the read error.
func (s *s3store) Get(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.mc.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, newStorageError("get", key, err)
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		if isNoSuchKey(err) {
			return nil, ErrObjectNotFound
		}
		return nil, newStorageError("get", key, err)
	}
	return data, nil
}

// Put uploads the whole buffer as one request.
func (s *s3store) Put(ctx context.Context, key string, data []byte) error {
	_, err := s.mc.PutObject(
		ctx,
		s.bucket,
		key,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{},
	)
	if err != nil {
		return newStorageError("put", key, err)
	}
	return nil
}

// Delete removes the object. S3 reports delete-of-missing-key as success and
// that is preserved here.
func (s *s3store) Delete(ctx context.Context, key string) error {
	if err := s.mc.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		if isNoSuchKey(err) {
			return nil
		}
		return newStorageError("delete", key, err)
	}
	return nil
}

func (s *s3store) String() string {
	return fmt.Sprintf("s3(%s)", s.bucket)
}

func isNoSuchKey(err error) bool {
	var resp minio.ErrorResponse
	return errors.As(err, &resp) && resp.Code == s3ErrNoSuchKey
}
