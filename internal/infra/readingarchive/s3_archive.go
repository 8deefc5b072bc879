package readingarchive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yanqian/cosmic-blueprint/internal/domain/reading"
)

const objectPrefix = "readings/"

// S3Config addresses an S3-compatible bucket (AWS, R2, MinIO).
type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
}

// S3Archive stores each reading as a JSON object.
type S3Archive struct {
	client   *minio.Client
	bucket   string
	logger   *slog.Logger
	mu       sync.Mutex
	bucketOK bool
}

// NewS3Archive constructs the archive.
func NewS3Archive(cfg S3Config, logger *slog.Logger) (*S3Archive, error) {
	if logger == nil {
		logger = slog.Default()
	}
	client, err := minio.New(sanitizeEndpoint(cfg.Endpoint), &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:       useSSL(cfg.Endpoint),
		Region:       cfg.Region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}
	return &S3Archive{
		client: client,
		bucket: cfg.Bucket,
		logger: logger.With("component", "readingarchive.s3"),
	}, nil
}

// ensureBucket creates the bucket on first use. Failures are retried on the
// next save.
func (a *S3Archive) ensureBucket(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.bucketOK {
		return nil
	}
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err == nil && exists {
		a.bucketOK = true
		return nil
	}
	err = a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{})
	if err != nil && minio.ToErrorResponse(err).Code != "BucketAlreadyOwnedByYou" {
		return fmt.Errorf("ensure bucket %s: %w", a.bucket, err)
	}
	a.bucketOK = true
	a.logger.Info("reading bucket ready", "bucket", a.bucket)
	return nil
}

// Save implements reading.Archive.
func (a *S3Archive) Save(ctx context.Context, resp reading.Response) error {
	if resp.ID == "" {
		return errMissingID
	}
	if err := a.ensureBucket(ctx); err != nil {
		return err
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	_, err = a.client.PutObject(ctx, a.bucket, objectKey(resp.ID), bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType:      "application/json",
		DisableMultipart: true,
	})
	return err
}

// Get implements reading.Archive.
func (a *S3Archive) Get(ctx context.Context, id string) (reading.Response, bool, error) {
	obj, err := a.client.GetObject(ctx, a.bucket, objectKey(id), minio.GetObjectOptions{})
	if err != nil {
		return reading.Response{}, false, err
	}
	defer obj.Close()

	payload, err := io.ReadAll(obj)
	if err != nil {
		if isNotFound(err) {
			return reading.Response{}, false, nil
		}
		return reading.Response{}, false, err
	}
	var resp reading.Response
	if err := json.Unmarshal(payload, &resp); err != nil {
		return reading.Response{}, false, fmt.Errorf("decode archived reading: %w", err)
	}
	return resp, true, nil
}

func isNotFound(err error) bool {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return true
	}
	return false
}

func objectKey(id string) string {
	return objectPrefix + id + ".json"
}

func useSSL(endpoint string) bool {
	return !strings.HasPrefix(strings.ToLower(strings.TrimSpace(endpoint)), "http://")
}

// sanitizeEndpoint removes schemes and paths to satisfy minio.New expectations.
func sanitizeEndpoint(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
	host, _, _ := strings.Cut(raw, "/")
	return host
}

var _ reading.Archive = (*S3Archive)(nil)
