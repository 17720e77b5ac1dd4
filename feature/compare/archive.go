package compare

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"template-verifier/core/storage"

	"github.com/minio/minio-go/v7"
)

// ErrReportNotFound is returned when no archived report exists for a run id.
var ErrReportNotFound = errors.New("report not found")

// Archive stores verdicts as JSON objects in a bucket.
type Archive struct {
	client storage.Client
	bucket string
	prefix string
	region string
}

// NewArchive creates a new Archive.
func NewArchive(client storage.Client, cfg storage.Config) *Archive {
	return &Archive{
		client: client,
		bucket: cfg.Bucket,
		prefix: strings.Trim(cfg.Prefix, "/"),
		region: cfg.Region,
	}
}

// Key returns the object key of a run report.
func (a *Archive) Key(runID string) string {
	return path.Join(a.prefix, runID+".json")
}

// Store uploads the verdict and returns its object key.
func (a *Archive) Store(ctx context.Context, v *Verdict) (string, error) {
	if err := storage.EnsureBucket(ctx, a.client, a.bucket, a.region); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	key := a.Key(v.RunID)
	_, err = a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload report %s: %w", key, err)
	}
	return key, nil
}

// Fetch downloads the report of a run.
func (a *Archive) Fetch(ctx context.Context, runID string) (*Verdict, error) {
	obj, err := a.client.GetObject(ctx, a.bucket, a.Key(runID), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	defer obj.Close()

	var v Verdict
	if err := json.NewDecoder(obj).Decode(&v); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	return &v, nil
}

// List returns the run ids of all archived reports, sorted.
func (a *Archive) List(ctx context.Context) ([]string, error) {
	prefix := a.prefix
	if prefix != "" {
		prefix += "/"
	}

	var ids []string
	for obj := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list reports: %w", obj.Err)
		}
		name := strings.TrimPrefix(obj.Key, prefix)
		if id, ok := strings.CutSuffix(name, ".json"); ok && !strings.Contains(id, "/") {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}
