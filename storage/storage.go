package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Circulx/Fathom-Legal-sub001/config"
	"github.com/Circulx/Fathom-Legal-sub001/errs"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// CloudPrefix marks object-store references; anything else is treated as a
// legacy local-disk path.
const CloudPrefix = "templates/"

// Legacy upload locations, tried in order when a reference is not in the
// bucket. Older template assets predate the cloud migration.
var DefaultLocalDirs = []string{
	filepath.Join("uploads", "templates", "documents"),
	filepath.Join("uploads", "templates", "pdfs"),
}

// FileStore resolves stored template asset references to bytes.
type FileStore interface {
	Fetch(ctx context.Context, ref string) ([]byte, error)
	Upload(ctx context.Context, name string, data []byte, contentType string) (string, error)
}

// Store reads from the configured GCS bucket with a local-disk fallback for
// legacy references. Uploads go to the bucket only; purchasable assets keep a
// single source of truth.
type Store struct {
	bucket    *gcs.BucketHandle
	LocalDirs []string
}

// New builds a Store from config. A missing bucket leaves cloud reads
// unconfigured; legacy local reads still work, uploads do not.
func New(ctx context.Context, cfg config.Storage) (*Store, error) {
	s := &Store{LocalDirs: DefaultLocalDirs}
	if cfg.Bucket == "" {
		return s, nil
	}

	var opts []option.ClientOption
	switch {
	case cfg.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, errs.Configuration("cloud storage client", err)
	}
	s.bucket = client.Bucket(cfg.Bucket)
	return s, nil
}

// CloudConfigured reports whether bucket access is available.
func (s *Store) CloudConfigured() bool {
	return s.bucket != nil
}

// IsCloudRef reports whether ref points into the object store.
func IsCloudRef(ref string) bool {
	return strings.HasPrefix(ref, CloudPrefix)
}

// Fetch resolves a stored reference. Cloud-prefixed refs read from the
// bucket when configured; everything else walks the legacy local dirs.
func (s *Store) Fetch(ctx context.Context, ref string) ([]byte, error) {
	if IsCloudRef(ref) && s.CloudConfigured() {
		rc, err := s.bucket.Object(ref).NewReader(ctx)
		if err != nil {
			return nil, errs.Storage(fmt.Sprintf("read object %s", ref), err)
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, errs.Storage(fmt.Sprintf("read object %s", ref), err)
		}
		return data, nil
	}
	return s.fetchLocal(ref)
}

func (s *Store) fetchLocal(ref string) ([]byte, error) {
	name := filepath.Base(ref)
	var tried []string
	for _, dir := range s.LocalDirs {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err == nil {
			return data, nil
		}
		tried = append(tried, path)
	}
	return nil, errs.Storage(
		fmt.Sprintf("file not found, tried: %s", strings.Join(tried, ", ")), os.ErrNotExist)
}

// Upload writes a template asset to the bucket and returns its reference.
// There is deliberately no local fallback here.
func (s *Store) Upload(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	if !s.CloudConfigured() {
		return "", errs.Configuration("cloud storage not configured; uploads require a bucket", nil)
	}

	ref := CloudPrefix + name
	w := s.bucket.Object(ref).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		w.Close()
		return "", errs.Storage(fmt.Sprintf("write object %s", ref), err)
	}
	if err := w.Close(); err != nil {
		return "", errs.Storage(fmt.Sprintf("write object %s", ref), err)
	}
	return ref, nil
}
