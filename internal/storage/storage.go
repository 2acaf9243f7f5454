package storage

import "context"

// Buckets for uploaded images.
const (
	BucketProductImages  = "product-images"
	BucketCategoryImages = "category-images"
)

// BlobStore stores uploaded files and hands back public URLs.
type BlobStore interface {
	// Upload writes the file under bucket/filename.
	Upload(ctx context.Context, bucket, filename string, data []byte, contentType string) error

	// PublicURL returns the public address of an uploaded file.
	PublicURL(bucket, filename string) string
}
