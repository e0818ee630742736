// Package storage uploads files to the object store and reports their public
// URLs. The supabase driver talks to the provider's storage API; the s3 driver
// uses minio-go against any S3-compatible endpoint.
package storage
