// Package storage provides pluggable file storage disks.
//
// Two drivers ship: "local" (filesystem) and "s3" (AWS S3 / MinIO / R2).
// CSV exports are persisted through a Disk so the export location can be a
// bucket in production and a temp dir in tests.
package storage

import (
	"io"
	"time"
)

// Disk is a single storage backend.
type Disk interface {
	Put(path string, content []byte) error
	PutStream(path string, r io.Reader) error
	Get(path string) ([]byte, error)
	GetStream(path string) (io.ReadCloser, error)
	Exists(path string) bool
	Delete(path string) error
	Size(path string) (int64, error)
	LastModified(path string) (time.Time, error)
	URL(path string) string
}
