// Package blob re-exports the blob storage abstraction and selects a
// driver from the environment.
package blob

import (
	"context"
	"fmt"
	"os"

	"periodica/internal/blob/core"
	"periodica/internal/infra/blob/fs"
	"periodica/internal/infra/blob/memory"
	"periodica/internal/infra/blob/s3"
)

// Aliases keep call sites on a single import.
type (
	// Store aliases core.Store.
	Store = core.Store
	// Info aliases core.Info.
	Info = core.Info
	// PutOptions aliases core.PutOptions.
	PutOptions = core.PutOptions
	// SignedURLOptions aliases core.SignedURLOptions.
	SignedURLOptions = core.SignedURLOptions
	// Driver aliases core.Driver.
	Driver = core.Driver
)

const (
	// DriverMemory aliases core.DriverMemory.
	DriverMemory = core.DriverMemory
	// DriverFilesystem aliases core.DriverFilesystem.
	DriverFilesystem = core.DriverFilesystem
	// DriverS3 aliases core.DriverS3.
	DriverS3 = core.DriverS3
)

// ErrUnsupported aliases core.ErrUnsupported.
var ErrUnsupported = core.ErrUnsupported

// NewMemory returns the in-memory driver.
func NewMemory() Store { return memory.New() }

// NewFilesystem returns the filesystem driver rooted at root.
func NewFilesystem(root string) (Store, error) { return fs.New(root) }

// Open selects a blob Store implementation using environment variables.
//
//	PERIODICA_BLOB_DRIVER: memory|fs|s3 (default memory)
//	PERIODICA_BLOB_FS_ROOT: directory root when driver=fs (default ./blobdata)
//	(S3 specific variables documented in the s3 driver)
func Open(ctx context.Context) (Store, error) {
	driver := os.Getenv("PERIODICA_BLOB_DRIVER")
	if driver == "" {
		driver = string(DriverMemory)
	}
	switch Driver(driver) {
	case DriverMemory:
		return memory.New(), nil
	case DriverFilesystem:
		return fs.New(os.Getenv("PERIODICA_BLOB_FS_ROOT"))
	case DriverS3:
		return s3.OpenFromEnv(ctx)
	default:
		return nil, fmt.Errorf("unknown blob driver %s", driver)
	}
}
