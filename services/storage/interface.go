package storage

import (
	"context"
	"io"

	"homefix/utils"
)

const (
	FolderServiceImages       = "homefix/services"
	FolderTechnicianDocuments = "homefix/technicians"
)

// StorageService defines the interface for media uploads.
type StorageService interface {
	// Upload stores r under folder and returns a public URL.
	Upload(ctx context.Context, folder, name string, r io.Reader) (string, error)
}

// Disabled rejects every upload. Used when no storage backend is configured.
type Disabled struct{}

func (Disabled) Upload(context.Context, string, string, io.Reader) (string, error) {
	return "", utils.NewValidationError("media uploads are not configured")
}
